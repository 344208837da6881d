package http

import (
	"net/http"

	"github.com/go-chi/httplog/v2"

	"github.com/hacknight-dev/backend/httpjson"
)

// saveApplicant is the explicit save action: it applies the derived coarse
// status (scored vs gradinginprog) and flushes any pending comment.
func (httpserver *HttpServer) saveApplicant(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	grader, ok := requireGrader(w, r)
	if !ok {
		return
	}

	httpserver.scoreSrvc.FlushComments()

	a, err := httpserver.scoreSrvc.Save(r.Context(),
		editionParam(r), applicantIdParam(r), grader)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, map[string]any{
		"status":      a.Status.ApplicationStatus,
		"total_score": a.Score.TotalScore,
	})
}
