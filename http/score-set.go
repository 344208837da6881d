package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/httplog/v2"

	"github.com/hacknight-dev/backend/httpjson"
)

// setScore records (or toggles off) one criterion's score for an
// applicant on behalf of the authenticated grader.
func (httpserver *HttpServer) setScore(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	grader, ok := requireGrader(w, r)
	if !ok {
		return
	}

	type setScoreRequest struct {
		CriterionId string  `json:"criterion_id"`
		Score       float64 `json:"score"`
	}

	var req setScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.WriteErrorJson(w, "invalid request body",
			http.StatusBadRequest, "invalid_request_body")
		return
	}

	a, err := httpserver.scoreSrvc.SetScore(r.Context(),
		editionParam(r), applicantIdParam(r), req.CriterionId, req.Score, grader)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, a.Score)
}
