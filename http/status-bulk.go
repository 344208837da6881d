package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/httplog/v2"

	"github.com/hacknight-dev/backend/applicant"
	"github.com/hacknight-dev/backend/httpjson"
)

// bulkStatusChange sets a target status on the applicants matching the
// given email addresses and reports matched vs unmatched emails back.
func (httpserver *HttpServer) bulkStatusChange(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	if _, ok := requireGrader(w, r); !ok {
		return
	}

	type statusChangeRequest struct {
		Emails []string `json:"emails"`
		Status string   `json:"status"`
	}

	var req statusChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.WriteErrorJson(w, "invalid request body",
			http.StatusBadRequest, "invalid_request_body")
		return
	}

	report, err := httpserver.admSrvc.ChangeStatusByEmail(r.Context(),
		editionParam(r), req.Emails, applicant.Status(req.Status))
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, report)
}
