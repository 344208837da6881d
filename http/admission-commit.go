package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/httplog/v2"

	"github.com/hacknight-dev/backend/httpjson"
)

// commitAdmission transitions the confirmed accept-list to "accepted,
// awaiting response" and enqueues decision notifications.
func (httpserver *HttpServer) commitAdmission(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	if _, ok := requireGrader(w, r); !ok {
		return
	}

	type commitRequest struct {
		ApplicantIds []string `json:"applicant_ids"`
	}

	var req commitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.WriteErrorJson(w, "invalid request body",
			http.StatusBadRequest, "invalid_request_body")
		return
	}

	result, err := httpserver.admSrvc.Commit(r.Context(), editionParam(r), req.ApplicantIds)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, result)
}
