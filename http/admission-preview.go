package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/httplog/v2"

	"github.com/hacknight-dev/backend/admission"
	"github.com/hacknight-dev/backend/httpjson"
)

// previewAdmission computes the accept-list for the supplied criteria
// without changing any applicant. The operator reviews the list before
// committing it.
func (httpserver *HttpServer) previewAdmission(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	if _, ok := requireGrader(w, r); !ok {
		return
	}

	var criteria admission.Criteria
	if err := json.NewDecoder(r.Body).Decode(&criteria); err != nil {
		httpjson.WriteErrorJson(w, "invalid request body",
			http.StatusBadRequest, "invalid_request_body")
		return
	}

	ids, err := httpserver.admSrvc.Preview(r.Context(), editionParam(r), criteria)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, map[string]any{
		"applicant_ids": ids,
		"count":         len(ids),
	})
}
