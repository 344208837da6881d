package http

import (
	"encoding/json"
	"net/http"

	"github.com/hacknight-dev/backend/httpjson"
)

// saveComment accepts the grading comment as typed; writes are debounced
// behind the scoring service's quiet interval.
func (httpserver *HttpServer) saveComment(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireGrader(w, r); !ok {
		return
	}

	type commentRequest struct {
		Comment string `json:"comment"`
	}

	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.WriteErrorJson(w, "invalid request body",
			http.StatusBadRequest, "invalid_request_body")
		return
	}

	httpserver.scoreSrvc.SaveComment(editionParam(r), applicantIdParam(r), req.Comment)

	httpjson.WriteSuccessJson(w, map[string]string{"state": "pending"})
}
