package http

import (
	"net/http"

	"github.com/go-chi/httplog/v2"

	"github.com/hacknight-dev/backend/httpjson"
)

// runNormalization triggers a full z-score recomputation over the
// edition's scored population. Safe to re-trigger at any time.
func (httpserver *HttpServer) runNormalization(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	if _, ok := requireGrader(w, r); !ok {
		return
	}

	applied, err := httpserver.scoreSrvc.RunNormalization(r.Context(), editionParam(r))
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, map[string]int{"applicants_updated": applied})
}
