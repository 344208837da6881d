package http

import (
	"net/http"

	"github.com/go-chi/httplog/v2"

	"github.com/hacknight-dev/backend/httpjson"
)

func (httpserver *HttpServer) listApplicants(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	rows, err := httpserver.applSrvc.ListFlattened(r.Context(), editionParam(r))
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, rows)
}
