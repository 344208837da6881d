package http

import (
	"net/http"

	"github.com/go-chi/httplog/v2"

	"github.com/hacknight-dev/backend/httpjson"
)

func (httpserver *HttpServer) getApplicant(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	a, err := httpserver.applSrvc.Get(r.Context(), editionParam(r), applicantIdParam(r))
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, a)
}
