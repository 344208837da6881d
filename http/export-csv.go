package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/httplog/v2"

	"github.com/hacknight-dev/backend/export"
	"github.com/hacknight-dev/backend/httpjson"
)

func (httpserver *HttpServer) exportCsv(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	if _, ok := requireGrader(w, r); !ok {
		return
	}

	edition := editionParam(r)
	rows, err := httpserver.applSrvc.ListFlattened(r.Context(), edition)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	content, err := export.CSV(rows)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", edition+"-applicants.csv"))
	w.WriteHeader(http.StatusOK)
	w.Write(content)
}

func (httpserver *HttpServer) exportToS3(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	if _, ok := requireGrader(w, r); !ok {
		return
	}

	if httpserver.exporter == nil {
		httpjson.WriteErrorJson(w, "no export bucket configured",
			http.StatusServiceUnavailable, "export_unavailable")
		return
	}

	edition := editionParam(r)
	rows, err := httpserver.applSrvc.ListFlattened(r.Context(), edition)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	url, err := httpserver.exporter.UploadCSV(r.Context(), edition, rows)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, map[string]string{"url": url})
}
