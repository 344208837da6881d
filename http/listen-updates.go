package http

import (
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/httplog/v2"
)

// listenUpdates streams applicant updates for one edition as server-sent
// events, with periodic keep-alives.
func (httpserver *HttpServer) listenUpdates(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported!", http.StatusInternalServerError)
		return
	}

	edition := editionParam(r)

	updateCh, err := httpserver.applSrvc.SubscribeUpdates(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var writeMutex sync.Mutex
	safeWrite := func(data string) {
		writeMutex.Lock()
		defer writeMutex.Unlock()
		io.WriteString(w, data)
		flusher.Flush()
	}

	keepAliveTicker := time.NewTicker(15 * time.Second)
	defer keepAliveTicker.Stop()

	for {
		select {
		case <-keepAliveTicker.C:
			safeWrite(": keep-alive\n\n")
		case update, ok := <-updateCh:
			if !ok {
				return
			}
			if update.Edition != edition {
				continue
			}
			marshalled, err := json.Marshal(update)
			if err != nil {
				logger.Warn("failed to marshal applicant update",
					"error", err, "applicant_id", update.ApplicantID)
				continue
			}
			safeWrite("data: " + string(marshalled) + "\n\n")
		case <-r.Context().Done():
			return
		}
	}
}
