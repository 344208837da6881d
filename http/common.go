package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hacknight-dev/backend/auth"
	"github.com/hacknight-dev/backend/httpjson"
)

func editionParam(r *http.Request) string {
	return chi.URLParam(r, "edition")
}

func applicantIdParam(r *http.Request) string {
	return chi.URLParam(r, "applicantId")
}

// requireGrader returns the authenticated username or writes a 401 and
// returns false. Grading and admission writes are attributed to this
// identity.
func requireGrader(w http.ResponseWriter, r *http.Request) (string, bool) {
	username := auth.UsernameFromContext(r.Context())
	if username == "" {
		httpjson.WriteErrorJson(w, "authentication required",
			http.StatusUnauthorized, "unauthorized")
		return "", false
	}
	return username, true
}
