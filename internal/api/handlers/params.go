package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/taskora/taskora-api/internal/api/middleware"
	"github.com/taskora/taskora-api/internal/domain"
)

// pathID parses a numeric path segment. A non-numeric segment is a client
// error, not a not-found.
func pathID(r *http.Request, name string) (uint, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// identity pulls the authenticated caller off the request context.
func identity(w http.ResponseWriter, r *http.Request) (domain.Identity, bool) {
	id, ok := middleware.GetIdentity(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return domain.Identity{}, false
	}
	return id, true
}
