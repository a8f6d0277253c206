package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/taskora/taskora-api/internal/domain"
	"github.com/taskora/taskora-api/internal/service"
	"go.uber.org/zap"
)

// All error bodies are {"message": ...}; the status code carries the
// taxonomy. Unexpected failures are logged server-side and reported with a
// generic message only.

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}

// respondServiceError translates a service error to the nearest taxonomy
// member: 400 validation, 401 authentication, 403 forbidden, 404 not found,
// 500 everything else.
func respondServiceError(w http.ResponseWriter, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, domain.ErrForbidden):
		respondError(w, http.StatusForbidden, "Access denied")
	case errors.Is(err, domain.ErrProjectNotFound),
		errors.Is(err, domain.ErrTaskNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrTaskProjectMismatch),
		errors.Is(err, service.ErrInvalidTaskStatus),
		errors.Is(err, service.ErrInvalidTaskPriority),
		errors.Is(err, service.ErrInvalidDuration),
		errors.Is(err, service.ErrInvalidPomodoroMode),
		errors.Is(err, service.ErrInvalidRole):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		logger.Error("internal error", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}
