package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/taskora/taskora-api/internal/domain"
	"github.com/taskora/taskora-api/internal/service"
	"go.uber.org/zap"
)

type PomodoroHandler struct {
	pomodoroService *service.PomodoroService
	logger          *zap.Logger
}

func NewPomodoroHandler(pomodoroService *service.PomodoroService, logger *zap.Logger) *PomodoroHandler {
	return &PomodoroHandler{pomodoroService: pomodoroService, logger: logger}
}

type CreateSessionRequest struct {
	Duration int                 `json:"duration"`
	Mode     domain.PomodoroMode `json:"mode"`
	TaskID   *uint               `json:"taskId"`
}

func (h *PomodoroHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	// A non-numeric duration fails the decode and is a validation error.
	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Fields \"duration\" (number) and \"mode\" (string) are required")
		return
	}

	session, err := h.pomodoroService.Create(r.Context(), id, service.CreateSessionInput{
		Duration: req.Duration,
		Mode:     req.Mode,
		TaskID:   req.TaskID,
	})
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusCreated, session)
}
