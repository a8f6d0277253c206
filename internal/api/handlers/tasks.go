package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/taskora/taskora-api/internal/domain"
	"github.com/taskora/taskora-api/internal/service"
	"go.uber.org/zap"
)

type TaskHandler struct {
	taskService *service.TaskService
	logger      *zap.Logger
}

func NewTaskHandler(taskService *service.TaskService, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{taskService: taskService, logger: logger}
}

type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	AssigneeID  *uint  `json:"assigneeId"`
}

type UpdateTaskRequest struct {
	Title       *string              `json:"title"`
	Description *string              `json:"description"`
	Status      *domain.TaskStatus   `json:"status"`
	Priority    *domain.TaskPriority `json:"priority"`
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	projectID, ok := pathID(r, "projectId")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid project id")
		return
	}

	tasks, err := h.taskService.List(r.Context(), id, projectID)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, tasks)
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	projectID, ok := pathID(r, "projectId")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid project id")
		return
	}

	var req CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Title == "" {
		respondError(w, http.StatusBadRequest, "Task title is required")
		return
	}

	task, err := h.taskService.Create(r.Context(), id, projectID, service.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
	})
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusCreated, task)
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	projectID, ok := pathID(r, "projectId")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid project id")
		return
	}
	taskID, ok := pathID(r, "taskId")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid task id")
		return
	}

	var req UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	task, err := h.taskService.Update(r.Context(), id, projectID, taskID, service.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
	})
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	projectID, ok := pathID(r, "projectId")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid project id")
		return
	}
	taskID, ok := pathID(r, "taskId")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid task id")
		return
	}

	if err := h.taskService.Delete(r.Context(), id, projectID, taskID); err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
