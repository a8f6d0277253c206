package service

import (
	"context"
	"errors"

	"github.com/taskora/taskora-api/internal/domain"
	"github.com/taskora/taskora-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrInvalidTaskStatus   = errors.New("invalid task status")
	ErrInvalidTaskPriority = errors.New("invalid task priority")
)

type TaskService struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
}

func NewTaskService(taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
	}
}

type CreateTaskInput struct {
	Title       string
	Description string
	AssigneeID  *uint
}

type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
	Priority    *domain.TaskPriority
}

// ownedProject loads the project and applies the ownership policy,
// existence first.
func (s *TaskService) ownedProject(ctx context.Context, identity domain.Identity, projectID uint) (*domain.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, err
	}

	if !domain.CanModify(project.OwnerID, identity) {
		return nil, domain.ErrForbidden
	}
	return project, nil
}

func (s *TaskService) List(ctx context.Context, identity domain.Identity, projectID uint) ([]*domain.Task, error) {
	if _, err := s.ownedProject(ctx, identity, projectID); err != nil {
		return nil, err
	}
	return s.taskRepo.ListByProject(ctx, projectID)
}

func (s *TaskService) Create(ctx context.Context, identity domain.Identity, projectID uint, input CreateTaskInput) (*domain.Task, error) {
	if _, err := s.ownedProject(ctx, identity, projectID); err != nil {
		return nil, err
	}

	assigneeID := identity.UserID
	if input.AssigneeID != nil {
		assigneeID = *input.AssigneeID
	}

	task := &domain.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      domain.TaskStatusPending,
		Priority:    domain.TaskPriorityMedium,
		ProjectID:   projectID,
		AssigneeID:  assigneeID,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	return s.taskRepo.GetByID(ctx, task.ID)
}

// getForMutation loads a task and checks, in order: existence, that the task
// belongs to the addressed project, and the ownership policy. A mismatched
// project id is a client error, never silently corrected.
func (s *TaskService) getForMutation(ctx context.Context, identity domain.Identity, projectID, taskID uint) (*domain.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}

	if task.ProjectID != projectID {
		return nil, domain.ErrTaskProjectMismatch
	}

	if task.Project == nil || !domain.CanModify(task.Project.OwnerID, identity) {
		return nil, domain.ErrForbidden
	}
	return task, nil
}

func (s *TaskService) Update(ctx context.Context, identity domain.Identity, projectID, taskID uint, input UpdateTaskInput) (*domain.Task, error) {
	task, err := s.getForMutation(ctx, identity, projectID, taskID)
	if err != nil {
		return nil, err
	}

	if input.Status != nil && !input.Status.IsValid() {
		return nil, ErrInvalidTaskStatus
	}
	if input.Priority != nil && !input.Priority.IsValid() {
		return nil, ErrInvalidTaskPriority
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Status != nil {
		task.Status = *input.Status
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}
	return s.taskRepo.GetByID(ctx, task.ID)
}

func (s *TaskService) Delete(ctx context.Context, identity domain.Identity, projectID, taskID uint) error {
	if _, err := s.getForMutation(ctx, identity, projectID, taskID); err != nil {
		return err
	}
	return s.taskRepo.Delete(ctx, taskID)
}
