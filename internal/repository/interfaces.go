package repository

import (
	"context"
	"time"

	"github.com/taskora/taskora-api/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uint) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	List(ctx context.Context) ([]*domain.User, error)
}

type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id uint) (*domain.Project, error)
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, id uint) error
	ListByOwner(ctx context.Context, ownerID uint) ([]*domain.Project, error)
	ListRecentByOwner(ctx context.Context, ownerID uint, limit int) ([]*domain.Project, error)
}

type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, id uint) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id uint) error
	ListByProject(ctx context.Context, projectID uint) ([]*domain.Task, error)
	ListRecentOpenByAssignee(ctx context.Context, assigneeID uint, limit int) ([]*domain.Task, error)
	CountConcludedInWindow(ctx context.Context, assigneeID uint, from, to time.Time) (int64, error)
	CountCreatedInWindow(ctx context.Context, assigneeID uint, from, to time.Time) (int64, error)
}

type PomodoroRepository interface {
	Create(ctx context.Context, session *domain.PomodoroSession) error
	CountWorkInWindow(ctx context.Context, userID uint, from, to time.Time) (int64, error)
	SumWorkDurationInWindow(ctx context.Context, userID uint, from, to time.Time) (int64, error)
}

type Repositories struct {
	User     UserRepository
	Project  ProjectRepository
	Task     TaskRepository
	Pomodoro PomodoroRepository
}
