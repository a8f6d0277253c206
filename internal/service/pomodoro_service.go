package service

import (
	"context"
	"errors"

	"github.com/taskora/taskora-api/internal/domain"
	"github.com/taskora/taskora-api/internal/repository"
)

var (
	ErrInvalidDuration     = errors.New("duration must be a positive number of seconds")
	ErrInvalidPomodoroMode = errors.New("invalid pomodoro mode")
)

type PomodoroService struct {
	pomodoroRepo repository.PomodoroRepository
}

func NewPomodoroService(pomodoroRepo repository.PomodoroRepository) *PomodoroService {
	return &PomodoroService{pomodoroRepo: pomodoroRepo}
}

type CreateSessionInput struct {
	Duration int
	Mode     domain.PomodoroMode
	TaskID   *uint
}

// Create appends a session to the focus log. The owner is always the
// authenticated caller, never taken from the request body.
func (s *PomodoroService) Create(ctx context.Context, identity domain.Identity, input CreateSessionInput) (*domain.PomodoroSession, error) {
	if input.Duration <= 0 {
		return nil, ErrInvalidDuration
	}
	if !input.Mode.IsValid() {
		return nil, ErrInvalidPomodoroMode
	}

	session := &domain.PomodoroSession{
		Duration: input.Duration,
		Mode:     input.Mode,
		UserID:   identity.UserID,
		TaskID:   input.TaskID,
	}

	if err := s.pomodoroRepo.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}
