package service

import (
	"github.com/taskora/taskora-api/internal/config"
	"github.com/taskora/taskora-api/internal/repository"
)

type Services struct {
	Auth      *AuthService
	Project   *ProjectService
	Task      *TaskService
	Pomodoro  *PomodoroService
	Analytics *AnalyticsService
	User      *UserService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:      NewAuthService(repos.User, cfg),
		Project:   NewProjectService(repos.Project),
		Task:      NewTaskService(repos.Task, repos.Project),
		Pomodoro:  NewPomodoroService(repos.Pomodoro),
		Analytics: NewAnalyticsService(repos.Task, repos.Project, repos.Pomodoro),
		User:      NewUserService(repos.User),
	}
}
