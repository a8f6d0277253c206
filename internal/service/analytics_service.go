package service

import (
	"context"
	"math"
	"time"

	"github.com/taskora/taskora-api/internal/domain"
	"github.com/taskora/taskora-api/internal/repository"
	"golang.org/x/sync/errgroup"
)

// AnalyticsWindow is the trailing range every summary is computed over.
const AnalyticsWindow = 7 * 24 * time.Hour

// Productivity score weights: 60% task completion rate, 40% focus time
// capped at 10 hours. Product decision; keep the constants for output
// compatibility.
const (
	completionWeight = 60.0
	focusWeight      = 40.0
	focusCapHours    = 10.0
)

const (
	dashboardRecentTasks    = 5
	dashboardRecentProjects = 3
)

type AnalyticsService struct {
	taskRepo     repository.TaskRepository
	projectRepo  repository.ProjectRepository
	pomodoroRepo repository.PomodoroRepository
}

func NewAnalyticsService(taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository, pomodoroRepo repository.PomodoroRepository) *AnalyticsService {
	return &AnalyticsService{
		taskRepo:     taskRepo,
		projectRepo:  projectRepo,
		pomodoroRepo: pomodoroRepo,
	}
}

type FocusTime struct {
	Seconds int64   `json:"seconds"`
	Minutes int64   `json:"minutes"`
	Hours   float64 `json:"hours"`
}

type Period struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

type Summary struct {
	TasksCompleted    int64     `json:"tasksCompleted"`
	TasksCreated      int64     `json:"tasksCreated"`
	PomodoroSessions  int64     `json:"pomodoroSessions"`
	CompletionRate    float64   `json:"completionRate"`
	ProductivityScore int       `json:"productivityScore"`
	TotalFocusTime    FocusTime `json:"totalFocusTime"`
	Period            Period    `json:"period"`
}

type DashboardData struct {
	Summary        Summary           `json:"summary"`
	RecentTasks    []*domain.Task    `json:"recentTasks"`
	RecentProjects []*domain.Project `json:"recentProjects"`
}

// WindowCounts holds the raw aggregates for one window.
type WindowCounts struct {
	TasksCompleted   int64
	TasksCreated     int64
	PomodoroSessions int64
	FocusSeconds     int64
}

// NewSummary derives the reported summary from raw window counts. Pure.
func NewSummary(counts WindowCounts, from, to time.Time) Summary {
	var completionRate float64
	if counts.TasksCreated > 0 {
		completionRate = float64(counts.TasksCompleted) / float64(counts.TasksCreated)
	}

	focusHours := float64(counts.FocusSeconds) / 3600

	return Summary{
		TasksCompleted:    counts.TasksCompleted,
		TasksCreated:      counts.TasksCreated,
		PomodoroSessions:  counts.PomodoroSessions,
		CompletionRate:    completionRate,
		ProductivityScore: productivityScore(completionRate, focusHours),
		TotalFocusTime: FocusTime{
			Seconds: counts.FocusSeconds,
			Minutes: int64(math.Round(float64(counts.FocusSeconds) / 60)),
			Hours:   focusHours,
		},
		Period: Period{StartDate: from, EndDate: to},
	}
}

func productivityScore(completionRate, focusHours float64) int {
	// Concluding tasks created before the window can push the raw rate past 1;
	// the score stays within [0, 100].
	completion := math.Min(completionRate, 1)
	focus := math.Min(focusHours, focusCapHours) / focusCapHours
	return int(math.Round(completion*completionWeight + focus*focusWeight))
}

// Summarize computes the windowed aggregates for one user. The four
// sub-queries are independent reads and run concurrently; any failure fails
// the whole summary.
func (s *AnalyticsService) Summarize(ctx context.Context, userID uint) (*Summary, error) {
	to := time.Now()
	from := to.Add(-AnalyticsWindow)

	var counts WindowCounts
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.taskRepo.CountConcludedInWindow(gctx, userID, from, to)
		counts.TasksCompleted = n
		return err
	})
	g.Go(func() error {
		n, err := s.taskRepo.CountCreatedInWindow(gctx, userID, from, to)
		counts.TasksCreated = n
		return err
	})
	g.Go(func() error {
		n, err := s.pomodoroRepo.CountWorkInWindow(gctx, userID, from, to)
		counts.PomodoroSessions = n
		return err
	})
	g.Go(func() error {
		n, err := s.pomodoroRepo.SumWorkDurationInWindow(gctx, userID, from, to)
		counts.FocusSeconds = n
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := NewSummary(counts, from, to)
	return &summary, nil
}

// Dashboard returns the summary plus the caller's most recent open tasks and
// projects. The recent reads are bounded and unwindowed.
func (s *AnalyticsService) Dashboard(ctx context.Context, userID uint) (*DashboardData, error) {
	summary, err := s.Summarize(ctx, userID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.ListRecentOpenByAssignee(ctx, userID, dashboardRecentTasks)
	if err != nil {
		return nil, err
	}

	projects, err := s.projectRepo.ListRecentByOwner(ctx, userID, dashboardRecentProjects)
	if err != nil {
		return nil, err
	}

	return &DashboardData{
		Summary:        *summary,
		RecentTasks:    tasks,
		RecentProjects: projects,
	}, nil
}
