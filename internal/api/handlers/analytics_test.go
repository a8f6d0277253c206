package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/taskora/taskora-api/internal/domain"
	"github.com/taskora/taskora-api/internal/service"
	"github.com/taskora/taskora-api/internal/testutil"
)

func TestAnalyticsHandler_Summary(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, _ := testutil.NewUserBuilder().Build(t, ts.DB.DB)
	token := ts.TokenFor(t, user)
	project := testutil.NewProjectBuilder(user.ID).Build(t, ts.DB.DB)

	now := time.Now()
	old := now.Add(-30 * 24 * time.Hour)

	// Inside the window: one created task, one concluded task, one 25-minute
	// work session.
	testutil.NewTaskBuilder(project.ID, user.ID).Build(t, ts.DB.DB)
	testutil.NewTaskBuilder(project.ID, user.ID).
		WithStatus(domain.TaskStatusConcluded).
		Build(t, ts.DB.DB)
	testutil.NewPomodoroBuilder(user.ID).WithDuration(1500).Build(t, ts.DB.DB)

	// Outside the window: an old concluded task and an old session. Neither
	// may count.
	testutil.NewTaskBuilder(project.ID, user.ID).
		WithStatus(domain.TaskStatusConcluded).
		WithTimestamps(old, old).
		Build(t, ts.DB.DB)
	testutil.NewPomodoroBuilder(user.ID).WithCreatedAt(old).Build(t, ts.DB.DB)

	// Breaks never count toward focus time.
	testutil.NewPomodoroBuilder(user.ID).
		WithDuration(300).
		WithMode(domain.PomodoroModeShortBreak).
		Build(t, ts.DB.DB)

	resp := testutil.DoAuthenticatedRequest(t, http.MethodGet, ts.APIURL("/analytics/summary"), nil, token)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var summary service.Summary
	testutil.AssertJSONResponse(t, resp, &summary)

	assert.Equal(t, int64(2), summary.TasksCreated)
	assert.Equal(t, int64(1), summary.TasksCompleted)
	assert.Equal(t, int64(1), summary.PomodoroSessions)
	assert.InDelta(t, 0.5, summary.CompletionRate, 0.001)
	assert.Equal(t, int64(1500), summary.TotalFocusTime.Seconds)
	assert.Equal(t, int64(25), summary.TotalFocusTime.Minutes)
	assert.InDelta(t, float64(1500)/3600, summary.TotalFocusTime.Hours, 0.001)

	assert.WithinDuration(t, now, summary.Period.EndDate, 5*time.Second)
	assert.WithinDuration(t, now.Add(-service.AnalyticsWindow), summary.Period.StartDate, 5*time.Second)
}

func TestAnalyticsHandler_SummaryEmpty(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, _ := testutil.NewUserBuilder().Build(t, ts.DB.DB)
	token := ts.TokenFor(t, user)

	resp := testutil.DoAuthenticatedRequest(t, http.MethodGet, ts.APIURL("/analytics/summary"), nil, token)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var summary service.Summary
	testutil.AssertJSONResponse(t, resp, &summary)

	assert.Zero(t, summary.TasksCreated)
	assert.Zero(t, summary.TasksCompleted)
	assert.Zero(t, summary.CompletionRate, "no created tasks means a zero rate, not a division error")
	assert.Zero(t, summary.ProductivityScore)
}

func TestAnalyticsHandler_Dashboard(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, _ := testutil.NewUserBuilder().Build(t, ts.DB.DB)
	other, _ := testutil.NewUserBuilder().Build(t, ts.DB.DB)
	token := ts.TokenFor(t, user)

	for i := 0; i < 4; i++ {
		testutil.NewProjectBuilder(user.ID).Build(t, ts.DB.DB)
	}
	project := testutil.NewProjectBuilder(user.ID).WithName("latest").Build(t, ts.DB.DB)

	for i := 0; i < 6; i++ {
		testutil.NewTaskBuilder(project.ID, user.ID).Build(t, ts.DB.DB)
	}
	// Concluded tasks are not "recent work"
	testutil.NewTaskBuilder(project.ID, user.ID).
		WithStatus(domain.TaskStatusConcluded).
		Build(t, ts.DB.DB)
	// Other users' tasks never leak in
	otherProject := testutil.NewProjectBuilder(other.ID).Build(t, ts.DB.DB)
	testutil.NewTaskBuilder(otherProject.ID, other.ID).Build(t, ts.DB.DB)

	resp := testutil.DoAuthenticatedRequest(t, http.MethodGet, ts.APIURL("/analytics/dashboard"), nil, token)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var data service.DashboardData
	testutil.AssertJSONResponse(t, resp, &data)

	assert.Len(t, data.RecentTasks, 5)
	for _, task := range data.RecentTasks {
		assert.Equal(t, user.ID, task.AssigneeID)
		assert.NotEqual(t, domain.TaskStatusConcluded, task.Status)
	}

	assert.Len(t, data.RecentProjects, 3)
	assert.Equal(t, "latest", data.RecentProjects[0].Name)

	assert.Equal(t, int64(7), data.Summary.TasksCreated)
	assert.Equal(t, int64(1), data.Summary.TasksCompleted)
}
