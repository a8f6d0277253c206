package client_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskora/taskora-api/internal/client"
	"github.com/taskora/taskora-api/internal/domain"
	"github.com/taskora/taskora-api/internal/testutil"
)

func TestClient_Workflow(t *testing.T) {
	ts := testutil.NewTestServer(t)
	user, password := testutil.NewUserBuilder().Build(t, ts.DB.DB)

	c := client.New(ts.BaseURL())

	loggedIn, err := c.Login(user.Email, password)
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)

	project, err := c.CreateProject("Sprint", "client test drive")
	require.NoError(t, err)
	assert.Equal(t, user.ID, project.OwnerID)

	projects, err := c.ListProjects()
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, project.ID, projects[0].ID)

	task, err := c.CreateTask(project.ID, "Ship it", "")
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusPending, task.Status)

	moved, err := c.MoveTask(project.ID, task.ID, domain.TaskStatusConcluded)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusConcluded, moved.Status)

	_, err = c.LogPomodoroSession(1500, domain.PomodoroModeWork, &task.ID)
	require.NoError(t, err)

	summary, err := c.AnalyticsSummary()
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.TasksCompleted)
	assert.Equal(t, int64(1500), summary.TotalFocusTime.Seconds)

	dashboard, err := c.AnalyticsDashboard()
	require.NoError(t, err)
	assert.Equal(t, int64(1), dashboard.Summary.PomodoroSessions)
	assert.Len(t, dashboard.RecentProjects, 1)
	assert.Empty(t, dashboard.RecentTasks, "concluded tasks are not recent work")

	require.NoError(t, c.DeleteTask(project.ID, task.ID))
	tasks, err := c.ListTasks(project.ID)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	require.NoError(t, c.DeleteProject(project.ID))
	projects, err = c.ListProjects()
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestClient_UnauthorizedClearsToken(t *testing.T) {
	ts := testutil.NewTestServer(t)

	c := client.New(ts.BaseURL())
	c.SetToken("not-a-real-token")

	_, err := c.ListProjects()
	require.ErrorIs(t, err, client.ErrUnauthorized)

	// The stale token is dropped; the next call fails for the same reason
	// rather than retrying the bad credential.
	_, err = c.AnalyticsSummary()
	require.ErrorIs(t, err, client.ErrUnauthorized)
}
