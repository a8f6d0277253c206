package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taskora/taskora-api/internal/domain"
	"github.com/taskora/taskora-api/internal/testutil"
)

func TestPomodoroHandler_Create(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, _ := testutil.NewUserBuilder().Build(t, ts.DB.DB)
	token := ts.TokenFor(t, user)
	project := testutil.NewProjectBuilder(user.ID).Build(t, ts.DB.DB)
	task := testutil.NewTaskBuilder(project.ID, user.ID).Build(t, ts.DB.DB)

	tests := []struct {
		name       string
		body       interface{}
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "work session",
			body:       map[string]interface{}{"duration": 1500, "mode": "WORK"},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "break session linked to a task",
			body:       map[string]interface{}{"duration": 300, "mode": "SHORT_BREAK", "taskId": task.ID},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "string duration fails the decode",
			body:       map[string]interface{}{"duration": "1500", "mode": "WORK"},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "duration",
		},
		{
			name:       "zero duration",
			body:       map[string]interface{}{"duration": 0, "mode": "WORK"},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "duration",
		},
		{
			name:       "negative duration",
			body:       map[string]interface{}{"duration": -60, "mode": "WORK"},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "duration",
		},
		{
			name:       "unknown mode",
			body:       map[string]interface{}{"duration": 1500, "mode": "NAP"},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := testutil.DoAuthenticatedRequest(t, http.MethodPost,
				ts.APIURL("/pomodoro/sessions"), tt.body, token)
			defer resp.Body.Close()

			if tt.wantMsg != "" {
				testutil.AssertErrorResponse(t, resp, tt.wantStatus, tt.wantMsg)
				return
			}
			testutil.AssertStatusCode(t, resp, tt.wantStatus)

			var session domain.PomodoroSession
			testutil.AssertJSONResponse(t, resp, &session)
			assert.Equal(t, user.ID, session.UserID, "session always belongs to the caller")
			assert.NotZero(t, session.ID)
		})
	}
}

func TestPomodoroHandler_RequiresAuth(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp := testutil.DoAuthenticatedRequest(t, http.MethodPost,
		ts.APIURL("/pomodoro/sessions"),
		map[string]interface{}{"duration": 1500, "mode": "WORK"}, "")
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusUnauthorized)
}
