package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/taskora/taskora-api/internal/domain"
)

// ErrUnauthorized is returned when the server rejects the session token.
// Callers should drop the stored token and send the user back to login.
var ErrUnauthorized = errors.New("unauthorized")

// Client is the browser data layer's Go counterpart: it attaches the session
// token to every request and surfaces auth failures distinctly so the caller
// can redirect to login.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL + "/api/v1",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetToken installs a session token obtained elsewhere (e.g. from a cookie).
func (c *Client) SetToken(token string) {
	c.token = token
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Login exchanges credentials for a session token and stores it on the
// client.
func (c *Client) Login(email, password string) (*domain.User, error) {
	body := map[string]string{"email": email, "password": password}

	var result loginResponse
	if err := c.do(http.MethodPost, "/auth/login", body, http.StatusOK, &result); err != nil {
		return nil, err
	}

	c.token = result.Token
	return result.User, nil
}

func (c *Client) ListProjects() ([]*domain.Project, error) {
	var projects []*domain.Project
	err := c.do(http.MethodGet, "/projects", nil, http.StatusOK, &projects)
	return projects, err
}

func (c *Client) CreateProject(name, description string) (*domain.Project, error) {
	body := map[string]string{"name": name, "description": description}
	var project domain.Project
	if err := c.do(http.MethodPost, "/projects", body, http.StatusCreated, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (c *Client) DeleteProject(projectID uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/projects/%d", projectID), nil, http.StatusNoContent, nil)
}

func (c *Client) ListTasks(projectID uint) ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := c.do(http.MethodGet, fmt.Sprintf("/projects/%d/tasks", projectID), nil, http.StatusOK, &tasks)
	return tasks, err
}

func (c *Client) CreateTask(projectID uint, title, description string) (*domain.Task, error) {
	body := map[string]string{"title": title, "description": description}
	var task domain.Task
	if err := c.do(http.MethodPost, fmt.Sprintf("/projects/%d/tasks", projectID), body, http.StatusCreated, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// MoveTask is the server half of a Kanban drag: a partial update that only
// changes the status.
func (c *Client) MoveTask(projectID, taskID uint, status domain.TaskStatus) (*domain.Task, error) {
	body := map[string]domain.TaskStatus{"status": status}
	var task domain.Task
	if err := c.do(http.MethodPut, fmt.Sprintf("/projects/%d/tasks/%d", projectID, taskID), body, http.StatusOK, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) DeleteTask(projectID, taskID uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/projects/%d/tasks/%d", projectID, taskID), nil, http.StatusNoContent, nil)
}

func (c *Client) LogPomodoroSession(duration int, mode domain.PomodoroMode, taskID *uint) (*domain.PomodoroSession, error) {
	body := map[string]interface{}{"duration": duration, "mode": mode}
	if taskID != nil {
		body["taskId"] = *taskID
	}
	var session domain.PomodoroSession
	if err := c.do(http.MethodPost, "/pomodoro/sessions", body, http.StatusCreated, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Summary mirrors the analytics summary response.
type Summary struct {
	TasksCompleted    int64   `json:"tasksCompleted"`
	TasksCreated      int64   `json:"tasksCreated"`
	PomodoroSessions  int64   `json:"pomodoroSessions"`
	CompletionRate    float64 `json:"completionRate"`
	ProductivityScore int     `json:"productivityScore"`
	TotalFocusTime    struct {
		Seconds int64   `json:"seconds"`
		Minutes int64   `json:"minutes"`
		Hours   float64 `json:"hours"`
	} `json:"totalFocusTime"`
}

func (c *Client) AnalyticsSummary() (*Summary, error) {
	var summary Summary
	if err := c.do(http.MethodGet, "/analytics/summary", nil, http.StatusOK, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

type Dashboard struct {
	Summary        Summary           `json:"summary"`
	RecentTasks    []*domain.Task    `json:"recentTasks"`
	RecentProjects []*domain.Project `json:"recentProjects"`
}

func (c *Client) AnalyticsDashboard() (*Dashboard, error) {
	var dashboard Dashboard
	if err := c.do(http.MethodGet, "/analytics/dashboard", nil, http.StatusOK, &dashboard); err != nil {
		return nil, err
	}
	return &dashboard, nil
}

type apiError struct {
	Message string `json:"message"`
}

func (c *Client) do(method, path string, body interface{}, wantStatus int, out interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return err
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, c.baseURL+path, bodyReader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		c.token = ""
		return fmt.Errorf("%s %s: %w", method, path, ErrUnauthorized)
	}

	if resp.StatusCode != wantStatus {
		var apiErr apiError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
			return fmt.Errorf("%s %s: %s (status %d)", method, path, apiErr.Message, resp.StatusCode)
		}
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
