package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/taskora/taskora-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	email    string
	name     string
	password string
	role     domain.Role
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		email:    fmt.Sprintf("testuser_%s@taskora.test", uuid.New().String()[:8]),
		name:     "Test User",
		password: "testpassword123",
		role:     domain.RoleUser,
	}
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithName sets the display name
func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.name = name
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// WithRole sets the role
func (b *UserBuilder) WithRole(role domain.Role) *UserBuilder {
	b.role = role
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		Email:        b.email,
		Name:         b.name,
		PasswordHash: string(hashedPassword),
		Role:         b.role,
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// ProjectBuilder creates test projects
type ProjectBuilder struct {
	name        string
	description string
	ownerID     uint
}

// NewProjectBuilder creates a new ProjectBuilder with default values
func NewProjectBuilder(ownerID uint) *ProjectBuilder {
	return &ProjectBuilder{
		name:    fmt.Sprintf("Project %s", uuid.New().String()[:8]),
		ownerID: ownerID,
	}
}

// WithName sets the project name
func (b *ProjectBuilder) WithName(name string) *ProjectBuilder {
	b.name = name
	return b
}

// WithDescription sets the description
func (b *ProjectBuilder) WithDescription(description string) *ProjectBuilder {
	b.description = description
	return b
}

// Build creates the project in the database
func (b *ProjectBuilder) Build(t *testing.T, db *gorm.DB) *domain.Project {
	t.Helper()

	project := &domain.Project{
		Name:        b.name,
		Description: b.description,
		Status:      domain.ProjectStatusActive,
		OwnerID:     b.ownerID,
	}

	if err := db.Create(project).Error; err != nil {
		t.Fatalf("failed to create project: %v", err)
	}

	return project
}

// TaskBuilder creates test tasks
type TaskBuilder struct {
	title      string
	status     domain.TaskStatus
	priority   domain.TaskPriority
	projectID  uint
	assigneeID uint
	createdAt  *time.Time
	updatedAt  *time.Time
}

// NewTaskBuilder creates a new TaskBuilder with default values
func NewTaskBuilder(projectID, assigneeID uint) *TaskBuilder {
	return &TaskBuilder{
		title:      fmt.Sprintf("Task %s", uuid.New().String()[:8]),
		status:     domain.TaskStatusPending,
		priority:   domain.TaskPriorityMedium,
		projectID:  projectID,
		assigneeID: assigneeID,
	}
}

// WithTitle sets the title
func (b *TaskBuilder) WithTitle(title string) *TaskBuilder {
	b.title = title
	return b
}

// WithStatus sets the status
func (b *TaskBuilder) WithStatus(status domain.TaskStatus) *TaskBuilder {
	b.status = status
	return b
}

// WithPriority sets the priority
func (b *TaskBuilder) WithPriority(priority domain.TaskPriority) *TaskBuilder {
	b.priority = priority
	return b
}

// WithTimestamps pins createdAt/updatedAt, e.g. to place a task outside the
// analytics window
func (b *TaskBuilder) WithTimestamps(createdAt, updatedAt time.Time) *TaskBuilder {
	b.createdAt = &createdAt
	b.updatedAt = &updatedAt
	return b
}

// Build creates the task in the database
func (b *TaskBuilder) Build(t *testing.T, db *gorm.DB) *domain.Task {
	t.Helper()

	task := &domain.Task{
		Title:      b.title,
		Status:     b.status,
		Priority:   b.priority,
		ProjectID:  b.projectID,
		AssigneeID: b.assigneeID,
	}

	if err := db.Create(task).Error; err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	if b.createdAt != nil {
		err := db.Model(task).
			UpdateColumns(map[string]interface{}{
				"created_at": *b.createdAt,
				"updated_at": *b.updatedAt,
			}).Error
		if err != nil {
			t.Fatalf("failed to pin task timestamps: %v", err)
		}
		task.CreatedAt = *b.createdAt
		task.UpdatedAt = *b.updatedAt
	}

	return task
}

// PomodoroBuilder creates test pomodoro sessions
type PomodoroBuilder struct {
	duration  int
	mode      domain.PomodoroMode
	userID    uint
	taskID    *uint
	createdAt *time.Time
}

// NewPomodoroBuilder creates a new PomodoroBuilder with default values
func NewPomodoroBuilder(userID uint) *PomodoroBuilder {
	return &PomodoroBuilder{
		duration: 1500,
		mode:     domain.PomodoroModeWork,
		userID:   userID,
	}
}

// WithDuration sets the duration in seconds
func (b *PomodoroBuilder) WithDuration(duration int) *PomodoroBuilder {
	b.duration = duration
	return b
}

// WithMode sets the mode
func (b *PomodoroBuilder) WithMode(mode domain.PomodoroMode) *PomodoroBuilder {
	b.mode = mode
	return b
}

// WithTask links the session to a task
func (b *PomodoroBuilder) WithTask(taskID uint) *PomodoroBuilder {
	b.taskID = &taskID
	return b
}

// WithCreatedAt pins the creation time
func (b *PomodoroBuilder) WithCreatedAt(createdAt time.Time) *PomodoroBuilder {
	b.createdAt = &createdAt
	return b
}

// Build creates the session in the database
func (b *PomodoroBuilder) Build(t *testing.T, db *gorm.DB) *domain.PomodoroSession {
	t.Helper()

	session := &domain.PomodoroSession{
		Duration: b.duration,
		Mode:     b.mode,
		UserID:   b.userID,
		TaskID:   b.taskID,
	}

	if err := db.Create(session).Error; err != nil {
		t.Fatalf("failed to create pomodoro session: %v", err)
	}

	if b.createdAt != nil {
		err := db.Model(session).
			UpdateColumn("created_at", *b.createdAt).Error
		if err != nil {
			t.Fatalf("failed to pin session timestamp: %v", err)
		}
		session.CreatedAt = *b.createdAt
	}

	return session
}

// CreateAuthenticatedRequest creates an HTTP request with auth token
func CreateAuthenticatedRequest(t *testing.T, method, url string, body interface{}, token string) *http.Request {
	t.Helper()

	var bodyReader *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	} else {
		bodyReader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, url, bodyReader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req
}

// DoAuthenticatedRequest performs an authenticated request and returns the
// response
func DoAuthenticatedRequest(t *testing.T, method, url string, body interface{}, token string) *http.Response {
	t.Helper()

	req := CreateAuthenticatedRequest(t, method, url, body, token)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}
