package domain

import "time"

// TaskStatus is a Kanban column. Any authorized caller may set any status
// from any other; there is no enforced transition table.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusInReview   TaskStatus = "IN_REVIEW"
	TaskStatusConcluded  TaskStatus = "CONCLUDED"
)

// AllTaskStatuses contains all valid statuses in board order
var AllTaskStatuses = []TaskStatus{
	TaskStatusPending, TaskStatusInProgress, TaskStatusInReview, TaskStatusConcluded,
}

// IsValid checks if a status is valid
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusInReview, TaskStatusConcluded:
		return true
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
)

// IsValid checks if a priority is valid
func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

type Task struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	Title       string       `json:"title" gorm:"not null"`
	Description string       `json:"description"`
	Status      TaskStatus   `json:"status" gorm:"type:varchar(16);default:'PENDING';not null"`
	Priority    TaskPriority `json:"priority" gorm:"type:varchar(16);default:'MEDIUM';not null"`
	ProjectID   uint         `json:"projectId" gorm:"index;not null"`
	Project     *Project     `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
	AssigneeID  uint         `json:"assigneeId" gorm:"index;not null"`
	Assignee    *User        `json:"assignee,omitempty" gorm:"foreignKey:AssigneeID"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}
