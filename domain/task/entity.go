// Package task provides the core domain types for task management.
package task

import (
	"strings"
	"time"
)

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

const (
	// StatusPending indicates the task has not been started yet.
	StatusPending TaskStatus = "pending"
	// StatusInProgress indicates the task is actively being worked on.
	StatusInProgress TaskStatus = "in_progress"
	// StatusCompleted indicates the task has been finished.
	StatusCompleted TaskStatus = "completed"
	// StatusCancelled indicates the task was abandoned before completion.
	StatusCancelled TaskStatus = "cancelled"
)

// IsValid returns true if the status is one of the known values.
func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// TaskPriority represents the urgency level of a task.
type TaskPriority string

const (
	// PriorityLow indicates the task can wait.
	PriorityLow TaskPriority = "low"
	// PriorityMedium is the default priority for new tasks.
	PriorityMedium TaskPriority = "medium"
	// PriorityHigh indicates the task should be handled soon.
	PriorityHigh TaskPriority = "high"
	// PriorityUrgent indicates the task needs immediate attention.
	PriorityUrgent TaskPriority = "urgent"
)

// IsValid returns true if the priority is one of the known values.
func (p TaskPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	default:
		return false
	}
}

// Task is the core domain entity representing a unit of work.
// Timestamps are managed by the service layer, not by GORM: created_at is
// set once at creation and updated_at stays null until the first update.
type Task struct {
	ID          uint         `gorm:"primarykey" json:"id"`
	Title       string       `gorm:"size:200;not null" json:"title"`
	Description *string      `gorm:"size:1000" json:"description"`
	Status      TaskStatus   `gorm:"size:20;not null;default:pending;index" json:"status"`
	Priority    TaskPriority `gorm:"size:20;not null;default:medium;index" json:"priority"`
	CreatedAt   time.Time    `gorm:"autoCreateTime:false" json:"created_at"`
	UpdatedAt   *time.Time   `gorm:"autoUpdateTime:false" json:"updated_at"`
	DueDate     *time.Time   `json:"due_date"`
	AssignedTo  *string      `gorm:"size:100" json:"assigned_to"`
}

// TableName returns the table name for the Task model.
func (Task) TableName() string {
	return "tasks"
}

// NewTask creates a pending task from a create request with defaults applied.
// The request must already be validated.
func NewTask(req CreateTaskRequest) *Task {
	priority := req.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	return &Task{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Status:      StatusPending,
		Priority:    priority,
		CreatedAt:   time.Now().UTC(),
		DueDate:     req.DueDate,
		AssignedTo:  req.AssignedTo,
	}
}
