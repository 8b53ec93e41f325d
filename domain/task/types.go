package task

import "time"

// Pagination bounds for list operations.
const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// CreateTaskRequest is the request payload for creating a task.
// New tasks always start in the pending status.
type CreateTaskRequest struct {
	Title       string       `json:"title"`
	Description *string      `json:"description,omitempty" validate:"omitempty,max=1000"`
	Priority    TaskPriority `json:"priority,omitempty" validate:"omitempty,oneof=low medium high urgent"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
	AssignedTo  *string      `json:"assigned_to,omitempty" validate:"omitempty,max=100"`
}

// GetTaskRequest is the request for fetching a single task.
type GetTaskRequest struct {
	ID uint `json:"id"`
}

// UpdateTaskRequest is the request for partially updating a task.
// Nil fields are left unchanged.
type UpdateTaskRequest struct {
	ID          uint          `json:"id"`
	Title       *string       `json:"title,omitempty"`
	Description *string       `json:"description,omitempty" validate:"omitempty,max=1000"`
	Status      *TaskStatus   `json:"status,omitempty" validate:"omitempty,oneof=pending in_progress completed cancelled"`
	Priority    *TaskPriority `json:"priority,omitempty" validate:"omitempty,oneof=low medium high urgent"`
	DueDate     *time.Time    `json:"due_date,omitempty"`
	AssignedTo  *string       `json:"assigned_to,omitempty" validate:"omitempty,max=100"`
}

// DeleteTaskRequest is the request for deleting a task.
type DeleteTaskRequest struct {
	ID uint `json:"id"`
}

// DeleteTaskResponse is the response after deleting a task.
type DeleteTaskResponse struct {
	Deleted bool `json:"deleted"`
	ID      uint `json:"id"`
}

// ListTasksRequest is the request for listing tasks with optional filters
// and offset pagination.
type ListTasksRequest struct {
	Status   *TaskStatus   `json:"status,omitempty"`
	Priority *TaskPriority `json:"priority,omitempty"`
	Skip     int           `json:"skip"`
	Limit    int           `json:"limit"`
}

// ListTasksByStatusRequest is the request for listing tasks in one status.
type ListTasksByStatusRequest struct {
	Status TaskStatus `json:"status"`
	Skip   int        `json:"skip"`
	Limit  int        `json:"limit"`
}

// ListTasksByPriorityRequest is the request for listing tasks at one priority.
type ListTasksByPriorityRequest struct {
	Priority TaskPriority `json:"priority"`
	Skip     int          `json:"skip"`
	Limit    int          `json:"limit"`
}

// TaskResponse represents a task in API responses. Nullable fields are
// rendered as explicit JSON nulls when unset.
type TaskResponse struct {
	ID          uint         `json:"id"`
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   *time.Time   `json:"updated_at"`
	DueDate     *time.Time   `json:"due_date"`
	AssignedTo  *string      `json:"assigned_to"`
}

// TaskListResponse is the paginated envelope for task listings. Total counts
// every task matching the filters, not just the returned page.
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int64          `json:"total"`
	Skip  int            `json:"skip"`
	Limit int            `json:"limit"`
}
