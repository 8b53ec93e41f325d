package task

import (
	"context"

	domain "github.com/example/task-management-api/domain/task"
)

// TaskPort defines the interface for task operations (hexagonal port).
// This is the contract that driving adapters (like the HTTP API) use to
// interact with the core domain.
type TaskPort interface {
	CreateTask(ctx context.Context, req *domain.CreateTaskRequest) (*domain.TaskResponse, error)
	GetTask(ctx context.Context, id uint) (*domain.TaskResponse, error)
	ListTasks(ctx context.Context, req *domain.ListTasksRequest) (*domain.TaskListResponse, error)
	ListTasksByStatus(ctx context.Context, req *domain.ListTasksByStatusRequest) (*domain.TaskListResponse, error)
	ListTasksByPriority(ctx context.Context, req *domain.ListTasksByPriorityRequest) (*domain.TaskListResponse, error)
	UpdateTask(ctx context.Context, req *domain.UpdateTaskRequest) (*domain.TaskResponse, error)
	DeleteTask(ctx context.Context, id uint) error
}
