package task

import (
	"context"
	"encoding/json"
	"fmt"

	domain "github.com/example/task-management-api/domain/task"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// taskAdapter wraps ServiceContainer for type-safe cross-module communication.
// This is the adapter that implements the TaskPort interface.
type taskAdapter struct {
	container mono.ServiceContainer
}

// NewTaskAdapter creates a new adapter for task services. The container is
// the task module's ServiceContainer received via SetDependencyServiceContainer.
func NewTaskAdapter(container mono.ServiceContainer) TaskPort {
	if container == nil {
		panic("task adapter requires non-nil ServiceContainer")
	}
	return &taskAdapter{container: container}
}

// CreateTask creates a new task via the create service.
func (a *taskAdapter) CreateTask(ctx context.Context, req *domain.CreateTaskRequest) (*domain.TaskResponse, error) {
	var resp domain.TaskResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "create", json.Marshal, json.Unmarshal, req, &resp,
	); err != nil {
		return nil, fmt.Errorf("create service call failed: %w", err)
	}
	return &resp, nil
}

// GetTask retrieves a task by ID via the get service.
func (a *taskAdapter) GetTask(ctx context.Context, id uint) (*domain.TaskResponse, error) {
	req := domain.GetTaskRequest{ID: id}
	var resp domain.TaskResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "get", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("get service call failed: %w", err)
	}
	return &resp, nil
}

// ListTasks lists tasks with optional filters via the list service.
func (a *taskAdapter) ListTasks(ctx context.Context, req *domain.ListTasksRequest) (*domain.TaskListResponse, error) {
	var resp domain.TaskListResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "list", json.Marshal, json.Unmarshal, req, &resp,
	); err != nil {
		return nil, fmt.Errorf("list service call failed: %w", err)
	}
	return &resp, nil
}

// ListTasksByStatus lists tasks in one status via the list-by-status service.
func (a *taskAdapter) ListTasksByStatus(ctx context.Context, req *domain.ListTasksByStatusRequest) (*domain.TaskListResponse, error) {
	var resp domain.TaskListResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "list-by-status", json.Marshal, json.Unmarshal, req, &resp,
	); err != nil {
		return nil, fmt.Errorf("list-by-status service call failed: %w", err)
	}
	return &resp, nil
}

// ListTasksByPriority lists tasks at one priority via the list-by-priority service.
func (a *taskAdapter) ListTasksByPriority(ctx context.Context, req *domain.ListTasksByPriorityRequest) (*domain.TaskListResponse, error) {
	var resp domain.TaskListResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "list-by-priority", json.Marshal, json.Unmarshal, req, &resp,
	); err != nil {
		return nil, fmt.Errorf("list-by-priority service call failed: %w", err)
	}
	return &resp, nil
}

// UpdateTask partially updates a task via the update service.
func (a *taskAdapter) UpdateTask(ctx context.Context, req *domain.UpdateTaskRequest) (*domain.TaskResponse, error) {
	var resp domain.TaskResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "update", json.Marshal, json.Unmarshal, req, &resp,
	); err != nil {
		return nil, fmt.Errorf("update service call failed: %w", err)
	}
	return &resp, nil
}

// DeleteTask deletes a task via the delete service.
func (a *taskAdapter) DeleteTask(ctx context.Context, id uint) error {
	req := domain.DeleteTaskRequest{ID: id}
	var resp domain.DeleteTaskResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "delete", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return fmt.Errorf("delete service call failed: %w", err)
	}
	if !resp.Deleted {
		return fmt.Errorf("task not deleted: %d", id)
	}
	return nil
}
