package task

import (
	"context"
	"fmt"
	"strings"
	"time"

	domain "github.com/example/task-management-api/domain/task"
	"github.com/go-monolith/mono"
)

// createTask handles the task.create service request. New tasks always
// start in the pending status with medium priority unless one is supplied.
func (m *TaskModule) createTask(_ context.Context, req domain.CreateTaskRequest, _ *mono.Msg) (domain.TaskResponse, error) {
	if verr := req.Validate(); verr != nil {
		return domain.TaskResponse{}, verr
	}

	task := domain.NewTask(req)
	if err := m.repo.Create(task); err != nil {
		return domain.TaskResponse{}, fmt.Errorf("failed to save task: %w", err)
	}

	return toTaskResponse(task), nil
}

// getTask handles the task.get service request.
func (m *TaskModule) getTask(_ context.Context, req domain.GetTaskRequest, _ *mono.Msg) (domain.TaskResponse, error) {
	task, err := m.repo.FindByID(req.ID)
	if err != nil {
		return domain.TaskResponse{}, err
	}
	return toTaskResponse(task), nil
}

// listTasks handles the task.list service request. Results are ordered by
// ID and wrapped in a pagination envelope with the total match count.
func (m *TaskModule) listTasks(_ context.Context, req domain.ListTasksRequest, _ *mono.Msg) (domain.TaskListResponse, error) {
	if req.Status != nil && !req.Status.IsValid() {
		return domain.TaskListResponse{}, domain.NewValidationError(domain.FieldError{
			Field: "status", Message: "is not a valid task status",
		})
	}
	if req.Priority != nil && !req.Priority.IsValid() {
		return domain.TaskListResponse{}, domain.NewValidationError(domain.FieldError{
			Field: "priority", Message: "is not a valid task priority",
		})
	}

	filter := TaskFilter{Status: req.Status, Priority: req.Priority}
	return m.listPage(filter, req.Skip, req.Limit)
}

// listTasksByStatus handles the task.list-by-status service request.
func (m *TaskModule) listTasksByStatus(_ context.Context, req domain.ListTasksByStatusRequest, _ *mono.Msg) (domain.TaskListResponse, error) {
	if !req.Status.IsValid() {
		return domain.TaskListResponse{}, domain.NewValidationError(domain.FieldError{
			Field: "status", Message: "is not a valid task status",
		})
	}
	return m.listPage(TaskFilter{Status: &req.Status}, req.Skip, req.Limit)
}

// listTasksByPriority handles the task.list-by-priority service request.
func (m *TaskModule) listTasksByPriority(_ context.Context, req domain.ListTasksByPriorityRequest, _ *mono.Msg) (domain.TaskListResponse, error) {
	if !req.Priority.IsValid() {
		return domain.TaskListResponse{}, domain.NewValidationError(domain.FieldError{
			Field: "priority", Message: "is not a valid task priority",
		})
	}
	return m.listPage(TaskFilter{Priority: &req.Priority}, req.Skip, req.Limit)
}

// updateTask handles the task.update service request. Only supplied fields
// are changed; updated_at is refreshed on every successful update.
func (m *TaskModule) updateTask(_ context.Context, req domain.UpdateTaskRequest, _ *mono.Msg) (domain.TaskResponse, error) {
	if verr := req.Validate(); verr != nil {
		return domain.TaskResponse{}, verr
	}

	task, err := m.repo.FindByID(req.ID)
	if err != nil {
		return domain.TaskResponse{}, err
	}

	if req.Title != nil {
		task.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		task.Description = req.Description
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}
	if req.AssignedTo != nil {
		task.AssignedTo = req.AssignedTo
	}

	now := time.Now().UTC()
	task.UpdatedAt = &now

	if err := m.repo.Update(task); err != nil {
		return domain.TaskResponse{}, err
	}

	return toTaskResponse(task), nil
}

// deleteTask handles the task.delete service request.
func (m *TaskModule) deleteTask(_ context.Context, req domain.DeleteTaskRequest, _ *mono.Msg) (domain.DeleteTaskResponse, error) {
	if err := m.repo.Delete(req.ID); err != nil {
		return domain.DeleteTaskResponse{Deleted: false, ID: req.ID}, err
	}
	return domain.DeleteTaskResponse{Deleted: true, ID: req.ID}, nil
}

// listPage clamps pagination bounds, fetches one page and the total match
// count, and builds the response envelope.
func (m *TaskModule) listPage(filter TaskFilter, skip, limit int) (domain.TaskListResponse, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = domain.DefaultLimit
	}
	if limit > domain.MaxLimit {
		limit = domain.MaxLimit
	}

	tasks, err := m.repo.List(filter, skip, limit)
	if err != nil {
		return domain.TaskListResponse{}, err
	}
	total, err := m.repo.Count(filter)
	if err != nil {
		return domain.TaskListResponse{}, err
	}

	response := domain.TaskListResponse{
		Tasks: make([]domain.TaskResponse, 0, len(tasks)),
		Total: total,
		Skip:  skip,
		Limit: limit,
	}
	for _, task := range tasks {
		response.Tasks = append(response.Tasks, toTaskResponse(task))
	}
	return response, nil
}

// toTaskResponse converts a Task entity to a TaskResponse.
func toTaskResponse(task *domain.Task) domain.TaskResponse {
	return domain.TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		Priority:    task.Priority,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
		DueDate:     task.DueDate,
		AssignedTo:  task.AssignedTo,
	}
}
