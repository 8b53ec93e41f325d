package api

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	domain "github.com/example/task-management-api/domain/task"
	"github.com/example/task-management-api/modules/task"
	"github.com/gofiber/fiber/v2"
)

// Handlers contains HTTP handlers for the API.
type Handlers struct {
	port task.TaskPort
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(port task.TaskPort) *Handlers {
	return &Handlers{port: port}
}

// Root serves the welcome payload.
//
//	@Summary		API welcome page
//	@Description	Returns service metadata with links to documentation and endpoints.
//	@Tags			meta
//	@Produce		json
//	@Success		200	{object}	api.RootResponse
//	@Router			/ [get]
func (h *Handlers) Root(c *fiber.Ctx) error {
	return c.JSON(RootResponse{
		Message: "Welcome to " + serviceName,
		Version: serviceVersion,
		Documentation: map[string]string{
			"swagger_ui":     "/docs/index.html",
			"openapi_schema": "/docs/doc.json",
		},
		Endpoints: map[string]string{
			"tasks":  "/api/v1/tasks",
			"health": "/health",
		},
	})
}

// HealthCheck reports service health.
//
//	@Summary		Health check
//	@Tags			meta
//	@Produce		json
//	@Success		200	{object}	api.HealthResponse
//	@Router			/health [get]
func (h *Handlers) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status:  "healthy",
		Service: serviceName,
		Version: serviceVersion,
	})
}

// CreateTask creates a new task.
//
//	@Summary		Create a task
//	@Description	Creates a task in the pending status. Priority defaults to medium.
//	@Tags			tasks
//	@Accept			json
//	@Produce		json
//	@Param			request	body		task.CreateTaskRequest	true	"Task to create"
//	@Success		201		{object}	task.TaskResponse
//	@Failure		422		{object}	api.ErrorResponse
//	@Router			/api/v1/tasks [post]
func (h *Handlers) CreateTask(c *fiber.Ctx) error {
	var req domain.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	if verr := req.Validate(); verr != nil {
		return validationError(c, verr.Fields...)
	}

	resp, err := h.port.CreateTask(c.UserContext(), &req)
	if err != nil {
		return h.handleTaskError(c, err, "")
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListTasks lists tasks with optional filters and offset pagination.
//
//	@Summary		List tasks
//	@Description	Returns one page of tasks ordered by id, with the total match count.
//	@Tags			tasks
//	@Produce		json
//	@Param			skip		query		int		false	"Number of tasks to skip"			default(0)	minimum(0)
//	@Param			limit		query		int		false	"Maximum number of tasks to return"	default(10)	minimum(1)	maximum(100)
//	@Param			status		query		string	false	"Filter by status"					Enums(pending, in_progress, completed, cancelled)
//	@Param			priority	query		string	false	"Filter by priority"				Enums(low, medium, high, urgent)
//	@Success		200			{object}	task.TaskListResponse
//	@Failure		422			{object}	api.ErrorResponse
//	@Router			/api/v1/tasks [get]
func (h *Handlers) ListTasks(c *fiber.Ctx) error {
	skip, limit, fields := queryPagination(c)

	var status *domain.TaskStatus
	if raw := c.Query("status"); raw != "" {
		s := domain.TaskStatus(raw)
		if !s.IsValid() {
			fields = append(fields, domain.FieldError{Field: "status", Message: "is not a valid task status"})
		}
		status = &s
	}

	var priority *domain.TaskPriority
	if raw := c.Query("priority"); raw != "" {
		p := domain.TaskPriority(raw)
		if !p.IsValid() {
			fields = append(fields, domain.FieldError{Field: "priority", Message: "is not a valid task priority"})
		}
		priority = &p
	}

	if len(fields) > 0 {
		return validationError(c, fields...)
	}

	req := domain.ListTasksRequest{Status: status, Priority: priority, Skip: skip, Limit: limit}
	resp, err := h.port.ListTasks(c.UserContext(), &req)
	if err != nil {
		return h.handleTaskError(c, err, "")
	}

	return c.JSON(resp)
}

// GetTask fetches a single task by ID.
//
//	@Summary		Get a task
//	@Tags			tasks
//	@Produce		json
//	@Param			id	path		int	true	"Task ID"
//	@Success		200	{object}	task.TaskResponse
//	@Failure		404	{object}	api.ErrorResponse
//	@Failure		422	{object}	api.ErrorResponse
//	@Router			/api/v1/tasks/{id} [get]
func (h *Handlers) GetTask(c *fiber.Ctx) error {
	idRaw := c.Params("id")
	id, err := strconv.Atoi(idRaw)
	if err != nil {
		return validationError(c, domain.FieldError{Field: "id", Message: "must be an integer"})
	}
	if id < 0 {
		return taskNotFound(c, idRaw)
	}

	resp, err := h.port.GetTask(c.UserContext(), uint(id))
	if err != nil {
		return h.handleTaskError(c, err, idRaw)
	}

	return c.JSON(resp)
}

// UpdateTask partially updates a task. Absent fields are left unchanged.
//
//	@Summary		Update a task
//	@Description	Applies the supplied fields and refreshes updated_at.
//	@Tags			tasks
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Task ID"
//	@Param			request	body		task.UpdateTaskRequest	true	"Fields to change"
//	@Success		200		{object}	task.TaskResponse
//	@Failure		404		{object}	api.ErrorResponse
//	@Failure		422		{object}	api.ErrorResponse
//	@Router			/api/v1/tasks/{id} [put]
func (h *Handlers) UpdateTask(c *fiber.Ctx) error {
	idRaw := c.Params("id")
	id, err := strconv.Atoi(idRaw)
	if err != nil {
		return validationError(c, domain.FieldError{Field: "id", Message: "must be an integer"})
	}
	if id < 0 {
		return taskNotFound(c, idRaw)
	}

	var req domain.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	req.ID = uint(id)

	if verr := req.Validate(); verr != nil {
		return validationError(c, verr.Fields...)
	}

	resp, err := h.port.UpdateTask(c.UserContext(), &req)
	if err != nil {
		return h.handleTaskError(c, err, idRaw)
	}

	return c.JSON(resp)
}

// DeleteTask permanently deletes a task.
//
//	@Summary		Delete a task
//	@Tags			tasks
//	@Param			id	path	int	true	"Task ID"
//	@Success		204	"No Content"
//	@Failure		404	{object}	api.ErrorResponse
//	@Failure		422	{object}	api.ErrorResponse
//	@Router			/api/v1/tasks/{id} [delete]
func (h *Handlers) DeleteTask(c *fiber.Ctx) error {
	idRaw := c.Params("id")
	id, err := strconv.Atoi(idRaw)
	if err != nil {
		return validationError(c, domain.FieldError{Field: "id", Message: "must be an integer"})
	}
	if id < 0 {
		return taskNotFound(c, idRaw)
	}

	if err := h.port.DeleteTask(c.UserContext(), uint(id)); err != nil {
		return h.handleTaskError(c, err, idRaw)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ListTasksByStatus lists tasks in one status as a plain array.
//
//	@Summary		List tasks by status
//	@Tags			tasks
//	@Produce		json
//	@Param			status	path		string	true	"Task status"	Enums(pending, in_progress, completed, cancelled)
//	@Param			skip	query		int		false	"Number of tasks to skip"			default(0)
//	@Param			limit	query		int		false	"Maximum number of tasks to return"	default(10)
//	@Success		200		{array}		task.TaskResponse
//	@Failure		422		{object}	api.ErrorResponse
//	@Router			/api/v1/tasks/status/{status} [get]
func (h *Handlers) ListTasksByStatus(c *fiber.Ctx) error {
	skip, limit, fields := queryPagination(c)

	status := domain.TaskStatus(c.Params("status"))
	if !status.IsValid() {
		fields = append(fields, domain.FieldError{Field: "status", Message: "is not a valid task status"})
	}
	if len(fields) > 0 {
		return validationError(c, fields...)
	}

	req := domain.ListTasksByStatusRequest{Status: status, Skip: skip, Limit: limit}
	resp, err := h.port.ListTasksByStatus(c.UserContext(), &req)
	if err != nil {
		return h.handleTaskError(c, err, "")
	}

	return c.JSON(resp.Tasks)
}

// ListTasksByPriority lists tasks at one priority as a plain array.
//
//	@Summary		List tasks by priority
//	@Tags			tasks
//	@Produce		json
//	@Param			priority	path		string	true	"Task priority"	Enums(low, medium, high, urgent)
//	@Param			skip		query		int		false	"Number of tasks to skip"			default(0)
//	@Param			limit		query		int		false	"Maximum number of tasks to return"	default(10)
//	@Success		200			{array}		task.TaskResponse
//	@Failure		422			{object}	api.ErrorResponse
//	@Router			/api/v1/tasks/priority/{priority} [get]
func (h *Handlers) ListTasksByPriority(c *fiber.Ctx) error {
	skip, limit, fields := queryPagination(c)

	priority := domain.TaskPriority(c.Params("priority"))
	if !priority.IsValid() {
		fields = append(fields, domain.FieldError{Field: "priority", Message: "is not a valid task priority"})
	}
	if len(fields) > 0 {
		return validationError(c, fields...)
	}

	req := domain.ListTasksByPriorityRequest{Priority: priority, Skip: skip, Limit: limit}
	resp, err := h.port.ListTasksByPriority(c.UserContext(), &req)
	if err != nil {
		return h.handleTaskError(c, err, "")
	}

	return c.JSON(resp.Tasks)
}

// handleTaskError maps errors from the task module to HTTP responses.
// Errors cross the service boundary as plain messages, so mapping is done
// by matching known error text.
func (h *Handlers) handleTaskError(c *fiber.Ctx, err error, idRaw string) error {
	errStr := err.Error()

	switch {
	case strings.Contains(errStr, "task not found"):
		return taskNotFound(c, idRaw)
	case strings.Contains(errStr, "validation failed"):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse{
			Error:   "validation_error",
			Message: "Request validation failed",
		})
	default:
		// Log the actual error but don't expose it to the client
		log.Printf("[api] Internal error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "internal_error",
			Message: "An internal error occurred",
		})
	}
}

// queryPagination parses the skip and limit query parameters, applying the
// documented defaults when a parameter is absent.
func queryPagination(c *fiber.Ctx) (int, int, []domain.FieldError) {
	var fields []domain.FieldError

	skip := 0
	if raw := c.Query("skip"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			fields = append(fields, domain.FieldError{Field: "skip", Message: "must be a non-negative integer"})
		} else {
			skip = v
		}
	}

	limit := domain.DefaultLimit
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > domain.MaxLimit {
			fields = append(fields, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 1 and %d", domain.MaxLimit)})
		} else {
			limit = v
		}
	}

	return skip, limit, fields
}

func validationError(c *fiber.Ctx, fields ...domain.FieldError) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse{
		Error:   "validation_error",
		Message: "Request validation failed",
		Details: fields,
	})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse{
		Error:   "validation_error",
		Message: "Invalid request body",
	})
}

func taskNotFound(c *fiber.Ctx, id string) error {
	return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
		Error:   "not_found",
		Message: fmt.Sprintf("Task with id %s not found", id),
	})
}
