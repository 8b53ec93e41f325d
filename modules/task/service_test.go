package task

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	domain "github.com/example/task-management-api/domain/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestModule creates a task module backed by an in-memory database.
func newTestModule(t *testing.T) *TaskModule {
	t.Helper()

	db := setupTestDB(t)
	return &TaskModule{
		db:     db,
		repo:   NewTaskRepository(db),
		driver: "sqlite",
		dbPath: ":memory:",
	}
}

func strPtr(s string) *string { return &s }

func TestCreateTask_Defaults(t *testing.T) {
	module := newTestModule(t)

	resp, err := module.createTask(context.Background(), domain.CreateTaskRequest{Title: "Write docs"}, nil)
	require.NoError(t, err)

	assert.NotZero(t, resp.ID)
	assert.Equal(t, "Write docs", resp.Title)
	assert.Equal(t, domain.StatusPending, resp.Status)
	assert.Equal(t, domain.PriorityMedium, resp.Priority)
	assert.False(t, resp.CreatedAt.IsZero())
	assert.Nil(t, resp.UpdatedAt)
	assert.Nil(t, resp.Description)
	assert.Nil(t, resp.DueDate)
	assert.Nil(t, resp.AssignedTo)
}

func TestCreateTask_FullRequest(t *testing.T) {
	module := newTestModule(t)

	due := time.Now().Add(48 * time.Hour).UTC()
	req := domain.CreateTaskRequest{
		Title:       "  Ship release  ",
		Description: strPtr("Cut the v2 release"),
		Priority:    domain.PriorityUrgent,
		DueDate:     &due,
		AssignedTo:  strPtr("alice"),
	}

	resp, err := module.createTask(context.Background(), req, nil)
	require.NoError(t, err)

	assert.Equal(t, "Ship release", resp.Title, "title should be trimmed")
	assert.Equal(t, domain.PriorityUrgent, resp.Priority)
	require.NotNil(t, resp.Description)
	assert.Equal(t, "Cut the v2 release", *resp.Description)
	require.NotNil(t, resp.AssignedTo)
	assert.Equal(t, "alice", *resp.AssignedTo)
	require.NotNil(t, resp.DueDate)
}

func TestCreateTask_ValidationError(t *testing.T) {
	module := newTestModule(t)

	_, err := module.createTask(context.Background(), domain.CreateTaskRequest{Title: "   "}, nil)
	require.Error(t, err)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "title", verr.Fields[0].Field)

	// Nothing should have been persisted
	count, err := module.repo.Count(TaskFilter{})
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestGetTask(t *testing.T) {
	module := newTestModule(t)

	created, err := module.createTask(context.Background(), domain.CreateTaskRequest{Title: "Find me"}, nil)
	require.NoError(t, err)

	t.Run("existing task", func(t *testing.T) {
		resp, err := module.getTask(context.Background(), domain.GetTaskRequest{ID: created.ID}, nil)
		require.NoError(t, err)
		assert.Equal(t, created.ID, resp.ID)
		assert.Equal(t, "Find me", resp.Title)
	})

	t.Run("missing task", func(t *testing.T) {
		_, err := module.getTask(context.Background(), domain.GetTaskRequest{ID: 99999}, nil)
		require.ErrorIs(t, err, domain.ErrTaskNotFound)
	})
}

func TestListTasks(t *testing.T) {
	module := newTestModule(t)
	ctx := context.Background()

	titles := []string{"One", "Two", "Three", "Four", "Five"}
	for i, title := range titles {
		req := domain.CreateTaskRequest{Title: title}
		if i%2 == 0 {
			req.Priority = domain.PriorityHigh
		}
		_, err := module.createTask(ctx, req, nil)
		require.NoError(t, err)
	}

	t.Run("returns envelope with totals", func(t *testing.T) {
		resp, err := module.listTasks(ctx, domain.ListTasksRequest{Skip: 0, Limit: 2}, nil)
		require.NoError(t, err)

		assert.Len(t, resp.Tasks, 2)
		assert.EqualValues(t, 5, resp.Total, "total counts all matches, not the page")
		assert.Equal(t, 0, resp.Skip)
		assert.Equal(t, 2, resp.Limit)
		assert.Equal(t, "One", resp.Tasks[0].Title)
		assert.Equal(t, "Two", resp.Tasks[1].Title)
	})

	t.Run("second page", func(t *testing.T) {
		resp, err := module.listTasks(ctx, domain.ListTasksRequest{Skip: 2, Limit: 2}, nil)
		require.NoError(t, err)

		assert.Len(t, resp.Tasks, 2)
		assert.Equal(t, "Three", resp.Tasks[0].Title)
		assert.Equal(t, "Four", resp.Tasks[1].Title)
	})

	t.Run("filter by priority", func(t *testing.T) {
		priority := domain.PriorityHigh
		resp, err := module.listTasks(ctx, domain.ListTasksRequest{Priority: &priority, Limit: 10}, nil)
		require.NoError(t, err)

		assert.Len(t, resp.Tasks, 3)
		assert.EqualValues(t, 3, resp.Total)
	})

	t.Run("invalid status filter", func(t *testing.T) {
		status := domain.TaskStatus("bogus")
		_, err := module.listTasks(ctx, domain.ListTasksRequest{Status: &status, Limit: 10}, nil)

		var verr *domain.ValidationError
		require.True(t, errors.As(err, &verr))
	})
}

func TestListTasks_ClampsPagination(t *testing.T) {
	module := newTestModule(t)
	ctx := context.Background()

	_, err := module.createTask(ctx, domain.CreateTaskRequest{Title: "Only one"}, nil)
	require.NoError(t, err)

	t.Run("zero limit becomes default", func(t *testing.T) {
		resp, err := module.listTasks(ctx, domain.ListTasksRequest{}, nil)
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultLimit, resp.Limit)
	})

	t.Run("oversized limit is capped", func(t *testing.T) {
		resp, err := module.listTasks(ctx, domain.ListTasksRequest{Limit: 1000}, nil)
		require.NoError(t, err)
		assert.Equal(t, domain.MaxLimit, resp.Limit)
	})

	t.Run("negative skip becomes zero", func(t *testing.T) {
		resp, err := module.listTasks(ctx, domain.ListTasksRequest{Skip: -5, Limit: 10}, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, resp.Skip)
		assert.Len(t, resp.Tasks, 1)
	})
}

func TestListTasksByStatus(t *testing.T) {
	module := newTestModule(t)
	ctx := context.Background()

	created, err := module.createTask(ctx, domain.CreateTaskRequest{Title: "Start me"}, nil)
	require.NoError(t, err)
	_, err = module.createTask(ctx, domain.CreateTaskRequest{Title: "Leave me"}, nil)
	require.NoError(t, err)

	status := domain.StatusInProgress
	_, err = module.updateTask(ctx, domain.UpdateTaskRequest{ID: created.ID, Status: &status}, nil)
	require.NoError(t, err)

	t.Run("returns matching tasks", func(t *testing.T) {
		resp, err := module.listTasksByStatus(ctx, domain.ListTasksByStatusRequest{Status: domain.StatusInProgress, Limit: 10}, nil)
		require.NoError(t, err)

		require.Len(t, resp.Tasks, 1)
		assert.Equal(t, created.ID, resp.Tasks[0].ID)
		assert.EqualValues(t, 1, resp.Total)
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := module.listTasksByStatus(ctx, domain.ListTasksByStatusRequest{Status: "bogus", Limit: 10}, nil)

		var verr *domain.ValidationError
		require.True(t, errors.As(err, &verr))
	})
}

func TestListTasksByPriority(t *testing.T) {
	module := newTestModule(t)
	ctx := context.Background()

	_, err := module.createTask(ctx, domain.CreateTaskRequest{Title: "Urgent thing", Priority: domain.PriorityUrgent}, nil)
	require.NoError(t, err)
	_, err = module.createTask(ctx, domain.CreateTaskRequest{Title: "Normal thing"}, nil)
	require.NoError(t, err)

	t.Run("returns matching tasks", func(t *testing.T) {
		resp, err := module.listTasksByPriority(ctx, domain.ListTasksByPriorityRequest{Priority: domain.PriorityUrgent, Limit: 10}, nil)
		require.NoError(t, err)

		require.Len(t, resp.Tasks, 1)
		assert.Equal(t, "Urgent thing", resp.Tasks[0].Title)
	})

	t.Run("invalid priority", func(t *testing.T) {
		_, err := module.listTasksByPriority(ctx, domain.ListTasksByPriorityRequest{Priority: "bogus", Limit: 10}, nil)

		var verr *domain.ValidationError
		require.True(t, errors.As(err, &verr))
	})
}

func TestUpdateTask(t *testing.T) {
	module := newTestModule(t)
	ctx := context.Background()

	due := time.Now().Add(72 * time.Hour).UTC()
	created, err := module.createTask(ctx, domain.CreateTaskRequest{
		Title:       "Original title",
		Description: strPtr("Original description"),
		DueDate:     &due,
	}, nil)
	require.NoError(t, err)

	t.Run("changes only supplied fields", func(t *testing.T) {
		status := domain.StatusCompleted
		resp, err := module.updateTask(ctx, domain.UpdateTaskRequest{
			ID:     created.ID,
			Title:  strPtr("  New title  "),
			Status: &status,
		}, nil)
		require.NoError(t, err)

		assert.Equal(t, "New title", resp.Title, "title should be trimmed")
		assert.Equal(t, domain.StatusCompleted, resp.Status)
		require.NotNil(t, resp.Description)
		assert.Equal(t, "Original description", *resp.Description, "unsupplied fields stay unchanged")
		require.NotNil(t, resp.UpdatedAt)
		assert.Equal(t, created.CreatedAt, resp.CreatedAt)
	})

	t.Run("empty update still touches updated_at", func(t *testing.T) {
		resp, err := module.updateTask(ctx, domain.UpdateTaskRequest{ID: created.ID}, nil)
		require.NoError(t, err)
		require.NotNil(t, resp.UpdatedAt)
	})

	t.Run("validation error", func(t *testing.T) {
		_, err := module.updateTask(ctx, domain.UpdateTaskRequest{
			ID:    created.ID,
			Title: strPtr(strings.Repeat("x", 201)),
		}, nil)

		var verr *domain.ValidationError
		require.True(t, errors.As(err, &verr))
	})

	t.Run("missing task", func(t *testing.T) {
		_, err := module.updateTask(ctx, domain.UpdateTaskRequest{ID: 99999, Title: strPtr("nope")}, nil)
		require.ErrorIs(t, err, domain.ErrTaskNotFound)
	})
}

func TestDeleteTask(t *testing.T) {
	module := newTestModule(t)
	ctx := context.Background()

	created, err := module.createTask(ctx, domain.CreateTaskRequest{Title: "Delete me"}, nil)
	require.NoError(t, err)

	t.Run("deletes existing task", func(t *testing.T) {
		resp, err := module.deleteTask(ctx, domain.DeleteTaskRequest{ID: created.ID}, nil)
		require.NoError(t, err)
		assert.True(t, resp.Deleted)
		assert.Equal(t, created.ID, resp.ID)

		_, err = module.getTask(ctx, domain.GetTaskRequest{ID: created.ID}, nil)
		require.ErrorIs(t, err, domain.ErrTaskNotFound)
	})

	t.Run("missing task", func(t *testing.T) {
		resp, err := module.deleteTask(ctx, domain.DeleteTaskRequest{ID: 99999}, nil)
		require.ErrorIs(t, err, domain.ErrTaskNotFound)
		assert.False(t, resp.Deleted)
	})
}
