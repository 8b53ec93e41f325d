package task

import (
	"errors"
	"fmt"

	domain "github.com/example/task-management-api/domain/task"
	"gorm.io/gorm"
)

// TaskRepository provides access to task storage via GORM.
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository.
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// TaskFilter narrows list and count queries. Nil fields match everything.
type TaskFilter struct {
	Status   *domain.TaskStatus
	Priority *domain.TaskPriority
}

// Create saves a new task to the database.
func (r *TaskRepository) Create(task *domain.Task) error {
	if err := r.db.Create(task).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// FindByID retrieves a task by its ID.
func (r *TaskRepository) FindByID(id uint) (*domain.Task, error) {
	var task domain.Task
	if err := r.db.First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return &task, nil
}

// List retrieves a page of tasks matching the filter, ordered by ID so
// pagination is deterministic.
func (r *TaskRepository) List(filter TaskFilter, skip, limit int) ([]*domain.Task, error) {
	var tasks []*domain.Task
	if err := r.filtered(filter).Order("id").Offset(skip).Limit(limit).Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Count returns the total number of tasks matching the filter.
func (r *TaskRepository) Count(filter TaskFilter) (int64, error) {
	var count int64
	if err := r.filtered(filter).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count tasks: %w", err)
	}
	return count, nil
}

// Update persists changes to an existing task. Zero-value fields are
// skipped, which is safe because updates only ever set non-zero values.
func (r *TaskRepository) Update(task *domain.Task) error {
	result := r.db.Model(&domain.Task{}).Where("id = ?", task.ID).Updates(task)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if result.RowsAffected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// Delete permanently removes a task by ID.
func (r *TaskRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Task{}, id)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if result.RowsAffected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) filtered(filter TaskFilter) *gorm.DB {
	query := r.db.Model(&domain.Task{})
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", *filter.Priority)
	}
	return query
}
