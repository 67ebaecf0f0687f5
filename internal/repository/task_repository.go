package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/Durga-Vijaya-Ramaraju-Pamidi/Task-Trackr/internal/models"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// CreateWithLog creates the task and its audit entry atomically. The task ID
// is assigned by the insert, so the entry's TaskID is filled in between the
// two writes, before commit.
func (r *GormTaskRepository) CreateWithLog(task *models.Task, entry *models.LogEntry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(task).Error; err != nil {
			return fmt.Errorf("failed to create task: %w", err)
		}

		entry.TaskID = &task.ID

		if err := tx.Create(entry).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrAppendLog, err)
		}

		return nil
	})
}

// FindByID finds a task by ID
func (r *GormTaskRepository) FindByID(id uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// ListForUser returns tasks created by or assigned to the user, newest first
func (r *GormTaskRepository) ListForUser(username string) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.
		Where("username = ? OR assigned_to = ?", username, username).
		Order("created_at DESC, id DESC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// SaveWithLog persists the task and its audit entry atomically
func (r *GormTaskRepository) SaveWithLog(task *models.Task, entry *models.LogEntry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(task).Error; err != nil {
			return fmt.Errorf("failed to update task: %w", err)
		}

		if err := tx.Create(entry).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrAppendLog, err)
		}

		return nil
	})
}

// DeleteWithLog deletes the task and appends the audit entry atomically. The
// entry keeps the deleted task's ID as a dangling historical reference.
func (r *GormTaskRepository) DeleteWithLog(task *models.Task, entry *models.LogEntry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Task{}, task.ID).Error; err != nil {
			return fmt.Errorf("failed to delete task: %w", err)
		}

		if err := tx.Create(entry).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrAppendLog, err)
		}

		return nil
	})
}
