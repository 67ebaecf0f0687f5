package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/Durga-Vijaya-Ramaraju-Pamidi/Task-Trackr/internal/models"
)

// GormLogRepository is a GORM implementation of LogRepository
type GormLogRepository struct {
	db *gorm.DB
}

// NewLogRepository creates a new LogRepository
func NewLogRepository(db *gorm.DB) LogRepository {
	return &GormLogRepository{db: db}
}

// Append records a single standalone entry
func (r *GormLogRepository) Append(entry *models.LogEntry) error {
	return r.db.Create(entry).Error
}

// Search returns entries matching the filter, newest first. Entries sharing
// a timestamp are ordered by descending ID, which is monotonic with insert
// order.
func (r *GormLogRepository) Search(filter LogFilter) ([]models.LogEntry, error) {
	query := r.db.Model(&models.LogEntry{})

	// LOWER on both sides keeps the containment match case-insensitive on
	// every supported driver.
	if filter.Actor != "" {
		query = query.Where("LOWER(actor) LIKE ?", containsPattern(filter.Actor))
	}
	if filter.Action != "" {
		query = query.Where("LOWER(action) LIKE ?", containsPattern(filter.Action))
	}
	if filter.TaskID != nil {
		query = query.Where("task_id = ?", *filter.TaskID)
	}
	if filter.Start != nil {
		query = query.Where("timestamp >= ?", *filter.Start)
	}
	if filter.End != nil {
		query = query.Where("timestamp < ?", *filter.End)
	}

	var entries []models.LogEntry
	if err := query.Order("timestamp DESC, id DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func containsPattern(s string) string {
	return "%" + strings.ToLower(s) + "%"
}
