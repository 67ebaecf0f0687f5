package dto

import (
	"github.com/Durga-Vijaya-Ramaraju-Pamidi/Task-Trackr/internal/models"
)

// Log timestamps are rendered to the second.
const logTimeFormat = "2006-01-02 15:04:05"

// LogEntryDTO represents an audit entry in API responses
type LogEntryDTO struct {
	ID        uint64            `json:"id"`
	User      string            `json:"user"`
	Action    models.ActionCode `json:"action"`
	TaskID    *uint64           `json:"task_id"`
	Timestamp string            `json:"timestamp"`
	Details   string            `json:"details"`
}

// ToLogEntryDTO converts a LogEntry model to LogEntryDTO
func ToLogEntryDTO(entry models.LogEntry) LogEntryDTO {
	return LogEntryDTO{
		ID:        entry.ID,
		User:      entry.Actor,
		Action:    entry.Action,
		TaskID:    entry.TaskID,
		Timestamp: entry.Timestamp.Format(logTimeFormat),
		Details:   entry.Details,
	}
}

// ToLogEntryDTOs converts a slice of audit entries
func ToLogEntryDTOs(entries []models.LogEntry) []LogEntryDTO {
	items := make([]LogEntryDTO, len(entries))
	for i, e := range entries {
		items[i] = ToLogEntryDTO(e)
	}
	return items
}
