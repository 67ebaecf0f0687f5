package repository

import (
	"time"

	"github.com/Durga-Vijaya-Ramaraju-Pamidi/Task-Trackr/internal/models"
)

// Every mutating method in these interfaces that takes a *models.LogEntry
// commits the mutation and the audit entry in a single transaction. Neither
// side may be observed without the other.

// UserRepository defines the interface for user data access
type UserRepository interface {
	// CreateWithLog creates a user and its REGISTER audit entry atomically
	CreateWithLog(user *models.User, entry *models.LogEntry) error

	// FindByUsername finds a user by username (case-sensitive)
	FindByUsername(username string) (*models.User, error)

	// List returns all users ordered by username
	List() ([]models.User, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// CreateWithLog creates a task and its audit entry atomically. The
	// entry's TaskID is filled with the assigned task ID before commit.
	CreateWithLog(task *models.Task, entry *models.LogEntry) error

	// FindByID finds a task by ID
	FindByID(id uint64) (*models.Task, error)

	// ListForUser returns tasks the user created or is assigned to, newest first
	ListForUser(username string) ([]models.Task, error)

	// SaveWithLog persists task changes and the audit entry atomically
	SaveWithLog(task *models.Task, entry *models.LogEntry) error

	// DeleteWithLog deletes a task and appends the audit entry atomically
	DeleteWithLog(task *models.Task, entry *models.LogEntry) error
}

// MessageRepository defines the interface for message data access
type MessageRepository interface {
	// CreateWithLog creates a message and its SEND_MESSAGE entry atomically
	CreateWithLog(msg *models.Message, entry *models.LogEntry) error

	// FindByID finds a message by ID
	FindByID(id uint64) (*models.Message, error)

	// ListForRecipient returns a user's inbox, newest first
	ListForRecipient(username string, unreadOnly bool) ([]models.Message, error)

	// ListForSender returns messages a user sent, newest first
	ListForSender(username string) ([]models.Message, error)

	// MarkRead flips a message to read. Idempotent; marking an already-read
	// message is a no-op success.
	MarkRead(id uint64) error

	// UnreadCount counts unread messages for a recipient
	UnreadCount(username string) (int64, error)
}

// LogFilter holds the optional, independently composable filters for log
// queries. Nil or zero-valued fields impose no restriction.
type LogFilter struct {
	// Actor and Action are case-insensitive substring matches
	Actor  string
	Action string

	// TaskID is an exact match
	TaskID *uint64

	// Start is inclusive, End exclusive
	Start *time.Time
	End   *time.Time
}

// LogRepository defines the interface for the append-only audit log
type LogRepository interface {
	// Append records a single entry outside any other mutation. Used only
	// for actions that are themselves pure log events (LOGIN).
	Append(entry *models.LogEntry) error

	// Search returns entries matching the filter, newest first, ties broken
	// by descending ID
	Search(filter LogFilter) ([]models.LogEntry, error)
}
