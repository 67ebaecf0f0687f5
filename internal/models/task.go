package models

import "time"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusDone       TaskStatus = "done"
)

// IsValid reports whether the status is one of the known lifecycle states.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

type Task struct {
	ID          uint64     `gorm:"primarykey" json:"id"`
	Title       string     `gorm:"type:varchar(256);not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Status      TaskStatus `gorm:"type:varchar(20);not null;default:'todo';index" json:"status"`
	DueDate     *string    `gorm:"type:varchar(50)" json:"due_date"`
	CreatedAt   time.Time  `gorm:"index" json:"created_at"`

	// Creator and assignee are stored as usernames. CreatedBy is set once
	// at creation; AssignedTo may change over the task's lifetime.
	CreatedBy  string  `gorm:"column:username;type:varchar(80);not null;index" json:"username"`
	AssignedTo *string `gorm:"type:varchar(80);index" json:"assigned_to"`
}
