package models

import "time"

// ActionCode identifies the kind of mutation an audit entry records.
// The set is closed: new codes may be added, existing codes must never be
// repurposed, because the details shape per code is a stable contract for
// log consumers.
type ActionCode string

const (
	ActionRegister        ActionCode = "REGISTER"
	ActionLogin           ActionCode = "LOGIN"
	ActionCreateTask      ActionCode = "CREATE_TASK"
	ActionUpdateTask      ActionCode = "UPDATE_TASK"
	ActionDeleteTask      ActionCode = "DELETE_TASK"
	ActionAdminCreateTask ActionCode = "ADMIN_CREATE_TASK"
	ActionSendMessage     ActionCode = "SEND_MESSAGE"
)

// LogEntry is an append-only audit record. Entries are created once per
// audited mutation, in the same transaction as the mutation itself, and are
// never updated or deleted. Actor is a historical fact, not a live user
// reference; TaskID may dangle after the task it points at is deleted.
type LogEntry struct {
	ID        uint64     `gorm:"primarykey" json:"id"`
	Actor     string     `gorm:"column:actor;type:varchar(80);index" json:"user"`
	Action    ActionCode `gorm:"type:varchar(100);index" json:"action"`
	TaskID    *uint64    `json:"task_id"`
	Timestamp time.Time  `gorm:"autoCreateTime;index" json:"timestamp"`
	Details   string     `gorm:"type:text" json:"details"`
}

// TableName keeps the historical table name used by the original schema.
func (LogEntry) TableName() string {
	return "logs"
}
