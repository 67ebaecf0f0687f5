package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Durga-Vijaya-Ramaraju-Pamidi/Task-Trackr/internal/models"
)

// setupSqliteDB opens an in-memory database with the full schema. Tests that
// need a write to fail drop the relevant table afterwards.
func setupSqliteDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Task{},
		&models.Message{},
		&models.LogEntry{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func dropLogsTable(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Migrator().DropTable(&models.LogEntry{}))
}

func taskCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.Task{}).Count(&n).Error)
	return n
}

// A failed audit append must roll back the task insert with it: neither half
// of the pair may commit alone.
func TestGormTaskRepository_CreateWithLogRollsBackOnLogFailure(t *testing.T) {
	db := setupSqliteDB(t)
	repo := NewTaskRepository(db)

	dropLogsTable(t, db)

	task := &models.Task{Title: "Write report", Status: models.TaskStatusTodo, CreatedBy: "alice"}
	entry := &models.LogEntry{Actor: "alice", Action: models.ActionCreateTask, Details: "Created task 'Write report' assigned_to="}

	err := repo.CreateWithLog(task, entry)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrAppendLog))
	require.EqualValues(t, 0, taskCount(t, db))
}

func TestGormTaskRepository_SaveWithLogRollsBackOnLogFailure(t *testing.T) {
	db := setupSqliteDB(t)
	repo := NewTaskRepository(db)

	task := &models.Task{Title: "Write report", Status: models.TaskStatusTodo, CreatedBy: "alice"}
	require.NoError(t, db.Create(task).Error)

	dropLogsTable(t, db)

	task.Status = models.TaskStatusDone
	entry := &models.LogEntry{Actor: "alice", Action: models.ActionUpdateTask, TaskID: &task.ID, Details: "Updated: status=done assigned_to="}

	err := repo.SaveWithLog(task, entry)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrAppendLog))

	var stored models.Task
	require.NoError(t, db.First(&stored, task.ID).Error)
	require.Equal(t, models.TaskStatusTodo, stored.Status)
}

func TestGormTaskRepository_DeleteWithLogRollsBackOnLogFailure(t *testing.T) {
	db := setupSqliteDB(t)
	repo := NewTaskRepository(db)

	task := &models.Task{Title: "Write report", Status: models.TaskStatusTodo, CreatedBy: "alice"}
	require.NoError(t, db.Create(task).Error)

	dropLogsTable(t, db)

	entry := &models.LogEntry{Actor: "alice", Action: models.ActionDeleteTask, TaskID: &task.ID, Details: "Deleted task 'Write report'"}

	err := repo.DeleteWithLog(task, entry)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrAppendLog))
	require.EqualValues(t, 1, taskCount(t, db))
}

// The user side of the pairing rolls back the same way: a registration whose
// audit entry cannot be written leaves no user behind.
func TestGormUserRepository_CreateWithLogRollsBackOnLogFailure(t *testing.T) {
	db := setupSqliteDB(t)
	repo := NewUserRepository(db)

	dropLogsTable(t, db)

	user := &models.User{Username: "alice", PasswordHash: "x"}
	entry := &models.LogEntry{Actor: "alice", Action: models.ActionRegister, Details: "registered"}

	err := repo.CreateWithLog(user, entry)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrAppendLog))

	var n int64
	require.NoError(t, db.Model(&models.User{}).Count(&n).Error)
	require.EqualValues(t, 0, n)
}
