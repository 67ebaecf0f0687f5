package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Durga-Vijaya-Ramaraju-Pamidi/Task-Trackr/internal/models"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

// The search query must order newest-first with a descending-id tie break,
// and containment filters must compare lowercased on both sides.
func TestGormLogRepository_SearchSQL(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLogRepository(db)

	ts := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "actor", "action", "task_id", "timestamp", "details"}).
		AddRow(1, "alice", "CREATE_TASK", 1, ts, "Created task 'x' assigned_to=")

	mock.ExpectQuery("SELECT (.+) FROM `logs` WHERE LOWER\\(actor\\) LIKE (.+) ORDER BY timestamp DESC, id DESC").
		WithArgs("%ali%").
		WillReturnRows(rows)

	entries, err := repo.Search(LogFilter{Actor: "Ali"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "alice", entries[0].Actor)
	require.Equal(t, models.ActionCreateTask, entries[0].Action)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormLogRepository_SearchDateBounds(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLogRepository(db)

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT (.+) FROM `logs` WHERE timestamp >= (.+) AND timestamp < (.+) ORDER BY timestamp DESC, id DESC").
		WithArgs(start, end).
		WillReturnRows(sqlmock.NewRows([]string{"id", "actor", "action", "task_id", "timestamp", "details"}))

	entries, err := repo.Search(LogFilter{Start: &start, End: &end})
	require.NoError(t, err)
	require.Empty(t, entries)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormLogRepository_Append(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLogRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `logs`").
		WithArgs("alice", "LOGIN", nil, sqlmock.AnyArg(), "user").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit()

	entry := &models.LogEntry{
		Actor:   "alice",
		Action:  models.ActionLogin,
		Details: "user",
	}
	require.NoError(t, repo.Append(entry))
	require.EqualValues(t, 7, entry.ID)

	require.NoError(t, mock.ExpectationsWereMet())
}
