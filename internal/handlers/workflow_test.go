package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Durga-Vijaya-Ramaraju-Pamidi/Task-Trackr/internal/constants"
	"github.com/Durga-Vijaya-Ramaraju-Pamidi/Task-Trackr/internal/models"
	"github.com/Durga-Vijaya-Ramaraju-Pamidi/Task-Trackr/internal/repository"
	"github.com/Durga-Vijaya-Ramaraju-Pamidi/Task-Trackr/internal/services"
)

// setupAppRouter wires the full API the way cmd/server does, against an
// in-memory database.
func setupAppRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Task{},
		&models.Message{},
		&models.LogEntry{},
	)
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	logRepo := repository.NewLogRepository(db)

	authHandler := NewAuthHandler(services.NewAuthService(userRepo, logRepo))
	taskHandler := NewTaskHandler(services.NewTaskService(taskRepo, userRepo))
	messageHandler := NewMessageHandler(services.NewMessageService(messageRepo, userRepo))
	logHandler := NewLogHandler(services.NewLogService(logRepo))

	r := gin.New()
	store := cookie.NewStore([]byte("secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	api := r.Group("/api")
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.GET("/users", authHandler.ListUsers)
	api.GET("/tasks", taskHandler.ListTasks)
	api.POST("/tasks", taskHandler.CreateTask)
	api.PUT("/tasks/:id", taskHandler.UpdateTask)
	api.DELETE("/tasks/:id", taskHandler.DeleteTask)
	api.POST("/admin/tasks", taskHandler.AdminCreateTask)
	api.POST("/messages/send", messageHandler.Send)
	api.GET("/messages", messageHandler.Inbox)
	api.PUT("/messages/:id/read", messageHandler.MarkRead)
	api.GET("/messages/unread_count", messageHandler.UnreadCount)
	api.GET("/admin/logs", logHandler.ViewLogs)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return r, db
}

// TestUserWorkflow walks two users through registration, task creation,
// messaging, and the audit trail the flow leaves behind.
func TestUserWorkflow(t *testing.T) {
	r, db := setupAppRouter(t)

	get := func(url string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, url, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	// Two users register.
	w := postJSON(t, r, "/api/register", map[string]string{"username": "alice", "password": "pw1"})
	require.Equal(t, http.StatusCreated, w.Code)
	w = postJSON(t, r, "/api/register", map[string]string{"username": "bob", "password": "pw2"})
	require.Equal(t, http.StatusCreated, w.Code)

	// Alice creates a task; her list has exactly one todo.
	w = postJSON(t, r, "/api/tasks", map[string]string{"title": "Write report", "username": "alice"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = get("/api/tasks?username=alice")
	require.Equal(t, http.StatusOK, w.Code)

	var taskList struct {
		Data []struct {
			Title  string `json:"title"`
			Status string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &taskList))
	require.Len(t, taskList.Data, 1)
	require.Equal(t, "Write report", taskList.Data[0].Title)
	require.Equal(t, "todo", taskList.Data[0].Status)

	// A non-admin cannot use the admin create path.
	w = postJSON(t, r, "/api/admin/tasks", map[string]string{"admin": "alice", "title": "Sneaky"})
	require.Equal(t, http.StatusForbidden, w.Code)

	// Bob messages Alice; her unread count goes 1 then back to 0.
	w = postJSON(t, r, "/api/messages/send", map[string]string{
		"sender":    "bob",
		"recipient": "alice",
		"subject":   "report",
		"body":      "how is it going?",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var count map[string]int
	w = get("/api/messages/unread_count?username=alice")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &count))
	require.Equal(t, 1, count["unread"])

	req := httptest.NewRequest(http.MethodPut, "/api/messages/1/read", nil)
	rw := httptest.NewRecorder()
	r.ServeHTTP(rw, req)
	require.Equal(t, http.StatusOK, rw.Code)

	w = get("/api/messages/unread_count?username=alice")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &count))
	require.Equal(t, 0, count["unread"])

	// The flow left one entry per mutating action and nothing else.
	var actions []string
	require.NoError(t, db.Model(&models.LogEntry{}).Order("id").Pluck("action", &actions).Error)
	require.Equal(t, []string{"REGISTER", "REGISTER", "CREATE_TASK", "SEND_MESSAGE"}, actions)

	// And the admin view reports them newest-first.
	w = get("/api/admin/logs")
	require.Equal(t, http.StatusOK, w.Code)

	var logs struct {
		Data []struct {
			Action string `json:"action"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logs))
	require.Len(t, logs.Data, 4)
	require.Equal(t, "SEND_MESSAGE", logs.Data[0].Action)
}
