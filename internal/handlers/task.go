package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Durga-Vijaya-Ramaraju-Pamidi/Task-Trackr/internal/dto"
	apierrors "github.com/Durga-Vijaya-Ramaraju-Pamidi/Task-Trackr/internal/errors"
	"github.com/Durga-Vijaya-Ramaraju-Pamidi/Task-Trackr/internal/services"
)

// TaskHandler coordinates task HTTP handlers.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTasks returns tasks the user created or is assigned to, newest first.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		apierrors.BadRequest(c, "username required")
		return
	}

	tasks, err := h.taskService.ListTasks(username)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": dto.ToTaskDTOs(tasks),
	})
}

// CreateTask creates a task owned by the given user.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	type CreateTaskRequest struct {
		Title       string  `json:"title" binding:"required"`
		Username    string  `json:"username" binding:"required"`
		Description string  `json:"description"`
		DueDate     *string `json:"due_date"`
		Status      string  `json:"status"`
		AssignedTo  *string `json:"assigned_to"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "title and username required")
		return
	}

	task, err := h.taskService.CreateTask(services.CreateTaskInput{
		Title:       req.Title,
		Username:    req.Username,
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      req.Status,
		AssignedTo:  req.AssignedTo,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"id":     task.ID,
	})
}

// UpdateTask applies a partial update; absent fields keep their prior value.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := taskIDParam(c)
	if !ok {
		return
	}

	type UpdateTaskRequest struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Status      *string `json:"status"`
		DueDate     *string `json:"due_date"`
		AssignedTo  *string `json:"assigned_to"`
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	_, err := h.taskService.UpdateTask(id, services.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		DueDate:     req.DueDate,
		AssignedTo:  req.AssignedTo,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
	})
}

// DeleteTask removes a task.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := taskIDParam(c)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(id); err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
	})
}

// AdminCreateTask creates and optionally assigns a task on behalf of an
// administrator.
func (h *TaskHandler) AdminCreateTask(c *gin.Context) {
	type AdminCreateTaskRequest struct {
		Admin      string  `json:"admin"`
		Title      string  `json:"title"`
		AssignedTo *string `json:"assigned_to"`
		DueDate    *string `json:"due_date"`
	}

	var req AdminCreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.AdminCreateTask(services.AdminCreateTaskInput{
		Admin:      req.Admin,
		Title:      req.Title,
		AssignedTo: req.AssignedTo,
		DueDate:    req.DueDate,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"id":     task.ID,
	})
}

// taskIDParam parses the task ID path parameter. A non-numeric ID can never
// reference a task, so it reports not found.
func taskIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.NotFound(c, "task not found")
		return 0, false
	}
	return id, true
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrAdminRequired):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrTitleEmpty):
		apierrors.BadRequest(c, "title required")
	case errors.Is(err, services.ErrInvalidStatus):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrAssigneeNotFound):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
