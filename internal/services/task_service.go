package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/Durga-Vijaya-Ramaraju-Pamidi/Task-Trackr/internal/models"
	"github.com/Durga-Vijaya-Ramaraju-Pamidi/Task-Trackr/internal/repository"
)

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrTitleEmpty       = errors.New("title cannot be empty")
	ErrInvalidStatus    = errors.New("invalid task status")
	ErrAdminRequired    = errors.New("admin privileges required")
	ErrAssigneeNotFound = errors.New("assignee not found")
)

// TaskService handles task business logic. Every mutation commits together
// with its audit entry.
type TaskService struct {
	taskRepo repository.TaskRepository
	userRepo repository.UserRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, userRepo repository.UserRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		userRepo: userRepo,
	}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Title       string
	Username    string
	Description string
	DueDate     *string
	Status      string
	AssignedTo  *string
}

// UpdateTaskInput represents a partial update. Nil fields keep their prior
// value.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *string
	DueDate     *string
	AssignedTo  *string
}

// AdminCreateTaskInput represents input for the admin create-and-assign path
type AdminCreateTaskInput struct {
	Admin      string
	Title      string
	AssignedTo *string
	DueDate    *string
}

// ListTasks returns tasks the user created or is assigned to, newest first
func (s *TaskService) ListTasks(username string) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListForUser(username)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// CreateTask creates a task and its CREATE_TASK entry
func (s *TaskService) CreateTask(input CreateTaskInput) (*models.Task, error) {
	status := models.TaskStatusTodo
	if input.Status != "" {
		status = models.TaskStatus(input.Status)
		if !status.IsValid() {
			return nil, ErrInvalidStatus
		}
	}

	task := &models.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		DueDate:     input.DueDate,
		CreatedBy:   input.Username,
		AssignedTo:  input.AssignedTo,
	}

	entry := &models.LogEntry{
		Actor:   input.Username,
		Action:  models.ActionCreateTask,
		Details: fmt.Sprintf("Created task '%s' assigned_to=%s", input.Title, derefString(input.AssignedTo)),
	}

	if err := s.taskRepo.CreateWithLog(task, entry); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// UpdateTask applies a partial update and records a single UPDATE_TASK entry.
// The entry is attributed to the task's creator, matching the historical
// behavior of the log.
func (s *TaskService) UpdateTask(id uint64, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, ErrTitleEmpty
		}
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Status != nil {
		status := models.TaskStatus(*input.Status)
		if !status.IsValid() {
			return nil, ErrInvalidStatus
		}
		task.Status = status
	}
	if input.DueDate != nil {
		task.DueDate = input.DueDate
	}
	if input.AssignedTo != nil {
		task.AssignedTo = input.AssignedTo
	}

	entry := &models.LogEntry{
		Actor:   task.CreatedBy,
		Action:  models.ActionUpdateTask,
		TaskID:  &task.ID,
		Details: fmt.Sprintf("Updated: status=%s assigned_to=%s", task.Status, derefString(task.AssignedTo)),
	}

	if err := s.taskRepo.SaveWithLog(task, entry); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// DeleteTask removes a task and records a DELETE_TASK entry. Deleting an
// unknown ID produces no entry at all.
func (s *TaskService) DeleteTask(id uint64) error {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to find task: %w", err)
	}

	entry := &models.LogEntry{
		Actor:   task.CreatedBy,
		Action:  models.ActionDeleteTask,
		TaskID:  &task.ID,
		Details: fmt.Sprintf("Deleted task '%s'", task.Title),
	}

	if err := s.taskRepo.DeleteWithLog(task, entry); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

// AdminCreateTask creates a task on behalf of an administrator, optionally
// assigning it. The assignee must exist; the admin flag is checked first.
func (s *TaskService) AdminCreateTask(input AdminCreateTaskInput) (*models.Task, error) {
	admin, err := s.userRepo.FindByUsername(input.Admin)
	if err != nil || !admin.IsAdmin {
		return nil, ErrAdminRequired
	}

	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleEmpty
	}

	if input.AssignedTo != nil && *input.AssignedTo != "" {
		if _, err := s.userRepo.FindByUsername(*input.AssignedTo); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrAssigneeNotFound
			}
			return nil, fmt.Errorf("failed to check assignee: %w", err)
		}
	}

	task := &models.Task{
		Title:      input.Title,
		Status:     models.TaskStatusTodo,
		DueDate:    input.DueDate,
		CreatedBy:  input.Admin,
		AssignedTo: input.AssignedTo,
	}

	details := "Unassigned"
	if input.AssignedTo != nil && *input.AssignedTo != "" {
		details = fmt.Sprintf("Assigned to %s", *input.AssignedTo)
	}
	entry := &models.LogEntry{
		Actor:   input.Admin,
		Action:  models.ActionAdminCreateTask,
		Details: details,
	}

	if err := s.taskRepo.CreateWithLog(task, entry); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
