package dto

import (
	"github.com/Durga-Vijaya-Ramaraju-Pamidi/Task-Trackr/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID          uint64            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      models.TaskStatus `json:"status"`
	DueDate     *string           `json:"due_date"`
	Username    string            `json:"username"`
	AssignedTo  *string           `json:"assigned_to"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
	}
}

// ToUserDTOs converts a slice of users
func ToUserDTOs(users []models.User) []UserDTO {
	items := make([]UserDTO, len(users))
	for i, u := range users {
		items[i] = ToUserDTO(u)
	}
	return items
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		DueDate:     task.DueDate,
		Username:    task.CreatedBy,
		AssignedTo:  task.AssignedTo,
	}
}

// ToTaskDTOs converts a slice of tasks
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	items := make([]TaskDTO, len(tasks))
	for i, t := range tasks {
		items[i] = ToTaskDTO(t)
	}
	return items
}
