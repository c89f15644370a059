package dto

import (
	"github.com/taskmate/daily-task-backend/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// AuthResponse is the body returned by register and login
type AuthResponse struct {
	Message string  `json:"message"`
	Token   string  `json:"token"`
	User    UserDTO `json:"user"`
}

// TaskDayResponse represents one day's tasks and summary in API responses
type TaskDayResponse struct {
	Tasks   models.TaskEntries `json:"tasks"`
	Summary models.Summary     `json:"summary"`
}

// ToUserDTO converts a User model to UserDTO. The creation date is included
// only on registration responses.
func ToUserDTO(user models.User, includeCreatedDate bool) UserDTO {
	dto := UserDTO{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
	if includeCreatedDate {
		dto.CreatedAt = user.CreatedDate
	}
	return dto
}

// ToTaskDayResponse converts a TaskDay to its response shape. A nil day
// renders as an empty day, never as an error.
func ToTaskDayResponse(day *models.TaskDay) TaskDayResponse {
	if day == nil {
		return TaskDayResponse{
			Tasks:   models.TaskEntries{},
			Summary: models.Summary{Categories: map[string]any{}},
		}
	}

	resp := TaskDayResponse{
		Tasks:   day.Tasks,
		Summary: day.Summary,
	}
	if resp.Tasks == nil {
		resp.Tasks = models.TaskEntries{}
	}
	if resp.Summary.Categories == nil {
		resp.Summary.Categories = map[string]any{}
	}
	return resp
}
