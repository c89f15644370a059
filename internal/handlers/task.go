package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskmate/daily-task-backend/internal/dto"
	apierrors "github.com/taskmate/daily-task-backend/internal/errors"
	"github.com/taskmate/daily-task-backend/internal/middleware"
	"github.com/taskmate/daily-task-backend/internal/services"
)

// TaskHandler coordinates the per-day task save/load endpoints.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// GetTasks returns the authenticated user's tasks and summary for one date.
// A date with no saved tasks reads as an empty day.
func (h *TaskHandler) GetTasks(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	date := c.Param("date")
	if !services.ValidDate(date) {
		apierrors.BadRequest(c, "Invalid date format. Expected YYYY-MM-DD")
		return
	}

	day, err := h.taskService.GetDay(userID, date)
	if err != nil {
		apierrors.InternalErrorWithCause(c, "Failed to fetch tasks", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDayResponse(day))
}

// SaveTasks replaces the authenticated user's tasks and summary for one date.
func (h *TaskHandler) SaveTasks(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	date := c.Param("date")
	if !services.ValidDate(date) {
		apierrors.BadRequest(c, "Invalid date format. Expected YYYY-MM-DD")
		return
	}

	type SaveTasksRequest struct {
		Tasks   []services.TaskEntryInput `json:"tasks" binding:"required"`
		Summary services.SummaryInput     `json:"summary"`
	}

	var req SaveTasksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid tasks data")
		return
	}

	if _, err := h.taskService.SaveDay(userID, date, req.Tasks, req.Summary); err != nil {
		apierrors.InternalErrorWithCause(c, "Failed to save tasks", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tasks saved successfully"})
}
