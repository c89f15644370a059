package repository

import (
	"errors"

	"github.com/taskmate/daily-task-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTaskDayRepository is a GORM implementation of TaskDayRepository
type GormTaskDayRepository struct {
	db *gorm.DB
}

// NewTaskDayRepository creates a new TaskDayRepository
func NewTaskDayRepository(db *gorm.DB) TaskDayRepository {
	return &GormTaskDayRepository{db: db}
}

// Upsert atomically replaces tasks and summary for (userID, date). The
// conflict clause keys on the (user_id, date) unique index so concurrent
// saves for the same day serialize wholesale; tasks and summary are always
// written together, never mixed across calls.
func (r *GormTaskDayRepository) Upsert(userID uint64, date string, tasks models.TaskEntries, summary models.Summary) (*models.TaskDay, error) {
	day := models.TaskDay{
		UserID:  userID,
		Date:    date,
		Tasks:   tasks,
		Summary: summary,
	}

	err := r.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"tasks", "summary", "updated_at"}),
		}).
		Create(&day).Error
	if err != nil {
		return nil, err
	}

	// Re-read so callers get the committed row, including timestamps and
	// the id assigned on first insert.
	return r.Find(userID, date)
}

// Find returns the day for (userID, date), or nil when none exists
func (r *GormTaskDayRepository) Find(userID uint64, date string) (*models.TaskDay, error) {
	var day models.TaskDay
	err := r.db.Where("user_id = ? AND date = ?", userID, date).First(&day).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &day, nil
}
