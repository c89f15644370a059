package repository

import (
	"github.com/taskmate/daily-task-backend/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user. Returns ErrDuplicateEmail when the email
	// is already registered.
	Create(user *models.User) error

	// FindByEmail finds a user by their normalized email
	FindByEmail(email string) (*models.User, error)

	// UpdatePassword replaces the password hash for the given email.
	// Updating a missing email succeeds with zero rows affected.
	UpdatePassword(email, passwordHash string) error
}

// OTPRepository defines the interface for password-reset code storage
type OTPRepository interface {
	// Put replaces any existing code for the email with a fresh one
	Put(email, code string) error

	// Find returns the matching non-expired code, or gorm.ErrRecordNotFound
	Find(email, code string) (*models.OneTimeCode, error)

	// Delete removes a code; deleting a missing code is not an error
	Delete(email, code string) error
}

// TaskDayRepository defines the interface for task day data access
type TaskDayRepository interface {
	// Upsert atomically replaces tasks and summary for (userID, date),
	// creating the day if absent, and returns the post-write state.
	Upsert(userID uint64, date string, tasks models.TaskEntries, summary models.Summary) (*models.TaskDay, error)

	// Find returns the day for (userID, date), or nil when none exists
	Find(userID uint64, date string) (*models.TaskDay, error)
}
