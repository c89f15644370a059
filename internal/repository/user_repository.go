package repository

import (
	"errors"

	"github.com/taskmate/daily-task-backend/internal/models"
	"gorm.io/gorm"
)

// ErrDuplicateEmail is returned when creating a user whose email is already
// registered. The unique index on users.email makes this race-safe; the
// handler-level existence check is advisory only.
var ErrDuplicateEmail = errors.New("user repository: email already registered")

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// FindByEmail finds a user by their normalized email
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdatePassword replaces the password hash for the given email
func (r *GormUserRepository) UpdatePassword(email, passwordHash string) error {
	return r.db.Model(&models.User{}).
		Where("email = ?", email).
		Update("password_hash", passwordHash).Error
}
