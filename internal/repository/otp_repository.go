package repository

import (
	"time"

	"github.com/taskmate/daily-task-backend/internal/constants"
	"github.com/taskmate/daily-task-backend/internal/models"
	"gorm.io/gorm"
)

// GormOTPRepository is a GORM implementation of OTPRepository
type GormOTPRepository struct {
	db *gorm.DB
}

// NewOTPRepository creates a new OTPRepository
func NewOTPRepository(db *gorm.DB) OTPRepository {
	return &GormOTPRepository{db: db}
}

// Put replaces any existing code for the email with a fresh one. Expired
// rows across all emails are purged in the same transaction; a find never
// returns them anyway, so deferred cleanup is safe.
func (r *GormOTPRepository) Put(email, code string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		cutoff := time.Now().Add(-constants.OTPTTL)
		if err := tx.Where("created_at <= ?", cutoff).
			Delete(&models.OneTimeCode{}).Error; err != nil {
			return err
		}

		if err := tx.Where("email = ?", email).
			Delete(&models.OneTimeCode{}).Error; err != nil {
			return err
		}

		return tx.Create(&models.OneTimeCode{Email: email, Code: code}).Error
	})
}

// Find returns the matching non-expired code
func (r *GormOTPRepository) Find(email, code string) (*models.OneTimeCode, error) {
	cutoff := time.Now().Add(-constants.OTPTTL)

	var otp models.OneTimeCode
	if err := r.db.
		Where("email = ? AND code = ? AND created_at > ?", email, code, cutoff).
		First(&otp).Error; err != nil {
		return nil, err
	}
	return &otp, nil
}

// Delete removes a code; deleting a missing code is not an error
func (r *GormOTPRepository) Delete(email, code string) error {
	return r.db.Where("email = ? AND code = ?", email, code).
		Delete(&models.OneTimeCode{}).Error
}
