package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/taskmate/daily-task-backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRepoTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.TaskDay{}, &models.OneTimeCode{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return db
}

func TestOTPRepository_PutAndFind(t *testing.T) {
	repo := NewOTPRepository(setupRepoTestDB(t))

	require.NoError(t, repo.Put("a@x.com", "123456"))

	otp, err := repo.Find("a@x.com", "123456")
	require.NoError(t, err)
	require.Equal(t, "a@x.com", otp.Email)
}

func TestOTPRepository_FindWrongCode(t *testing.T) {
	repo := NewOTPRepository(setupRepoTestDB(t))

	require.NoError(t, repo.Put("a@x.com", "123456"))

	_, err := repo.Find("a@x.com", "654321")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestOTPRepository_PutSupersedesPriorCode(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewOTPRepository(db)

	require.NoError(t, repo.Put("a@x.com", "111111"))
	require.NoError(t, repo.Put("a@x.com", "222222"))

	_, err := repo.Find("a@x.com", "111111")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = repo.Find("a@x.com", "222222")
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.OneTimeCode{}).Where("email = ?", "a@x.com").Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestOTPRepository_ExpiredCodeNeverReturned(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewOTPRepository(db)

	require.NoError(t, repo.Put("a@x.com", "123456"))

	// Backdate past the TTL without physically purging the row.
	err := db.Model(&models.OneTimeCode{}).
		Where("email = ?", "a@x.com").
		Update("created_at", time.Now().Add(-301*time.Second)).Error
	require.NoError(t, err)

	_, err = repo.Find("a@x.com", "123456")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var count int64
	require.NoError(t, db.Model(&models.OneTimeCode{}).Count(&count).Error)
	require.EqualValues(t, 1, count, "expired row should still be physically present")
}

func TestOTPRepository_DeleteIdempotent(t *testing.T) {
	repo := NewOTPRepository(setupRepoTestDB(t))

	require.NoError(t, repo.Put("a@x.com", "123456"))
	require.NoError(t, repo.Delete("a@x.com", "123456"))
	require.NoError(t, repo.Delete("a@x.com", "123456"))

	_, err := repo.Find("a@x.com", "123456")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
