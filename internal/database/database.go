package database

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/taskmate/daily-task-backend/internal/config"
	"github.com/taskmate/daily-task-backend/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Manager owns the process-wide database connection. The connection is
// established lazily on the first Ensure call; concurrent first callers
// share a single establishment attempt.
type Manager struct {
	cfg *config.Config

	mu sync.Mutex
	db *gorm.DB
}

func NewManager(cfg *config.Config) *Manager {
	return &Manager{cfg: cfg}
}

// Ensure returns the shared connection, opening it if necessary.
func (m *Manager) Ensure() (*gorm.DB, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db != nil {
		return m.db, nil
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local&timeout=5s&readTimeout=5s&writeTimeout=5s",
		m.cfg.DBUser,
		m.cfg.DBPassword,
		m.cfg.DBHost,
		m.cfg.DBPort,
		m.cfg.DBName,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Info),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Database connection established")
	m.db = db
	return db, nil
}

// Migrate runs schema migrations on the given connection.
func Migrate(db *gorm.DB) error {
	log.Println("Running database migrations...")
	err := db.AutoMigrate(
		&models.User{},
		&models.TaskDay{},
		&models.OneTimeCode{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Println("Database migrations completed")
	return nil
}
