package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/taskmate/daily-task-backend/internal/auth"
	"github.com/taskmate/daily-task-backend/internal/config"
	"github.com/taskmate/daily-task-backend/internal/database"
	"github.com/taskmate/daily-task-backend/internal/handlers"
	"github.com/taskmate/daily-task-backend/internal/mailer"
	"github.com/taskmate/daily-task-backend/internal/middleware"
	"github.com/taskmate/daily-task-backend/internal/repository"
	"github.com/taskmate/daily-task-backend/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	manager := database.NewManager(cfg)
	db, err := manager.Ensure()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize mailer
	mail, err := mailer.New(cfg)
	if err != nil {
		log.Fatalf("Failed to configure mailer: %v", err)
	}

	// Initialize repositories and services
	userRepo := repository.NewUserRepository(db)
	otpRepo := repository.NewOTPRepository(db)
	dayRepo := repository.NewTaskDayRepository(db)

	tokens := auth.NewTokenManager(cfg.JWTSecret)
	authService := services.NewAuthService(userRepo, otpRepo, mail)
	taskService := services.NewTaskService(dayRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, tokens)
	taskHandler := handlers.NewTaskHandler(taskService)

	// Initialize Gin router
	r := gin.Default()

	// API routes
	api := r.Group("/api")
	api.Use(middleware.ExtractIdentity(tokens))
	{
		// Auth routes (public)
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.POST("/forgot-password", authHandler.ForgotPassword)
		api.POST("/reset-password", authHandler.ResetPassword)

		// Task routes (identity required)
		tasks := api.Group("/tasks")
		tasks.Use(middleware.RequireIdentity())
		{
			tasks.GET("/:date", taskHandler.GetTasks)
			tasks.POST("/:date", taskHandler.SaveTasks)
		}

		// Health check endpoint
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":    "OK",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
		})
	}

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Server running on port %s", cfg.Port)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
