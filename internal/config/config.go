package config

import (
	"os"
)

type Config struct {
	Port       string
	GinMode    string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	EmailHost  string
	EmailPort  string
	EmailUser  string
	EmailPass  string
	EmailFrom  string
}

func Load() *Config {
	return &Config{
		Port:       getEnv("PORT", "5000"),
		GinMode:    getEnv("GIN_MODE", "debug"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBUser:     getEnv("DB_USER", "taskuser"),
		DBPassword: getEnv("DB_PASSWORD", "taskpassword"),
		DBName:     getEnv("DB_NAME", "daily_tasks"),
		JWTSecret:  getEnv("JWT_SECRET", "default-secret-key-change-me"),
		EmailHost:  getEnv("EMAIL_HOST", "localhost"),
		EmailPort:  getEnv("EMAIL_PORT", "587"),
		EmailUser:  getEnv("EMAIL_USER", ""),
		EmailPass:  getEnv("EMAIL_PASS", ""),
		EmailFrom:  getEnv("EMAIL_FROM", "no-reply@localhost"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
