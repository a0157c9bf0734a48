package config

import (
	"os"
)

type Config struct {
	Port               string
	DatabaseURL        string
	Environment        string
	BaseURL            string
	AllowedOrigins     string
	AlertSweepSchedule string
	AlertWebhookURL    string
}

func Load() *Config {
	return &Config{
		Port:               getEnv("PORT", "8080"),
		DatabaseURL:        getEnv("DATABASE_URL", "sneaker_matrix.db"),
		Environment:        getEnv("ENVIRONMENT", "development"),
		BaseURL:            getEnv("BASE_URL", "http://localhost:8080"),
		AllowedOrigins:     getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),
		AlertSweepSchedule: getEnv("ALERT_SWEEP_SCHEDULE", "@every 15m"),
		AlertWebhookURL:    getEnv("ALERT_WEBHOOK_URL", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
