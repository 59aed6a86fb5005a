package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	DatabasePath string // sqlite database file
	RedisURL     string
	OpenAIAPIKey string

	InputPath  string // raw employee CSV
	OutputPath string // cleaned employee CSV
	ReportDir  string // stats report output directory

	ResponderModel   string
	AuditorModel     string
	ResponderTimeout time.Duration
	AuditorTimeout   time.Duration
}

// LoadConfig reads configuration from environment variables (.env file)
func LoadConfig() (*Config, error) {
	// Load .env file. In production, env variables are often set directly.
	if err := godotenv.Load(); err != nil {
		// Don't fail if .env is not present, just log it
		// log.Printf("Warning: .env file not found, reading from environment")
	}

	return &Config{
		DatabasePath: getEnv("HR_DATABASE_PATH", "data/processed/hr.db"),
		RedisURL:     getEnv("REDIS_URL", "redis://localhost:6379/0"),
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),

		InputPath:  getEnv("HR_INPUT_PATH", "data/raw/employees.csv"),
		OutputPath: getEnv("HR_OUTPUT_PATH", "data/processed/cleaned_employees.csv"),
		ReportDir:  getEnv("HR_REPORT_DIR", "data/reports"),

		ResponderModel:   getEnv("RESPONDER_MODEL", "gpt-5.1"),
		AuditorModel:     getEnv("AUDITOR_MODEL", "gpt-5.1"),
		ResponderTimeout: getEnvSeconds("RESPONDER_TIMEOUT_SECONDS", 60),
		AuditorTimeout:   getEnvSeconds("AUDITOR_TIMEOUT_SECONDS", 30),
	}, nil
}

// Helper function to get env var or return default
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvSeconds(key string, defaultSeconds int) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return time.Duration(defaultSeconds) * time.Second
	}

	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return time.Duration(defaultSeconds) * time.Second
	}

	return time.Duration(seconds) * time.Second
}
