package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Auth     AuthConfig
	LLM      LLMConfig
	Drive    DriveConfig
	Scoring  ScoringConfig
	Queue    QueueConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	DialTimeout     time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// AuthConfig holds token verification configuration
type AuthConfig struct {
	JWTSecret string
}

// LLMConfig holds attribute-extraction configuration
type LLMConfig struct {
	BaseURL     string
	Model       string
	APIKey      string
	Temperature float32
	Timeout     time.Duration
}

// DriveConfig holds document-store configuration
type DriveConfig struct {
	BaseURL     string
	AccessToken string
	PDFToText   string
}

// ScoringConfig holds the fixed reference date for school-year
// classification. Left empty, classification uses the wall clock at
// startup; set it (YYYY-MM-DD) for reproducible batch runs.
type ScoringConfig struct {
	ReferenceDate string
}

// QueueConfig holds dispatch-queue tuning
type QueueConfig struct {
	Workers     int
	Size        int
	TaskTimeout time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:             getEnv("DB_URL", ""),
			MaxConns:        getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:        getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:     getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET_KEY", ""),
		},
		LLM: LLMConfig{
			BaseURL:     getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Model:       getEnv("OPENAI_MODEL", "gpt-4o"),
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			Temperature: getEnvAsFloat32("OPENAI_TEMPERATURE", 0.0),
			Timeout:     getEnvAsDuration("OPENAI_TIMEOUT", 45*time.Second),
		},
		Drive: DriveConfig{
			BaseURL:     getEnv("DRIVE_BASE_URL", "https://www.googleapis.com/drive/v3"),
			AccessToken: getEnv("DRIVE_ACCESS_TOKEN", ""),
			PDFToText:   getEnv("PDF_TO_TEXT", "pdftotext"),
		},
		Scoring: ScoringConfig{
			ReferenceDate: getEnv("SCORING_REFERENCE_DATE", ""),
		},
		Queue: QueueConfig{
			Workers:     getEnvAsInt("QUEUE_WORKERS", 4),
			Size:        getEnvAsInt("QUEUE_SIZE", 256),
			TaskTimeout: getEnvAsDuration("QUEUE_TASK_TIMEOUT", 3*time.Minute),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// ReferenceDate resolves the configured scoring reference date, falling
// back to now.
func (c *Config) ReferenceDate(now time.Time) time.Time {
	if c.Scoring.ReferenceDate == "" {
		return now
	}
	t, err := time.Parse("2006-01-02", c.Scoring.ReferenceDate)
	if err != nil {
		return now
	}
	return t
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrValidation)
	}
	if c.Auth.JWTSecret == "" {
		return NewAppError("CONFIG_ERROR", "JWT_SECRET_KEY is required", ErrValidation)
	}
	if c.LLM.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "OPENAI_API_KEY is required", ErrValidation)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrValidation)
	}
	return nil
}
