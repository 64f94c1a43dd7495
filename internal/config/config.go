package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the full application configuration, populated from
// environment variables.
type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	SMTP      SMTPConfig
	Drive     DriveConfig
	RateLimit RateLimitConfig
	Jobs      JobConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type DatabaseConfig struct {
	// URL is the full connection string; overrides the discrete fields.
	URL      string
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MinConns int
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type SMTPConfig struct {
	Host string
	Port string
	From string
}

// DriveConfig describes the blood drive this deployment runs.
type DriveConfig struct {
	// CoordinatorEmail receives registration notifications and the
	// daily summary.
	CoordinatorEmail string
}

type RateLimitConfig struct {
	// MaxRegistrations per window per client IP on the donate endpoint.
	MaxRegistrations int
	Window           time.Duration
}

type JobConfig struct {
	// DailySummaryCron is a standard cron expression, evaluated in UTC.
	DailySummaryCron string
	// SummaryDonorLimit caps how many recent donors the summary lists.
	SummaryDonorLimit int
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	window, err := time.ParseDuration(getEnv("RATE_LIMIT_WINDOW", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_WINDOW: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "BloodDrive API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Database: DatabaseConfig{
			URL:      getEnv("DATABASE_URL", ""),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "blooddrive"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvInt("DB_MAX_CONNS", 25),
			MinConns: getEnvInt("DB_MIN_CONNS", 5),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		SMTP: SMTPConfig{
			Host: getEnv("SMTP_HOST", "localhost"),
			Port: getEnv("SMTP_PORT", "1025"),
			From: getEnv("SMTP_FROM", "noreply@blooddrive.dev"),
		},
		Drive: DriveConfig{
			CoordinatorEmail: getEnv("DRIVE_COORDINATOR_EMAIL", ""),
		},
		RateLimit: RateLimitConfig{
			MaxRegistrations: getEnvInt("RATE_LIMIT_MAX_REGISTRATIONS", 5),
			Window:           window,
		},
		Jobs: JobConfig{
			DailySummaryCron:  getEnv("JOB_DAILY_SUMMARY_CRON", "0 18 * * *"),
			SummaryDonorLimit: getEnvInt("JOB_SUMMARY_DONOR_LIMIT", 10),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the loaded config is usable.
func (c *Config) Validate() error {
	if c.App.Environment == "production" {
		if c.Database.URL == "" && c.Database.Password == "" {
			return fmt.Errorf("DATABASE_URL or DB_PASSWORD must be set in production")
		}
		if c.Drive.CoordinatorEmail == "" {
			fmt.Println("WARNING: DRIVE_COORDINATOR_EMAIL not set - notification emails will be skipped")
		}
	}

	if c.RateLimit.MaxRegistrations < 1 {
		return fmt.Errorf("RATE_LIMIT_MAX_REGISTRATIONS must be at least 1")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
