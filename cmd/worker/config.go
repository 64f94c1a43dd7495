package main

import (
	"log"

	"blooddrive-backend/internal/shared/utils"
)

// Config holds all configuration for the worker
type Config struct {
	RedisAddr        string
	SMTPHost         string
	SMTPPort         string
	SMTPFrom         string
	CoordinatorEmail string
}

// loadConfig loads configuration from environment variables
func loadConfig() *Config {
	cfg := &Config{
		RedisAddr:        utils.GetEnvVariable("REDIS_HOST", "localhost:6379"),
		SMTPHost:         utils.GetEnvVariable("SMTP_HOST", "localhost"),
		SMTPPort:         utils.GetEnvVariable("SMTP_PORT", "1025"),
		SMTPFrom:         utils.GetEnvVariable("SMTP_FROM", "noreply@blooddrive.dev"),
		CoordinatorEmail: utils.GetEnvVariable("DRIVE_COORDINATOR_EMAIL", ""),
	}

	log.Printf("[Config] Redis: %s, SMTP: %s:%s",
		cfg.RedisAddr, cfg.SMTPHost, cfg.SMTPPort)

	return cfg
}
