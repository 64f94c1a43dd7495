package main

import (
	"github.com/hibiken/asynq"

	donorJob "blooddrive-backend/internal/domains/donor/job"
	statsJob "blooddrive-backend/internal/domains/stats/job"
	"blooddrive-backend/internal/infrastructure/email"
	"blooddrive-backend/internal/shared"
	"blooddrive-backend/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	donorRegistered *donorJob.DonorRegisteredHandler
	dailySummary    *statsJob.DailySummaryHandler
}

// initializeHandlers creates all job handlers with their dependencies
func initializeHandlers(c *container.Container, cfg *Config) *HandlerRegistry {
	emailSvc := email.NewDevEmailService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom)

	return &HandlerRegistry{
		donorRegistered: donorJob.NewDonorRegisteredHandler(emailSvc, cfg.CoordinatorEmail),
		dailySummary: statsJob.NewDailySummaryHandler(
			c.StatsService,
			c.DonorService,
			emailSvc,
			cfg.CoordinatorEmail,
			c.Config.Jobs.SummaryDonorLimit,
		),
	}
}

// RegisterHandlers wires every task type to its handler
func (r *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(shared.TypeDonorRegistered, r.donorRegistered.Handle)
	mux.HandleFunc(shared.TypeDailyStatsReport, r.dailySummary.Handle)
}
