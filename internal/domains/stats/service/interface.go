package service

import (
	"context"

	"blooddrive-backend/internal/domains/stats/model"
)

// =====================================================
// STATS SERVICE INTERFACE
// =====================================================

type ServiceInterface interface {
	// GetStats returns the current aggregate for polling dashboards.
	GetStats(ctx context.Context) (*model.StatsResponse, error)

	// Increment bumps the running total by amount (registrations pass 1).
	Increment(ctx context.Context, amount int64) (*model.DriveStats, error)

	// Sync recomputes the total from the donor store's exact count.
	Sync(ctx context.Context) (*model.SyncResponse, error)
}
