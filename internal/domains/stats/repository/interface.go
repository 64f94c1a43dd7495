package repository

import (
	"context"

	"blooddrive-backend/internal/domains/stats/model"
)

// =====================================================
// STATS REPOSITORY INTERFACE
// =====================================================

type StatsRepository interface {
	// Get returns the aggregate, lazily creating the singleton row with
	// total_units = 0 on first access. Safe under concurrent callers:
	// the lazy-init is an atomic upsert, never read-then-create.
	Get(ctx context.Context) (*model.DriveStats, error)

	// Increment atomically adds amount to total_units and stamps
	// last_updated, as a single read-modify-write statement.
	Increment(ctx context.Context, amount int64) (*model.DriveStats, error)

	// Reconcile sets total_units to the exact donor count. Explicit
	// drift repair; never called automatically.
	Reconcile(ctx context.Context) (*model.DriveStats, error)
}
