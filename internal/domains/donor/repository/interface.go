package repository

import (
	"context"

	"blooddrive-backend/internal/domains/donor/model"
)

// =====================================================
// DONOR REPOSITORY INTERFACE
// =====================================================

type DonorRepository interface {
	// Create persists a new donor record. The store assigns Seq.
	Create(ctx context.Context, donor *model.Donor) error

	// ListRecent returns up to limit donors, most recent first.
	// Ties on DonatedAt break by insertion order.
	ListRecent(ctx context.Context, limit int) ([]*model.Donor, error)

	// Count returns the exact number of persisted donor records.
	Count(ctx context.Context) (int64, error)
}
