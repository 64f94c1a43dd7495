package service

import (
	"context"

	"blooddrive-backend/internal/domains/donor/model"
	"blooddrive-backend/internal/shared"
)

// =====================================================
// DONOR SERVICE INTERFACE
// =====================================================

type ServiceInterface interface {
	// Register runs one signup end-to-end: validate, persist the donor,
	// then bump the running total by one.
	Register(ctx context.Context, req model.RegisterDonorRequest) (*model.RegistrationResponse, error)

	// ListRecent returns the public view of the most recent donors.
	ListRecent(ctx context.Context, limit int) ([]model.RecentDonorResponse, error)
}

// TaskEnqueuer queues background work after a successful registration.
type TaskEnqueuer interface {
	EnqueueDonorRegistered(payload shared.DonorRegisteredPayload) error
}
