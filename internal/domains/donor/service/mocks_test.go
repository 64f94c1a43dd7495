package service

import (
	"context"
	"errors"
	"sync/atomic"

	donorModel "blooddrive-backend/internal/domains/donor/model"
	"blooddrive-backend/internal/domains/donor/repository"
	statsModel "blooddrive-backend/internal/domains/stats/model"
	statsRepo "blooddrive-backend/internal/domains/stats/repository"
	"blooddrive-backend/internal/shared"
)

// Compile-time checks
var (
	_ repository.DonorRepository = (*MockDonorRepository)(nil)
	_ statsRepo.StatsRepository  = (*MockStatsRepository)(nil)
	_ TaskEnqueuer               = (*MockEnqueuer)(nil)
)

// MockDonorRepository is a mock implementation of DonorRepository.
type MockDonorRepository struct {
	CreateFunc     func(ctx context.Context, donor *donorModel.Donor) error
	ListRecentFunc func(ctx context.Context, limit int) ([]*donorModel.Donor, error)
	CountFunc      func(ctx context.Context) (int64, error)

	CreateCallCount int32
}

func (m *MockDonorRepository) Create(ctx context.Context, donor *donorModel.Donor) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, donor)
	}
	return nil
}

func (m *MockDonorRepository) ListRecent(ctx context.Context, limit int) ([]*donorModel.Donor, error) {
	if m.ListRecentFunc != nil {
		return m.ListRecentFunc(ctx, limit)
	}
	return nil, nil
}

func (m *MockDonorRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, errors.New("CountFunc not implemented in mock")
}

// MockStatsRepository is a mock implementation of StatsRepository.
type MockStatsRepository struct {
	GetFunc       func(ctx context.Context) (*statsModel.DriveStats, error)
	IncrementFunc func(ctx context.Context, amount int64) (*statsModel.DriveStats, error)
	ReconcileFunc func(ctx context.Context) (*statsModel.DriveStats, error)

	IncrementCallCount int32
}

func (m *MockStatsRepository) Get(ctx context.Context) (*statsModel.DriveStats, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	return nil, errors.New("GetFunc not implemented in mock")
}

func (m *MockStatsRepository) Increment(ctx context.Context, amount int64) (*statsModel.DriveStats, error) {
	atomic.AddInt32(&m.IncrementCallCount, 1)
	if m.IncrementFunc != nil {
		return m.IncrementFunc(ctx, amount)
	}
	return nil, errors.New("IncrementFunc not implemented in mock")
}

func (m *MockStatsRepository) Reconcile(ctx context.Context) (*statsModel.DriveStats, error) {
	if m.ReconcileFunc != nil {
		return m.ReconcileFunc(ctx)
	}
	return nil, errors.New("ReconcileFunc not implemented in mock")
}

// MockEnqueuer is a mock implementation of TaskEnqueuer.
type MockEnqueuer struct {
	EnqueueFunc func(payload shared.DonorRegisteredPayload) error

	EnqueueCallCount int32
	LastPayload      shared.DonorRegisteredPayload
}

func (m *MockEnqueuer) EnqueueDonorRegistered(payload shared.DonorRegisteredPayload) error {
	atomic.AddInt32(&m.EnqueueCallCount, 1)
	m.LastPayload = payload
	if m.EnqueueFunc != nil {
		return m.EnqueueFunc(payload)
	}
	return nil
}
