package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blooddrive-backend/internal/domains/stats/model"
	"blooddrive-backend/internal/domains/stats/repository"
)

var _ repository.StatsRepository = (*MockStatsRepository)(nil)

// MockStatsRepository is a mock implementation of StatsRepository.
type MockStatsRepository struct {
	GetFunc       func(ctx context.Context) (*model.DriveStats, error)
	IncrementFunc func(ctx context.Context, amount int64) (*model.DriveStats, error)
	ReconcileFunc func(ctx context.Context) (*model.DriveStats, error)
}

func (m *MockStatsRepository) Get(ctx context.Context) (*model.DriveStats, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	return nil, errors.New("GetFunc not implemented in mock")
}

func (m *MockStatsRepository) Increment(ctx context.Context, amount int64) (*model.DriveStats, error) {
	if m.IncrementFunc != nil {
		return m.IncrementFunc(ctx, amount)
	}
	return nil, errors.New("IncrementFunc not implemented in mock")
}

func (m *MockStatsRepository) Reconcile(ctx context.Context) (*model.DriveStats, error) {
	if m.ReconcileFunc != nil {
		return m.ReconcileFunc(ctx)
	}
	return nil, errors.New("ReconcileFunc not implemented in mock")
}

func TestGetStats(t *testing.T) {
	updated := time.Now()
	repo := &MockStatsRepository{
		GetFunc: func(ctx context.Context) (*model.DriveStats, error) {
			return &model.DriveStats{ID: model.StatsKey, TotalUnits: 12, LastUpdated: updated}, nil
		},
	}

	svc := NewStatsService(repo)

	resp, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), resp.TotalUnits)
	assert.Equal(t, updated, resp.LastUpdated)
}

func TestGetStats_StoreFailure(t *testing.T) {
	repo := &MockStatsRepository{
		GetFunc: func(ctx context.Context) (*model.DriveStats, error) {
			return nil, errors.New("connection refused")
		},
	}

	svc := NewStatsService(repo)

	_, err := svc.GetStats(context.Background())
	require.Error(t, err)
}

func TestIncrement_RejectsNonPositiveAmount(t *testing.T) {
	repo := &MockStatsRepository{}
	svc := NewStatsService(repo)

	for _, amount := range []int64{0, -1} {
		_, err := svc.Increment(context.Background(), amount)
		require.ErrorIs(t, err, model.ErrInvalidAmount)
	}
}

func TestIncrement_PassesAmountThrough(t *testing.T) {
	var gotAmount int64
	repo := &MockStatsRepository{
		IncrementFunc: func(ctx context.Context, amount int64) (*model.DriveStats, error) {
			gotAmount = amount
			return &model.DriveStats{ID: model.StatsKey, TotalUnits: amount}, nil
		},
	}

	svc := NewStatsService(repo)

	stats, err := svc.Increment(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), gotAmount)
	assert.Equal(t, int64(1), stats.TotalUnits)
}

func TestSync_UsesReconciledCount(t *testing.T) {
	repo := &MockStatsRepository{
		ReconcileFunc: func(ctx context.Context) (*model.DriveStats, error) {
			return &model.DriveStats{ID: model.StatsKey, TotalUnits: 99, LastUpdated: time.Now()}, nil
		},
	}

	svc := NewStatsService(repo)

	resp, err := svc.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(99), resp.TotalUnits)
}

func TestSync_StoreFailure(t *testing.T) {
	repo := &MockStatsRepository{
		ReconcileFunc: func(ctx context.Context) (*model.DriveStats, error) {
			return nil, errors.New("connection refused")
		},
	}

	svc := NewStatsService(repo)

	_, err := svc.Sync(context.Background())
	require.Error(t, err)
}
