package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"blooddrive-backend/internal/domains/stats/model"
	"blooddrive-backend/internal/domains/stats/repository"
)

// =====================================================
// SERVICE IMPLEMENTATION
// =====================================================

type statsService struct {
	statsRepo repository.StatsRepository
}

func NewStatsService(statsRepo repository.StatsRepository) ServiceInterface {
	return &statsService{
		statsRepo: statsRepo,
	}
}

func (s *statsService) GetStats(ctx context.Context) (*model.StatsResponse, error) {
	stats, err := s.statsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	return model.NewStatsResponse(stats), nil
}

func (s *statsService) Increment(ctx context.Context, amount int64) (*model.DriveStats, error) {
	if amount <= 0 {
		return nil, model.ErrInvalidAmount
	}

	stats, err := s.statsRepo.Increment(ctx, amount)
	if err != nil {
		return nil, fmt.Errorf("failed to increment stats: %w", err)
	}

	return stats, nil
}

func (s *statsService) Sync(ctx context.Context) (*model.SyncResponse, error) {
	stats, err := s.statsRepo.Reconcile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reconcile stats: %w", err)
	}

	log.Info().
		Int64("total_units", stats.TotalUnits).
		Msg("Stats reconciled against donor count")

	return &model.SyncResponse{TotalUnits: stats.TotalUnits}, nil
}
