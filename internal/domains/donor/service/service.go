package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"blooddrive-backend/internal/domains/donor/model"
	"blooddrive-backend/internal/domains/donor/repository"
	statsRepo "blooddrive-backend/internal/domains/stats/repository"
	"blooddrive-backend/internal/shared"
)

// =====================================================
// SERVICE IMPLEMENTATION
// =====================================================

type donorService struct {
	donorRepo repository.DonorRepository
	statsRepo statsRepo.StatsRepository
	enqueuer  TaskEnqueuer // optional, may be nil
}

func NewDonorService(
	donorRepo repository.DonorRepository,
	statsRepo statsRepo.StatsRepository,
	enqueuer TaskEnqueuer,
) ServiceInterface {
	return &donorService{
		donorRepo: donorRepo,
		statsRepo: statsRepo,
		enqueuer:  enqueuer,
	}
}

// =====================================================
// REGISTER
// =====================================================

// Register is the registration transaction: donor insert and counter
// increment are two independent statements against the shared pool, not a
// multi-record transaction. A failed increment after a successful insert
// leaves the counter under-counting until sync-stats runs.
func (s *donorService) Register(
	ctx context.Context,
	req model.RegisterDonorRequest,
) (*model.RegistrationResponse, error) {
	// Step 1: Validate before any write
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, model.NewValidationError(err)
	}

	// Step 2: Persist the donor record
	donor := &model.Donor{
		ID:         uuid.New(),
		FullName:   req.FullName,
		BloodGroup: req.BloodGroup,
		Age:        req.Age,
		Year:       req.Year,
		DonatedAt:  time.Now().UTC(),
	}

	if err := s.donorRepo.Create(ctx, donor); err != nil {
		if errors.Is(err, model.ErrInvalidSubmission) {
			return nil, model.NewValidationError(err)
		}
		return nil, model.NewStorageError("failed to save donor", err)
	}

	// Step 3: Bump the running total
	stats, err := s.statsRepo.Increment(ctx, 1)
	if err != nil {
		log.Error().
			Err(err).
			Str("donor_id", donor.ID.String()).
			Msg("Donor saved but stats increment failed")
		return nil, model.NewStatsIncrementError(err)
	}

	// Step 4: Queue the coordinator notification, best effort
	if s.enqueuer != nil {
		payload := shared.DonorRegisteredPayload{
			FullName:   donor.FullName,
			BloodGroup: donor.BloodGroup,
			DonatedAt:  donor.DonatedAt,
			TotalUnits: stats.TotalUnits,
		}
		if err := s.enqueuer.EnqueueDonorRegistered(payload); err != nil {
			log.Warn().Err(err).Msg("Failed to enqueue registration notification")
		}
	}

	// Step 5: Build response with public fields only
	return &model.RegistrationResponse{
		Donor: model.RegisteredDonor{
			FullName:   donor.FullName,
			BloodGroup: donor.BloodGroup,
		},
		TotalUnits: stats.TotalUnits,
	}, nil
}

// =====================================================
// LIST RECENT
// =====================================================

func (s *donorService) ListRecent(ctx context.Context, limit int) ([]model.RecentDonorResponse, error) {
	if limit <= 0 {
		limit = model.DefaultRecentLimit
	}
	if limit > model.MaxRecentLimit {
		limit = model.MaxRecentLimit
	}

	donors, err := s.donorRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent donors: %w", err)
	}

	// Expose public fields only; age and year stay out of the feed
	responses := make([]model.RecentDonorResponse, 0, len(donors))
	for _, d := range donors {
		responses = append(responses, model.RecentDonorResponse{
			FullName:   d.FullName,
			BloodGroup: d.BloodGroup,
			DonatedAt:  d.DonatedAt,
		})
	}

	return responses, nil
}
