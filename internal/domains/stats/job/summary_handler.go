package job

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	donorService "blooddrive-backend/internal/domains/donor/service"
	statsService "blooddrive-backend/internal/domains/stats/service"
	"blooddrive-backend/internal/infrastructure/email"
)

// DailySummaryHandler mails the coordinator a snapshot of the drive. It
// only reports the current aggregate; it never reconciles it.
type DailySummaryHandler struct {
	stats            statsService.ServiceInterface
	donors           donorService.ServiceInterface
	emailSvc         email.EmailService
	coordinatorEmail string
	donorLimit       int
}

func NewDailySummaryHandler(
	stats statsService.ServiceInterface,
	donors donorService.ServiceInterface,
	emailSvc email.EmailService,
	coordinatorEmail string,
	donorLimit int,
) *DailySummaryHandler {
	return &DailySummaryHandler{
		stats:            stats,
		donors:           donors,
		emailSvc:         emailSvc,
		coordinatorEmail: coordinatorEmail,
		donorLimit:       donorLimit,
	}
}

func (h *DailySummaryHandler) Handle(ctx context.Context, t *asynq.Task) error {
	if h.coordinatorEmail == "" {
		log.Info().Msg("No coordinator email configured, skipping daily summary")
		return nil
	}

	stats, err := h.stats.GetStats(ctx)
	if err != nil {
		return fmt.Errorf("failed to load stats for summary: %w", err)
	}

	recent, err := h.donors.ListRecent(ctx, h.donorLimit)
	if err != nil {
		return fmt.Errorf("failed to load donors for summary: %w", err)
	}

	donors := make([]email.SummaryDonor, 0, len(recent))
	for _, d := range recent {
		donors = append(donors, email.SummaryDonor{
			FullName:   d.FullName,
			BloodGroup: d.BloodGroup,
			DonatedAt:  d.DonatedAt,
		})
	}

	return h.emailSvc.SendDailySummaryEmail(ctx, email.DailySummaryData{
		To:          h.coordinatorEmail,
		TotalUnits:  stats.TotalUnits,
		LastUpdated: stats.LastUpdated,
		Donors:      donors,
	})
}
