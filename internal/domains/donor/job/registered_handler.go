package job

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"blooddrive-backend/internal/infrastructure/email"
	"blooddrive-backend/internal/shared"
)

// DonorRegisteredHandler emails the drive coordinator about each new
// registration.
type DonorRegisteredHandler struct {
	emailSvc         email.EmailService
	coordinatorEmail string
}

func NewDonorRegisteredHandler(emailSvc email.EmailService, coordinatorEmail string) *DonorRegisteredHandler {
	return &DonorRegisteredHandler{
		emailSvc:         emailSvc,
		coordinatorEmail: coordinatorEmail,
	}
}

func (h *DonorRegisteredHandler) Handle(ctx context.Context, t *asynq.Task) error {
	var p shared.DonorRegisteredPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		// Malformed payload, retrying will not help
		return asynq.SkipRetry
	}

	if h.coordinatorEmail == "" {
		log.Info().
			Str("donor", p.FullName).
			Msg("No coordinator email configured, skipping notification")
		return nil
	}

	return h.emailSvc.SendDonorRegisteredEmail(ctx, email.DonorRegisteredData{
		To:         h.coordinatorEmail,
		FullName:   p.FullName,
		BloodGroup: p.BloodGroup,
		DonatedAt:  p.DonatedAt,
		TotalUnits: p.TotalUnits,
	})
}
