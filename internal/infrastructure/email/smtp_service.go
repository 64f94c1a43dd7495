package email

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// DonorRegisteredData feeds the per-registration coordinator notification.
type DonorRegisteredData struct {
	To         string
	FullName   string
	BloodGroup string
	DonatedAt  time.Time
	TotalUnits int64
}

// SummaryDonor is one line of the daily summary.
type SummaryDonor struct {
	FullName   string
	BloodGroup string
	DonatedAt  time.Time
}

// DailySummaryData feeds the scheduled drive summary.
type DailySummaryData struct {
	To          string
	TotalUnits  int64
	LastUpdated time.Time
	Donors      []SummaryDonor
}

type EmailService interface {
	SendDonorRegisteredEmail(ctx context.Context, data DonorRegisteredData) error
	SendDailySummaryEmail(ctx context.Context, data DailySummaryData) error
}

type smtpEmailService struct {
	smtpAddr string
	smtpFrom string
}

// NewDevEmailService talks to a plain SMTP endpoint (mailhog/mailpit in
// development).
func NewDevEmailService(smtpHost, smtpPort, from string) EmailService {
	return &smtpEmailService{
		smtpAddr: smtpHost + ":" + smtpPort,
		smtpFrom: from,
	}
}

func (s *smtpEmailService) SendDonorRegisteredEmail(ctx context.Context, data DonorRegisteredData) error {
	subject := "New blood donor registered"
	body := fmt.Sprintf(`A new donor just signed up.

	Name:        %s
	Blood group: %s
	Registered:  %s

	Total units so far: %d`,
		data.FullName,
		data.BloodGroup,
		data.DonatedAt.Format(time.RFC1123),
		data.TotalUnits,
	)

	return s.send(data.To, subject, body)
}

func (s *smtpEmailService) SendDailySummaryEmail(ctx context.Context, data DailySummaryData) error {
	var lines []string
	for _, d := range data.Donors {
		lines = append(lines, fmt.Sprintf("	- %s (%s) at %s",
			d.FullName, d.BloodGroup, d.DonatedAt.Format("15:04 Jan 2")))
	}
	if len(lines) == 0 {
		lines = append(lines, "	(no donors yet)")
	}

	subject := "Blood drive daily summary"
	body := fmt.Sprintf(`Current drive status as of %s:

	Total units: %d

	Most recent donors:
%s`,
		data.LastUpdated.Format(time.RFC1123),
		data.TotalUnits,
		strings.Join(lines, "\n"),
	)

	return s.send(data.To, subject, body)
}

func (s *smtpEmailService) send(to, subject, body string) error {
	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.smtpFrom, to, subject, body))

	if err := smtp.SendMail(s.smtpAddr, nil, s.smtpFrom, []string{to}, msg); err != nil {
		log.Error().
			Err(err).
			Str("to", to).
			Str("smtp_addr", s.smtpAddr).
			Msg("Failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
