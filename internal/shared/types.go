package shared

import "time"

// Task type names, shared between the API (producer) and worker (consumer).
const (
	TypeDonorRegistered  = "donor:registered"
	TypeDailyStatsReport = "stats:daily_summary"
)

// Queue names
const (
	QueueDefault       = "default"
	QueueNotifications = "notifications"
)

// DonorRegisteredPayload is enqueued after each successful registration.
// Carries only the public donor fields.
type DonorRegisteredPayload struct {
	FullName   string    `json:"fullName"`
	BloodGroup string    `json:"bloodGroup"`
	DonatedAt  time.Time `json:"donatedAt"`
	TotalUnits int64     `json:"totalUnits"`
}

// DailyStatsReportPayload triggers the scheduled summary email.
// Empty on purpose; the handler reads current state when it runs.
type DailyStatsReportPayload struct{}
