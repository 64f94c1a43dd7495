package model

import "time"

// StatsKey identifies the single aggregate row. Exactly one row with this
// key exists after first access; the primary key enforces it.
const StatsKey = "global"

// DriveStats is the running total of registered donation units.
type DriveStats struct {
	ID          string    `json:"id"`
	TotalUnits  int64     `json:"total_units"`
	LastUpdated time.Time `json:"last_updated"`
}
