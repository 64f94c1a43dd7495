package model

import "time"

// =====================================================
// RESPONSE DTOs
// =====================================================

// StatsResponse is the payload of GET /api/stats.
type StatsResponse struct {
	TotalUnits  int64     `json:"totalUnits"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// SyncResponse is the payload of POST /api/sync-stats.
type SyncResponse struct {
	TotalUnits int64 `json:"totalUnits"`
}

func NewStatsResponse(stats *DriveStats) *StatsResponse {
	return &StatsResponse{
		TotalUnits:  stats.TotalUnits,
		LastUpdated: stats.LastUpdated,
	}
}
