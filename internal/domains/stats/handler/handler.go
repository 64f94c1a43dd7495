package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"blooddrive-backend/internal/domains/stats/service"
	"blooddrive-backend/internal/shared/response"
)

// =====================================================
// STATS HANDLER
// =====================================================

type StatsHandler struct {
	statsService service.ServiceInterface
}

func NewStatsHandler(statsService service.ServiceInterface) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// GetStats returns the current running total for polling dashboards.
// GET /api/stats
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.statsService.GetStats(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to load stats")
		response.InternalServerError(c, "Failed to load stats")
		return
	}

	response.Success(c, http.StatusOK, stats)
}

// SyncStats recomputes the running total from the donor store.
// POST /api/sync-stats
func (h *StatsHandler) SyncStats(c *gin.Context) {
	result, err := h.statsService.Sync(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to sync stats")
		response.InternalServerError(c, "Failed to sync stats")
		return
	}

	response.Success(c, http.StatusOK, result)
}
