package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"blooddrive-backend/internal/domains/donor/model"
	"blooddrive-backend/internal/domains/donor/service"
	"blooddrive-backend/internal/shared/response"
)

// =====================================================
// DONOR HANDLER
// =====================================================

type DonorHandler struct {
	donorService service.ServiceInterface
}

func NewDonorHandler(donorService service.ServiceInterface) *DonorHandler {
	return &DonorHandler{
		donorService: donorService,
	}
}

// Register accepts one donor submission from the public form.
// POST /api/donate
func (h *DonorHandler) Register(c *gin.Context) {
	// Step 1: Bind request body
	var req model.RegisterDonorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	// Step 2: Call service
	result, err := h.donorService.Register(c.Request.Context(), req)
	if err != nil {
		statusCode, message := mapDonorError(err)
		if statusCode >= http.StatusInternalServerError {
			log.Error().Err(err).Msg("Donor registration failed")
		}
		response.ErrorResponse(c, statusCode, message)
		return
	}

	// Step 3: Return created donor's public fields plus the new total
	response.Success(c, http.StatusCreated, result)
}

// ListRecent serves the recent-donors feed for polling dashboards.
// GET /api/donors?limit=N
func (h *DonorHandler) ListRecent(c *gin.Context) {
	limit := model.DefaultRecentLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			response.BadRequest(c, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	donors, err := h.donorService.ListRecent(c.Request.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list donors")
		response.InternalServerError(c, "Failed to load donors")
		return
	}

	response.Success(c, http.StatusOK, donors)
}

// mapDonorError translates service errors to HTTP status + user message.
func mapDonorError(err error) (int, string) {
	var donorErr *model.DonorError
	if errors.As(err, &donorErr) {
		switch donorErr.Code {
		case model.ErrCodeInvalidSubmission:
			return http.StatusBadRequest, donorErr.Message
		default:
			return http.StatusInternalServerError, donorErr.Message
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}
