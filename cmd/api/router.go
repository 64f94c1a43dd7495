package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blooddrive-backend/internal/shared/middleware"
	"blooddrive-backend/internal/shared/response"
	"blooddrive-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
		middleware.ClientIPMiddleware(),
	)

	api := router.Group("/api")
	{
		// Health check
		api.GET("/health", healthCheckHandler(c))

		setupDonationRoutes(api, c)
		setupStatsRoutes(api, c)
	}

	return router
}

// ========================================
// DONATION ROUTES
// ========================================
func setupDonationRoutes(api *gin.RouterGroup, c *container.Container) {
	registrationLimit := middleware.RegistrationRateLimit(
		c.Cache,
		c.Config.RateLimit.MaxRegistrations,
		c.Config.RateLimit.Window,
	)

	api.POST("/donate", registrationLimit, c.DonorHandler.Register)
	api.GET("/donors", c.DonorHandler.ListRecent)
}

// ========================================
// STATS ROUTES
// ========================================
func setupStatsRoutes(api *gin.RouterGroup, c *container.Container) {
	api.GET("/stats", c.StatsHandler.GetStats)
	api.POST("/sync-stats", c.StatsHandler.SyncStats)
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		dbStatus := "up"
		if err := c.DB.Ping(ctx.Request.Context()); err != nil {
			dbStatus = "down"
		}

		// Redis being down degrades rate limiting only, so it does not
		// flip the overall status
		redisStatus := "up"
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			redisStatus = "down"
		}

		payload := gin.H{
			"name":        c.Config.App.Name,
			"version":     c.Config.App.Version,
			"environment": c.Config.App.Environment,
			"database":    dbStatus,
			"redis":       redisStatus,
		}

		if dbStatus != "up" {
			response.ErrorResponse(ctx, http.StatusServiceUnavailable, "database unavailable")
			return
		}

		response.Success(ctx, http.StatusOK, payload)
	}
}
