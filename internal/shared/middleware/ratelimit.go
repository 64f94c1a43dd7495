package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"blooddrive-backend/internal/shared/response"
	"blooddrive-backend/pkg/cache"
)

// RegistrationRateLimit caps donor registrations per client IP using a
// fixed redis window (INCR + EXPIRE). Fails open: when redis is down the
// request goes through rather than blocking signups.
func RegistrationRateLimit(store cache.Cache, maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.GetString("client_ip")
		if ip == "" {
			ip = c.ClientIP()
		}

		key := fmt.Sprintf("ratelimit:donate:%s", ip)

		count, err := store.Increment(c.Request.Context(), key)
		if err != nil {
			log.Warn().Err(err).Str("ip", ip).Msg("Rate limit check failed, allowing request")
			c.Next()
			return
		}

		// First hit in this window starts the clock
		if count == 1 {
			if err := store.Expire(c.Request.Context(), key, window); err != nil {
				log.Warn().Err(err).Str("key", key).Msg("Failed to set rate limit window")
			}
		}

		if count > int64(maxRequests) {
			log.Info().
				Str("ip", ip).
				Int64("count", count).
				Msg("Registration rate limit exceeded")

			response.TooManyRequests(c, "Too many registrations, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
