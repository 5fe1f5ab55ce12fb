package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixflow/internal/infrastructure/ratelimit"
	"fixflow/internal/shared/logger"
	"fixflow/internal/shared/utils"
)

// LookupRateLimit throttles the anonymous tracking endpoint per client IP.
// Keeping the lookup slow to probe is part of its anti-enumeration posture,
// so unlike other middleware this one fails closed when the limiter backend
// is unreachable.
func LookupRateLimit(limiter ratelimit.RateLimiter, config ratelimit.RateLimitConfig, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "lookup:" + c.ClientIP()

		allowed, err := limiter.Allow(key, config)
		if err != nil {
			log.Errorw("rate limiter unavailable", "key", key, "error", err)
			utils.ErrorResponse(c, http.StatusServiceUnavailable, "service temporarily unavailable")
			c.Abort()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
