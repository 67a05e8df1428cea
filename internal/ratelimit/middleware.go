package ratelimit

import (
	"fmt"
	"net/http"

	"uplinepay/internal/observability"

	"github.com/gin-gonic/gin"
)

// Middleware creates a Gin middleware that limits requests per
// client IP. A limiter failure lets the request through.
func (s *Service) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		result, err := s.Check(ctx, c.ClientIP())
		if err != nil {
			s.logger.Warn(observability.WithFields(ctx,
				observability.Field{Key: "error", Value: err.Error()}),
				"rate limit check failed, allowing request")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetAt.Unix()))

		if !result.Allowed {
			c.Header("Retry-After", fmt.Sprintf("%d", result.RetryAfterMs/1000))
			s.logger.Warn(observability.WithFields(ctx,
				observability.Field{Key: "client_ip", Value: c.ClientIP()},
				observability.Field{Key: "limit", Value: result.Limit},
			), "rate limit exceeded")
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Rate limit exceeded",
				"code":        "RATE_LIMIT_EXCEEDED",
				"limit":       result.Limit,
				"retry_after": result.RetryAfterMs / 1000,
				"reset_at":    result.ResetAt.Unix(),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
