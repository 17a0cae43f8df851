package middleware

import (
	"net/http"

	"moviereview/internal/ratelimit"

	"github.com/gin-gonic/gin"
)

// RateLimit keys the quota on route and client IP. A nil limiter disables it.
func RateLimit(limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		key := c.FullPath() + ":" + c.ClientIP()
		if !limiter.Allow(key) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}

		c.Next()
	}
}
