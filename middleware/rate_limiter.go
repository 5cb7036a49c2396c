// api/middleware/rate_limiter.go

package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	board_errors "github.com/dev-anuragv/skillboard/api/errors"
	logger "github.com/dev-anuragv/skillboard/api/logging"
	"github.com/dev-anuragv/skillboard/api/util"
)

// ClientKeyFunc picks the identity a request is rate limited under. Which
// strategy fits is a per-route choice: plain client IP collides behind
// shared NAT, a header-based key needs a trustworthy upstream.
type ClientKeyFunc func(c *gin.Context) string

// ByClientIP keys the counter on the remote address.
func ByClientIP(c *gin.Context) string {
	return c.ClientIP()
}

// ByHeader keys the counter on a request header, falling back to the client
// IP when the header is absent.
func ByHeader(name string) ClientKeyFunc {
	return func(c *gin.Context) string {
		if v := c.GetHeader(name); v != "" {
			return v
		}
		return c.ClientIP()
	}
}

// RateLimit rejects requests over limit per window for one endpoint
// identity. It runs before the cache and auth stages: a rejected request
// never touches either.
func RateLimit(limiter *util.RateLimiter, endpoint string, limit int64, window time.Duration, clientKey ClientKeyFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		client := clientKey(c)

		err := limiter.Check(c.Request.Context(), endpoint, client, limit, window)

		c.Header("X-RateLimit-Limit", strconv.FormatInt(limit, 10))
		c.Header("X-RateLimit-Window", window.String())

		var limitErr *board_errors.RateLimitError
		if errors.As(err, &limitErr) {
			retryAfter := int(limitErr.RetryAfter.Seconds())
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"retry_after": retryAfter,
			})
			c.Abort()
			return
		}
		if err != nil {
			// The limiter is correctness-critical: a broken store must not
			// silently disable it.
			logger.Error("Rate limiting failed", zap.Error(err), zap.String("endpoint", endpoint), zap.String("client", client))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "rate limiting failed"})
			c.Abort()
			return
		}

		c.Next()
	}
}
