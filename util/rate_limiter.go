// api/util/rate_limiter.go

package util

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dev-anuragv/skillboard/api/db"
	board_errors "github.com/dev-anuragv/skillboard/api/errors"
	logger "github.com/dev-anuragv/skillboard/api/logging"
)

// RateLimiter counts requests per (endpoint, client) in fixed windows. The
// count relies on the store's atomic increment; the window expiry is set by
// whichever caller sees count 1. Unlike the cache, store failures here are
// surfaced: silently disabling limiting would defeat its purpose.
type RateLimiter struct {
	store db.KeyValueStore
}

func NewRateLimiter(store db.KeyValueStore) *RateLimiter {
	return &RateLimiter{store: store}
}

// Check admits or rejects one request. On rejection the returned
// *errors.RateLimitError carries the window's remaining TTL as RetryAfter.
func (rl *RateLimiter) Check(ctx context.Context, endpoint, clientID string, limit int64, window time.Duration) error {
	key := fmt.Sprintf("ratelimit:%s:%s", endpoint, clientID)

	count, err := rl.store.Incr(ctx, key)
	if err != nil {
		return fmt.Errorf("rate limit increment failed: %w", err)
	}
	if count == 1 {
		if err := rl.store.Expire(ctx, key, window); err != nil {
			return fmt.Errorf("rate limit window expiry failed: %w", err)
		}
	}

	if count > limit {
		retryAfter, err := rl.store.TTL(ctx, key)
		if err != nil {
			return fmt.Errorf("rate limit ttl lookup failed: %w", err)
		}
		// The key may have expired (or lost its TTL) between Incr and TTL;
		// the store reports that as a negative duration.
		if retryAfter < 0 {
			retryAfter = window
		}
		logger.Warn("Rate limit exceeded",
			zap.String("endpoint", endpoint),
			zap.String("client", clientID),
			zap.Int64("count", count),
			zap.Int64("limit", limit))
		return &board_errors.RateLimitError{RetryAfter: retryAfter}
	}

	logger.Debug("Rate limit check passed",
		zap.String("endpoint", endpoint),
		zap.String("client", clientID),
		zap.Int64("count", count),
		zap.Int64("limit", limit))
	return nil
}
