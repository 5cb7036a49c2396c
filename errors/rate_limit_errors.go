// api/errors/rate_limit_errors.go
package errors

import (
	"fmt"
	"time"
)

// RateLimitError is returned when a fixed-window counter exceeds its limit.
// RetryAfter is the remaining lifetime of the current window.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded, retry after %s", e.RetryAfter)
}
