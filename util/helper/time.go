package helper_util

import (
	"time"
)

// ParseTime parses an RFC3339 timestamp from a query parameter, falling back
// to def when the value is empty.
func ParseTime(s string, def time.Time) (time.Time, error) {
	if s == "" {
		return def, nil
	}
	return time.Parse(time.RFC3339, s)
}
