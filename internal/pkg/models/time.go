package models

import (
	"time"
)

// Now returns the current time in UTC
func Now() time.Time {
	return time.Now().UTC()
}

// FormatTime formats a time.Time according to RFC3339
func FormatTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

// After reports whether a is strictly later than b, treating a nil b as the
// beginning of time.
func After(a time.Time, b *time.Time) bool {
	return b == nil || a.After(*b)
}
