package service

import (
	"context"
	"time"
)

// LikeQuota tracks how many likes a user has spent against the daily limit.
// Counters are keyed by user and calendar day; the quota is a soft product
// limit, not a consistency guarantee.
type LikeQuota interface {
	// Used returns the number of likes consumed for the day key.
	Used(ctx context.Context, userID, dayKey string) (int, error)

	// Increment adds delta to the day counter and returns the new value.
	// The counter expires after ttl.
	Increment(ctx context.Context, userID, dayKey string, delta int, ttl time.Duration) (int, error)
}

// DayKey formats the quota day key for the given instant in UTC.
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
