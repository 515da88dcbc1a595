package core

import (
	"context"
	"time"
)

// Duration is an elapsed time as seen by the domain
type Duration time.Duration

// Std converts domain Duration to time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// TimeProvider abstracts time operations for the domain.
// Card expiry checks, transaction IDs and receipt timestamps all read Now from it.
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) Duration
	WithTimeout(ctx context.Context, timeout Duration) (context.Context, context.CancelFunc)
}
