// Package clock holds the waiting primitives the API uses while its dependencies come up.
package clock

import (
	"context"
	"time"
)

// SleepWithContext pauses between Retry attempts. It returns ctx.Err() as soon as
// ctx is done, and returns immediately for a non-positive d.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
