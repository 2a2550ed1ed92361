package clock

import (
	"context"
	"fmt"
	"time"
)

// Retry calls fn up to attempts times, sleeping delay between failures.
// It returns the last error wrapped with the attempt count, or ctx.Err() when canceled while waiting.
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func(context.Context) error) error {
	if attempts < 1 {
		attempts = 1
	}
	var err error
	for i := 1; i <= attempts; i++ {
		if err = fn(ctx); err == nil {
			return nil
		}
		if i == attempts {
			break
		}
		if sleepErr := SleepWithContext(ctx, delay); sleepErr != nil {
			return sleepErr
		}
	}
	return fmt.Errorf("after %d attempts: %w", attempts, err)
}
