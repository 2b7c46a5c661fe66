package lib

import (
	"context"
	"time"
)

// Poll calls f until it succeeds, the budget elapses or ctx is cancelled. A zero budget
// polls until ctx is done. onErr, if set, observes every failed attempt.
func Poll(ctx context.Context, budget time.Duration, interval time.Duration, f func(ctx context.Context) error, onErr func(attempt int, err error)) error {
	start := time.Now()

	for attempt := 1; ; attempt++ {
		err := f(ctx)
		if err == nil {
			return nil
		}
		if onErr != nil {
			onErr(attempt, err)
		}
		if budget > 0 && time.Since(start)+interval > budget {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
}
