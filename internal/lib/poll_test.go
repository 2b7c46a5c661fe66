package lib

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var errPoll = errors.New("not yet")

func TestPollSucceedsAfterRetries(t *testing.T) {
	calls := 0
	failures := 0
	err := Poll(context.Background(), 0, time.Millisecond, func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errPoll
		}
		return nil
	}, func(attempt int, err error) {
		failures++
	})

	require.NoError(t, err)
	require.Equal(t, 3, calls)
	require.Equal(t, 2, failures)
}

func TestPollBudgetElapsed(t *testing.T) {
	err := Poll(context.Background(), 20*time.Millisecond, 5*time.Millisecond, func(ctx context.Context) error {
		return errPoll
	}, nil)

	require.ErrorIs(t, err, errPoll)
}

func TestPollCancelled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := Poll(ctx, 0, 5*time.Millisecond, func(ctx context.Context) error {
		return errPoll
	}, nil)

	require.ErrorIs(t, err, context.DeadlineExceeded)
}
