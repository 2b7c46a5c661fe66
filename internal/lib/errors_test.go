package lib

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

var errParent = errors.New("parent")

func TestWrapErrorMatchesBoth(t *testing.T) {
	err := WrapError(errParent, context.DeadlineExceeded)

	require.ErrorIs(t, err, errParent)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Equal(t, "parent: context deadline exceeded", err.Error())
}

func TestWrapErrorNested(t *testing.T) {
	inner := fmt.Errorf("rpc: %w", context.Canceled)
	err := fmt.Errorf("submit: %w", WrapError(errParent, inner))

	require.ErrorIs(t, err, errParent)
	require.ErrorIs(t, err, context.Canceled)
}
