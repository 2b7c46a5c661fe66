package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gitlab.com/TitanInd/crowdfunding/internal/lib"
)

// depsStore is a concurrency safe DepsSource for tests
type depsStore struct {
	mutex sync.Mutex
	deps  Deps
}

func (d *depsStore) Get() Deps {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.deps
}

func (d *depsStore) Set(deps Deps) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.deps = deps
}

func TestControllerSync(t *testing.T) {
	binder := &binderMock{}
	s := newTestSession(binder, &walletMock{})
	store := &depsStore{}
	ctrl := NewController(s, store.Get, time.Second, lib.NewTestLogger())

	ctrl.Sync(context.Background())
	require.Equal(t, ReadinessUninitialized, s.Readiness())

	deps := readyDeps()
	deps.Address = ""
	store.Set(deps)
	ctrl.Sync(context.Background())
	require.Equal(t, ReadinessLoading, s.Readiness())
	require.True(t, s.Latch().Fetched(), "read-only contract triggers the automatic listing")

	store.Set(readyDeps())
	ctrl.Sync(context.Background())
	require.Equal(t, ReadinessReady, s.Readiness())
	require.Equal(t, 2, binder.calledTimes)
	require.Equal(t, 0, binder.Last().GetCampaignsCalledTimes, "latch holds across re-derivations")
}

func TestControllerRunResetsOnExit(t *testing.T) {
	s := newTestSession(&binderMock{}, &walletMock{})
	store := &depsStore{}
	ctrl := NewController(s, store.Get, 5*time.Millisecond, lib.NewTestLogger())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- ctrl.Run(ctx)
	}()

	store.Set(readyDeps())

	err := lib.Poll(ctx, time.Second, 5*time.Millisecond, func(ctx context.Context) error {
		if s.Readiness() != ReadinessReady || !s.Latch().Fetched() {
			return errors.New("session is not ready yet")
		}
		return nil
	}, nil)
	require.NoError(t, err)

	cancel()
	require.NoError(t, <-errCh)
	require.Equal(t, ReadinessUninitialized, s.Readiness())
	require.False(t, s.Latch().Fetched())
}
