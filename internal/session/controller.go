package session

import (
	"context"
	"errors"
	"time"

	"gitlab.com/TitanInd/crowdfunding/internal/interfaces"
)

// DepsSource reports the current chain handle, wallet address and ABI definition
type DepsSource func() Deps

// Controller keeps the session derived from its deps and runs the automatic listing
type Controller struct {
	// config
	interval time.Duration

	// deps
	session *Session
	source  DepsSource
	log     interfaces.ILogger
}

func NewController(session *Session, source DepsSource, interval time.Duration, log interfaces.ILogger) *Controller {
	return &Controller{
		interval: interval,
		session:  session,
		source:   source,
		log:      log,
	}
}

// Run syncs the session every interval until ctx is cancelled, then resets it
func (c *Controller) Run(ctx context.Context) error {
	defer c.session.Reset()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		c.Sync(ctx)

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// Sync re-derives the session if the deps changed and triggers the automatic listing
func (c *Controller) Sync(ctx context.Context) {
	changed, err := c.session.Update(c.source())
	if changed && err != nil && !errors.Is(err, ErrSDKUnavailable) {
		c.log.Warnf("session derivation failed: %s", err)
	}
	if changed {
		c.log.Debugf("session re-derived, readiness %s", c.session.Readiness())
	}

	_, err = c.session.AutoFetch(ctx)
	if err != nil {
		c.log.Warnf("automatic campaign fetch failed, will retry: %s", err)
	}
}

var _ interfaces.Runnable = (*Controller)(nil)
