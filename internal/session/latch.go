package session

import "go.uber.org/atomic"

// FetchLatch records that the automatic campaign listing already ran in this session.
// The owner may reset it to run the listing again.
type FetchLatch struct {
	fetched atomic.Bool
}

func (l *FetchLatch) Fetched() bool {
	return l.fetched.Load()
}

func (l *FetchLatch) MarkFetched() {
	l.fetched.Store(true)
}

func (l *FetchLatch) ResetFetched() {
	l.fetched.Store(false)
}
