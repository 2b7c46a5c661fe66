package session

import (
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gammazero/deque"
	"github.com/google/uuid"
)

type SubmissionKind string

const (
	SubmissionCreateCampaign SubmissionKind = "createCampaign"
	SubmissionDonate         SubmissionKind = "donate"
)

// Submission is a write that reached the contract, confirmed or not
type Submission struct {
	ID        uuid.UUID      `json:"id"`
	Kind      SubmissionKind `json:"kind"`
	Campaign  *int           `json:"campaign,omitempty"`
	TxHash    *common.Hash   `json:"txHash,omitempty"`
	Confirmed bool           `json:"confirmed"`
	Error     string         `json:"error,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// SubmissionHistory keeps the most recent submissions. When the capacity is reached the
// oldest item is dropped. Backed by a ring buffer (deque) to avoid reallocations.
type SubmissionHistory struct {
	data  *deque.Deque[Submission]
	cap   int
	mutex sync.RWMutex
}

func NewSubmissionHistory(cap int) *SubmissionHistory {
	return &SubmissionHistory{
		data: deque.New[Submission](cap, cap),
		cap:  cap,
	}
}

func (h *SubmissionHistory) Add(item Submission) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if h.data.Len() >= h.cap {
		h.data.PopFront()
	}
	h.data.PushBack(item)
}

func (h *SubmissionHistory) Len() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return h.data.Len()
}

// Items returns the submissions, most recent last
func (h *SubmissionHistory) Items() []Submission {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	items := make([]Submission, h.data.Len())
	for i := 0; i < h.data.Len(); i++ {
		items[i] = h.data.At(i)
	}
	return items
}
