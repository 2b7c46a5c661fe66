package session

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestSubmissionHistoryDropsOldest(t *testing.T) {
	history := NewSubmissionHistory(4)

	ids := make([]uuid.UUID, 6)
	for i := range ids {
		ids[i] = uuid.New()
		history.Add(Submission{ID: ids[i], Kind: SubmissionDonate})
	}

	items := history.Items()
	require.Len(t, items, 4)
	require.Equal(t, 4, history.Len())
	for i, item := range items {
		require.Equal(t, ids[i+2], item.ID)
	}
}
