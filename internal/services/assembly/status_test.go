package assembly

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusTrackerLifecycle(t *testing.T) {
	tracker := NewStatusTracker()

	status := tracker.Snapshot()
	assert.Equal(t, StateIdle, status.State)
	assert.Nil(t, status.StartedAt)

	tracker.Start("vaswani-2017-attention_is_all_you", 3)
	status = tracker.Snapshot()
	assert.Equal(t, StateProcessing, status.State)
	assert.Equal(t, "vaswani-2017-attention_is_all_you", status.JobID)
	require.NotNil(t, status.StartedAt)
	assert.Equal(t, 3, status.SegmentsTotal)
	assert.Equal(t, 0, status.SegmentsDownloaded)

	tracker.IncrementDownloaded()
	tracker.IncrementDownloaded()
	assert.Equal(t, 2, tracker.Snapshot().SegmentsDownloaded)

	tracker.SetError("download failed")
	status = tracker.Snapshot()
	assert.Equal(t, StateError, status.State)
	assert.Equal(t, "download failed", status.LastError)
	assert.Equal(t, 2, status.SegmentsDownloaded)

	tracker.Reset()
	status = tracker.Snapshot()
	assert.Equal(t, StateIdle, status.State)
	assert.Empty(t, status.JobID)
	assert.Empty(t, status.LastError)
	assert.Equal(t, 0, status.SegmentsDownloaded)
}

func TestStatusTrackerConcurrentAccess(t *testing.T) {
	tracker := NewStatusTracker()
	tracker.Start("job", 100)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			tracker.IncrementDownloaded()
		}()
		go func() {
			defer wg.Done()
			_ = tracker.Snapshot()
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, tracker.Snapshot().SegmentsDownloaded)
}
