package assembly

import (
	"sync"
	"time"
)

// State describes what the assembly pipeline is currently doing
type State string

const (
	StateIdle       State = "idle"
	StateProcessing State = "processing"
	StateError      State = "error"
)

// JobStatus is a point-in-time view of the current assembly job.
// Every field is always serialized so the response shape is stable
// across states.
type JobStatus struct {
	State              State      `json:"state"`
	JobID              string     `json:"job_id"`
	StartedAt          *time.Time `json:"started_at"`
	SegmentsTotal      int        `json:"segments_total"`
	SegmentsDownloaded int        `json:"segments_downloaded"`
	LastError          string     `json:"last_error"`
}

// StatusTracker tracks assembly progress for the status endpoint.
// All reads go through Snapshot so callers never hold the lock.
type StatusTracker struct {
	mu     sync.RWMutex
	status JobStatus
}

// NewStatusTracker creates a tracker in the idle state
func NewStatusTracker() *StatusTracker {
	return &StatusTracker{
		status: JobStatus{State: StateIdle},
	}
}

// Start records the beginning of a job
func (t *StatusTracker) Start(jobID string, segmentsTotal int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	t.status = JobStatus{
		State:         StateProcessing,
		JobID:         jobID,
		StartedAt:     &now,
		SegmentsTotal: segmentsTotal,
	}
}

// IncrementDownloaded bumps the downloaded-segment counter
func (t *StatusTracker) IncrementDownloaded() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status.SegmentsDownloaded++
}

// SetError marks the job as failed, keeping its progress fields
func (t *StatusTracker) SetError(message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status.State = StateError
	t.status.LastError = message
}

// Reset returns the tracker to idle after a successful job
func (t *StatusTracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status = JobStatus{State: StateIdle}
}

// Snapshot returns a copy of the current status
func (t *StatusTracker) Snapshot() JobStatus {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.status
}
