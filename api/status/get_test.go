package status

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strollcast/episode-api/api/types"
	"github.com/strollcast/episode-api/internal/services/assembly"
)

func newTestRouter(tracker *assembly.StatusTracker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router.Group("/api/v1/status"), &types.Dependencies{StatusTracker: tracker})
	return router
}

func TestGetIdle(t *testing.T) {
	router := newTestRouter(assembly.NewStatusTracker())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/status", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var status assembly.JobStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, assembly.StateIdle, status.State)
	assert.Empty(t, status.JobID)

	// Idle responses still carry every field.
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	for _, key := range []string{"state", "job_id", "started_at", "segments_total", "segments_downloaded", "last_error"} {
		assert.Contains(t, raw, key)
	}
	assert.Equal(t, "null", string(raw["started_at"]))
}

func TestGetProcessing(t *testing.T) {
	tracker := assembly.NewStatusTracker()
	tracker.Start("sheng-2023-flexgen_high_throug", 12)
	tracker.IncrementDownloaded()
	tracker.IncrementDownloaded()
	tracker.IncrementDownloaded()

	router := newTestRouter(tracker)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/status", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var status assembly.JobStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, assembly.StateProcessing, status.State)
	assert.Equal(t, "sheng-2023-flexgen_high_throug", status.JobID)
	assert.Equal(t, 12, status.SegmentsTotal)
	assert.Equal(t, 3, status.SegmentsDownloaded)
	assert.NotNil(t, status.StartedAt)
}

func TestGetError(t *testing.T) {
	tracker := assembly.NewStatusTracker()
	tracker.Start("job", 2)
	tracker.SetError("failed to download segment 1")

	router := newTestRouter(tracker)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/status", nil))

	var status assembly.JobStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, assembly.StateError, status.State)
	assert.Equal(t, "failed to download segment 1", status.LastError)
}

func TestPostNotAllowed(t *testing.T) {
	router := newTestRouter(assembly.NewStatusTracker())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/status", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
