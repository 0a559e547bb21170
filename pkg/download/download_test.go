package download

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadToFile(t *testing.T) {
	payload := []byte("segment audio bytes")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Write(payload)
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "segment_0000.mp3")
	client := NewClient(DefaultOptions())

	written, err := client.DownloadToFile(context.Background(), server.URL, dest)
	require.NoError(t, err)
	assert.Equal(t, int64(len(payload)), written)

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestDownloadToFileSurfacesRemoteBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "signed URL expired", http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(DefaultOptions())
	_, err := client.DownloadToFile(context.Background(), server.URL, filepath.Join(t.TempDir(), "seg.mp3"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
	assert.Contains(t, err.Error(), "signed URL expired")
}

func TestDownloadToFileCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("data"))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(DefaultOptions())
	_, err := client.DownloadToFile(ctx, server.URL, filepath.Join(t.TempDir(), "seg.mp3"))
	assert.Error(t, err)
}

func TestDownloadToFileProgress(t *testing.T) {
	payload := make([]byte, 8192)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer server.Close()

	var lastDownloaded, lastTotal int64
	options := DefaultOptions()
	options.ProgressFunc = func(downloaded, total int64) {
		lastDownloaded = downloaded
		lastTotal = total
	}

	client := NewClient(options)
	_, err := client.DownloadToFile(context.Background(), server.URL, filepath.Join(t.TempDir(), "seg.mp3"))
	require.NoError(t, err)

	assert.Equal(t, int64(len(payload)), lastDownloaded)
	assert.Equal(t, int64(len(payload)), lastTotal)
}

func TestUpload(t *testing.T) {
	var gotBody []byte
	var gotContentType string
	var gotLength int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		gotContentType = r.Header.Get("Content-Type")
		gotLength = r.ContentLength
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		gotBody = body
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	src := filepath.Join(t.TempDir(), "episode.mp3")
	payload := []byte("finished episode")
	require.NoError(t, os.WriteFile(src, payload, 0644))

	client := NewClient(DefaultOptions())
	require.NoError(t, client.Upload(context.Background(), src, server.URL))

	assert.Equal(t, payload, gotBody)
	assert.Equal(t, "audio/mpeg", gotContentType)
	assert.Equal(t, int64(len(payload)), gotLength)
}

func TestUploadSurfacesRemoteBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bucket quota exceeded", http.StatusInsufficientStorage)
	}))
	defer server.Close()

	src := filepath.Join(t.TempDir(), "episode.mp3")
	require.NoError(t, os.WriteFile(src, []byte("x"), 0644))

	client := NewClient(DefaultOptions())
	err := client.Upload(context.Background(), src, server.URL)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bucket quota exceeded")
}

func TestUploadMissingFile(t *testing.T) {
	client := NewClient(DefaultOptions())
	err := client.Upload(context.Background(), filepath.Join(t.TempDir(), "missing.mp3"), "http://localhost:0")
	assert.Error(t, err)
}
