// Package segmentcache provides content-addressable storage for
// synthesized segment audio, keyed by segment fingerprint.
package segmentcache

import (
	"context"

	"github.com/strollcast/episode-api/internal/models"
)

// Entry is a cache hit: the audio bytes and their measured duration.
type Entry struct {
	Audio    []byte
	Duration float64
}

// Service defines the cache operations used by the synthesis pipeline.
// Get returns (nil, nil) for any miss, including entries that predate
// duration tracking; callers regenerate rather than guess a duration.
type Service interface {
	Get(ctx context.Context, key string) (*Entry, error)
	Put(ctx context.Context, key string, audio []byte, duration float64) error
}

// Repository defines the index persistence for cache entries
type Repository interface {
	// Create creates a new cache index row
	Create(ctx context.Context, segment *models.CachedSegment) error

	// GetByKey retrieves an index row by fingerprint, nil if absent
	GetByKey(ctx context.Context, key string) (*models.CachedSegment, error)

	// Update updates an existing index row
	Update(ctx context.Context, segment *models.CachedSegment) error

	// Delete removes an index row
	Delete(ctx context.Context, id uint) error

	// TouchLastUsed updates the last used timestamp
	TouchLastUsed(ctx context.Context, id uint) error
}

// StorageBackend stores segment audio bytes. Metadata travels with the
// object where the backend supports it (the index row remains the
// authoritative copy).
type StorageBackend interface {
	// Save stores the object and returns its backend path
	Save(ctx context.Context, name string, data []byte, metadata map[string]string) (string, error)

	// Load retrieves the object bytes
	Load(ctx context.Context, path string) ([]byte, error)

	// Delete removes the object
	Delete(ctx context.Context, path string) error

	// Exists checks whether the object is present
	Exists(ctx context.Context, path string) (bool, error)
}
