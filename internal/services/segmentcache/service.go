package segmentcache

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/strollcast/episode-api/internal/models"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
	storage    StorageBackend
	namespace  string
}

// NewService creates a new segment cache service
func NewService(repository Repository, storage StorageBackend, namespace string) Service {
	return &ServiceImpl{
		repository: repository,
		storage:    storage,
		namespace:  namespace,
	}
}

// objectName builds the storage object name for a cache key
func (s *ServiceImpl) objectName(key string) string {
	return s.namespace + "/" + key + ".mp3"
}

// Get retrieves a cached segment. Every failure mode is a miss: lookup
// errors, absent entries, storage read errors, and legacy entries with
// no recorded duration all return (nil, nil) so the caller regenerates.
func (s *ServiceImpl) Get(ctx context.Context, key string) (*Entry, error) {
	entry, err := s.repository.GetByKey(ctx, key)
	if err != nil {
		log.Printf("[WARN] Cache lookup failed for %s: %v", key, err)
		return nil, nil
	}
	if entry == nil {
		return nil, nil
	}

	if entry.DurationSeconds == nil {
		// Pre-migration entry: duration unknown. Serving it would leave
		// the episode timeline unmeasurable, so force regeneration.
		log.Printf("[WARN] Cache entry %s has no duration metadata, treating as miss", key)
		return nil, nil
	}

	audio, err := s.storage.Load(ctx, entry.StoragePath)
	if err != nil {
		log.Printf("[WARN] Cache read failed for %s: %v", key, err)
		return nil, nil
	}

	if err := s.repository.TouchLastUsed(ctx, entry.ID); err != nil {
		log.Printf("[WARN] Failed to update last used timestamp for %s: %v", key, err)
	}

	return &Entry{Audio: audio, Duration: *entry.DurationSeconds}, nil
}

// Put stores a synthesized segment. The bytes are written first and the
// index row second; if the index write fails the bytes are removed so a
// concurrent reader never sees a partially written entry.
func (s *ServiceImpl) Put(ctx context.Context, key string, audio []byte, duration float64) error {
	name := s.objectName(key)

	path, err := s.storage.Save(ctx, name, audio, map[string]string{
		"content-type": "audio/mpeg",
		"duration":     strconv.FormatFloat(duration, 'f', -1, 64),
	})
	if err != nil {
		return fmt.Errorf("failed to store segment audio: %w", err)
	}

	existing, err := s.repository.GetByKey(ctx, key)
	if err != nil {
		s.removeObject(ctx, path)
		return fmt.Errorf("failed to check existing cache entry: %w", err)
	}

	if existing != nil {
		existing.StoragePath = path
		existing.SizeBytes = int64(len(audio))
		existing.DurationSeconds = &duration
		if err := s.repository.Update(ctx, existing); err != nil {
			s.removeObject(ctx, path)
			return fmt.Errorf("failed to update cache index: %w", err)
		}
		return nil
	}

	segment := &models.CachedSegment{
		Key:             key,
		StoragePath:     path,
		SizeBytes:       int64(len(audio)),
		DurationSeconds: &duration,
	}
	if err := s.repository.Create(ctx, segment); err != nil {
		s.removeObject(ctx, path)
		return fmt.Errorf("failed to create cache index: %w", err)
	}

	return nil
}

func (s *ServiceImpl) removeObject(ctx context.Context, path string) {
	if err := s.storage.Delete(ctx, path); err != nil {
		log.Printf("[WARN] Failed to remove orphaned cache object %s: %v", path, err)
	}
}
