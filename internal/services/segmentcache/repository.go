package segmentcache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/strollcast/episode-api/internal/models"
	"gorm.io/gorm"
)

// GormRepository implements Repository backed by GORM
type GormRepository struct {
	db *gorm.DB
}

// NewRepository creates a new cache index repository
func NewRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// Create creates a new cache index row
func (r *GormRepository) Create(ctx context.Context, segment *models.CachedSegment) error {
	if err := r.db.WithContext(ctx).Create(segment).Error; err != nil {
		return fmt.Errorf("failed to create cache entry: %w", err)
	}
	return nil
}

// GetByKey retrieves an index row by fingerprint, nil if absent
func (r *GormRepository) GetByKey(ctx context.Context, key string) (*models.CachedSegment, error) {
	var segment models.CachedSegment
	err := r.db.WithContext(ctx).Where("key = ?", key).First(&segment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query cache entry: %w", err)
	}
	return &segment, nil
}

// Update updates an existing index row
func (r *GormRepository) Update(ctx context.Context, segment *models.CachedSegment) error {
	if err := r.db.WithContext(ctx).Save(segment).Error; err != nil {
		return fmt.Errorf("failed to update cache entry: %w", err)
	}
	return nil
}

// Delete removes an index row
func (r *GormRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.CachedSegment{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete cache entry: %w", err)
	}
	return nil
}

// TouchLastUsed updates the last used timestamp
func (r *GormRepository) TouchLastUsed(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.CachedSegment{}).
		Where("id = ?", id).
		Update("last_used_at", time.Now().UTC()).Error
}
