package models

import (
	"time"
)

// CachedSegment is the index row for one cached synthesized segment.
// Audio bytes live in the storage backend; this row carries the
// metadata side-channel, most importantly the duration.
//
// DurationSeconds is a pointer: legacy entries written before duration
// tracking have no value and are deliberately treated as cache misses.
type CachedSegment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Key is the segment fingerprint this entry is addressed by
	Key string `gorm:"uniqueIndex;not null" json:"key"`

	// StoragePath is the backend-specific location of the audio bytes
	StoragePath string `gorm:"not null" json:"storage_path"`

	SizeBytes       int64    `json:"size_bytes"`
	DurationSeconds *float64 `json:"duration_seconds"`

	LastUsedAt time.Time `json:"last_used_at"`
}

// TableName returns the table name for the CachedSegment model
func (CachedSegment) TableName() string {
	return "cached_segments"
}
