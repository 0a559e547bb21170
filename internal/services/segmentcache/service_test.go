package segmentcache

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/strollcast/episode-api/internal/database"
	"github.com/strollcast/episode-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (Service, *GormRepository, string) {
	t.Helper()

	db, err := database.Initialize(":memory:", false)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	dir := t.TempDir()
	storage, err := NewFilesystemStorage(dir)
	require.NoError(t, err)

	repo := NewRepository(db.DB)
	return NewService(repo, storage, "segments"), repo, dir
}

func TestCacheRoundTrip(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	audio := []byte{0xFF, 0xFB, 0x90, 0x01, 0x02, 0x03}
	require.NoError(t, svc.Put(ctx, "2/he/abc123_elevenlabs_hello", audio, 1.75))

	entry, err := svc.Get(ctx, "2/he/abc123_elevenlabs_hello")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, audio, entry.Audio)
	assert.Equal(t, 1.75, entry.Duration)
}

func TestCacheZeroDurationRoundTrip(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Put(ctx, "2/si/def456_elevenlabs_silence", []byte{0x00}, 0))

	entry, err := svc.Get(ctx, "2/si/def456_elevenlabs_silence")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, 0.0, entry.Duration)
}

func TestCacheMiss(t *testing.T) {
	svc, _, _ := newTestService(t)

	entry, err := svc.Get(context.Background(), "2/xx/0000_elevenlabs_missing")
	assert.NoError(t, err)
	assert.Nil(t, entry)
}

func TestCacheLegacyEntryIsMiss(t *testing.T) {
	svc, repo, dir := newTestService(t)
	ctx := context.Background()

	// Simulate a pre-migration entry: audio on disk, no duration recorded.
	storage, err := NewFilesystemStorage(dir)
	require.NoError(t, err)
	path, err := storage.Save(ctx, "segments/2/le/legacy.mp3", []byte{0x01}, nil)
	require.NoError(t, err)

	require.NoError(t, repo.Create(ctx, &models.CachedSegment{
		Key:         "2/le/legacykey",
		StoragePath: path,
		SizeBytes:   1,
	}))

	entry, err := svc.Get(ctx, "2/le/legacykey")
	assert.NoError(t, err)
	assert.Nil(t, entry, "legacy entries without duration must never be returned")
}

func TestCachePutOverwritesExisting(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Put(ctx, "2/ke/key", []byte{0x01}, 1.0))
	require.NoError(t, svc.Put(ctx, "2/ke/key", []byte{0x02, 0x03}, 2.0))

	entry, err := svc.Get(ctx, "2/ke/key")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, []byte{0x02, 0x03}, entry.Audio)
	assert.Equal(t, 2.0, entry.Duration)
}

func TestCacheMissWhenAudioBytesGone(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Put(ctx, "2/go/gone", []byte{0x01}, 1.0))

	entry, err := repo.GetByKey(ctx, "2/go/gone")
	require.NoError(t, err)
	require.NotNil(t, entry)

	storage, err := NewFilesystemStorage(filepath.Dir(entry.StoragePath))
	require.NoError(t, err)
	require.NoError(t, storage.Delete(ctx, entry.StoragePath))

	got, err := svc.Get(ctx, "2/go/gone")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

// failingRepo simulates an index write failure after bytes are stored
type failingRepo struct{}

func (f *failingRepo) Create(context.Context, *models.CachedSegment) error {
	return errors.New("index unavailable")
}

func (f *failingRepo) GetByKey(context.Context, string) (*models.CachedSegment, error) {
	return nil, nil
}

func (f *failingRepo) Update(context.Context, *models.CachedSegment) error {
	return errors.New("index unavailable")
}

func (f *failingRepo) Delete(context.Context, uint) error { return nil }

func (f *failingRepo) TouchLastUsed(context.Context, uint) error { return nil }

func TestCachePutLeavesNoOrphanOnIndexFailure(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewFilesystemStorage(dir)
	require.NoError(t, err)

	svc := NewService(&failingRepo{}, storage, "segments")

	err = svc.Put(context.Background(), "2/or/orphan", []byte{0x01}, 1.0)
	require.Error(t, err)

	// No audio object may remain visible after the failed put.
	var mp3s []string
	require.NoError(t, filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".mp3") {
			mp3s = append(mp3s, path)
		}
		return nil
	}))
	assert.Empty(t, mp3s)
}
