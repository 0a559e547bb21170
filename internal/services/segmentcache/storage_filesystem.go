package segmentcache

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FilesystemStorage implements StorageBackend for local filesystem
// storage. Object metadata is not persisted here; the cache index row
// is the authoritative metadata record.
type FilesystemStorage struct {
	basePath string
}

// NewFilesystemStorage creates a new filesystem storage backend
func NewFilesystemStorage(basePath string) (*FilesystemStorage, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &FilesystemStorage{basePath: basePath}, nil
}

// Save writes the object under the base path. The write goes to a temp
// file first and is renamed into place so readers never observe a
// half-written object.
func (fs *FilesystemStorage) Save(ctx context.Context, name string, data []byte, _ map[string]string) (string, error) {
	fullPath := filepath.Join(fs.basePath, filepath.FromSlash(name))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(fullPath), ".segment_*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), fullPath); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to finalize file: %w", err)
	}

	return fullPath, nil
}

// Load reads the object bytes from disk
func (fs *FilesystemStorage) Load(ctx context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}

// Delete removes the object from disk
func (fs *FilesystemStorage) Delete(ctx context.Context, path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// Exists checks whether the object is present on disk
func (fs *FilesystemStorage) Exists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat file: %w", err)
	}
	return true, nil
}
