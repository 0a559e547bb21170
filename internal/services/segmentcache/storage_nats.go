package segmentcache

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/nats-io/nats.go"
)

// NatsStorage implements StorageBackend on a NATS JetStream object
// store bucket. Metadata rides on the object itself, mirroring the
// index row, which makes the bucket usable standalone.
type NatsStorage struct {
	bucket string
	store  nats.ObjectStore
}

// NewNatsStorage creates or binds to the named object store bucket
func NewNatsStorage(js nats.JetStreamContext, bucketName string) (*NatsStorage, error) {
	store, err := js.CreateObjectStore(&nats.ObjectStoreConfig{
		Bucket:      bucketName,
		Description: fmt.Sprintf("Segment audio cache (%s)", bucketName),
		Storage:     nats.FileStorage,
		Replicas:    1,
	})
	if err != nil {
		if !errors.Is(err, nats.ErrStreamNameAlreadyInUse) {
			return nil, fmt.Errorf("failed to create object store bucket '%s': %w", bucketName, err)
		}
		store, err = js.ObjectStore(bucketName)
		if err != nil {
			return nil, fmt.Errorf("failed to bind to object store bucket '%s': %w", bucketName, err)
		}
	}

	return &NatsStorage{bucket: bucketName, store: store}, nil
}

// Save stores the object with its metadata attached
func (n *NatsStorage) Save(_ context.Context, name string, data []byte, metadata map[string]string) (string, error) {
	_, err := n.store.Put(&nats.ObjectMeta{
		Name:     name,
		Metadata: metadata,
	}, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to put object '%s' to bucket '%s': %w", name, n.bucket, err)
	}

	return name, nil
}

// Load retrieves the object bytes
func (n *NatsStorage) Load(_ context.Context, path string) ([]byte, error) {
	obj, err := n.store.Get(path)
	if err != nil {
		return nil, fmt.Errorf("failed to get object '%s' from bucket '%s': %w", path, n.bucket, err)
	}

	data, readErr := io.ReadAll(obj)
	closeErr := obj.Close()

	if readErr != nil {
		return nil, fmt.Errorf("failed to read object '%s': %w", path, readErr)
	}
	if closeErr != nil {
		return data, fmt.Errorf("failed to close object '%s': %w", path, closeErr)
	}

	return data, nil
}

// Delete removes the object from the bucket
func (n *NatsStorage) Delete(_ context.Context, path string) error {
	if err := n.store.Delete(path); err != nil && !errors.Is(err, nats.ErrObjectNotFound) {
		return fmt.Errorf("failed to delete object '%s' from bucket '%s': %w", path, n.bucket, err)
	}
	return nil
}

// Exists checks whether the object is present in the bucket
func (n *NatsStorage) Exists(_ context.Context, path string) (bool, error) {
	_, err := n.store.GetInfo(path)
	if err != nil {
		if errors.Is(err, nats.ErrObjectNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat object '%s': %w", path, err)
	}
	return true, nil
}
