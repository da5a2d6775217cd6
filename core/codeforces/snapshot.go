package codeforces

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"time"

	"upsolve-tracker/core/storage"

	"github.com/minio/minio-go/v7"
)

// SnapshotStore keeps the last good copy of a global dataset in object storage.
// It is read only when the API fails and the in-memory slot is empty.
type SnapshotStore struct {
	client storage.Client
	bucket string
	prefix string
}

type snapshot[T any] struct {
	SavedAt time.Time `json:"saved_at"`
	Data    T         `json:"data"`
}

// NewSnapshotStore creates a store writing under bucket/prefix.
func NewSnapshotStore(client storage.Client, bucket, prefix string) *SnapshotStore {
	return &SnapshotStore{client: client, bucket: bucket, prefix: prefix}
}

// ObjectName returns the object key used for a dataset.
func (s *SnapshotStore) ObjectName(name string) string {
	return path.Join(s.prefix, name+".json")
}

// SaveSnapshot writes v as the latest snapshot of the named dataset.
func SaveSnapshot[T any](ctx context.Context, s *SnapshotStore, name string, v T, savedAt time.Time) error {
	data, err := json.Marshal(snapshot[T]{SavedAt: savedAt, Data: v})
	if err != nil {
		return fmt.Errorf("failed to encode snapshot %s: %w", name, err)
	}

	_, err = s.client.PutObject(ctx, s.bucket, s.ObjectName(name), bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to upload snapshot %s: %w", name, err)
	}
	return nil
}

// LoadSnapshot reads the latest snapshot of the named dataset.
func LoadSnapshot[T any](ctx context.Context, s *SnapshotStore, name string) (T, time.Time, error) {
	var snap snapshot[T]

	obj, err := s.client.GetObject(ctx, s.bucket, s.ObjectName(name), minio.GetObjectOptions{})
	if err != nil {
		return snap.Data, time.Time{}, fmt.Errorf("failed to fetch snapshot %s: %w", name, err)
	}
	defer obj.Close()

	if err := json.NewDecoder(obj).Decode(&snap); err != nil {
		return snap.Data, time.Time{}, fmt.Errorf("failed to decode snapshot %s: %w", name, err)
	}
	return snap.Data, snap.SavedAt, nil
}
