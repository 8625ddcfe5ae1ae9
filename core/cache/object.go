package cache

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"wardrobe-manager/core/storage"

	"github.com/minio/minio-go/v7"
)

// ObjectStore persists entries as JSON objects under <prefix>/cache/.
type ObjectStore struct {
	client storage.Client
	bucket string
	prefix string
}

// NewObjectStore creates a store writing below prefix in bucket.
func NewObjectStore(client storage.Client, bucket, prefix string) *ObjectStore {
	return &ObjectStore{
		client: client,
		bucket: bucket,
		prefix: path.Join(strings.Trim(prefix, "/"), "cache") + "/",
	}
}

// ObjectName maps a cache key to its object name.
func (s *ObjectStore) ObjectName(key string) string {
	return s.prefix + strings.ReplaceAll(key, ":", "_") + ".json"
}

func (s *ObjectStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.ObjectName(key), minio.GetObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get cache object: %w", err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		// minio reports a missing key on first read.
		if storage.IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read cache object: %w", err)
	}
	return data, true, nil
}

func (s *ObjectStore) Put(ctx context.Context, key string, data []byte) error {
	return storage.PutBytes(ctx, s.client, s.bucket, s.ObjectName(key), data, "application/json")
}

func (s *ObjectStore) Delete(ctx context.Context, key string) error {
	err := s.client.RemoveObject(ctx, s.bucket, s.ObjectName(key), minio.RemoveObjectOptions{})
	if err != nil && !storage.IsNotFound(err) {
		return fmt.Errorf("remove cache object: %w", err)
	}
	return nil
}

func (s *ObjectStore) Clear(ctx context.Context) error {
	var (
		errs    []error
		pending []minio.ObjectInfo
	)
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: s.prefix, Recursive: true}) {
		if obj.Err != nil {
			errs = append(errs, obj.Err)
			continue
		}
		pending = append(pending, obj)
	}
	if len(pending) == 0 {
		return errors.Join(errs...)
	}

	toRemove := make(chan minio.ObjectInfo, len(pending))
	for _, obj := range pending {
		toRemove <- obj
	}
	close(toRemove)

	for rErr := range s.client.RemoveObjects(ctx, s.bucket, toRemove, minio.RemoveObjectsOptions{}) {
		errs = append(errs, fmt.Errorf("remove %s: %w", rErr.ObjectName, rErr.Err))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("clear cache objects: %w", err)
	}
	return nil
}
