package checks

import (
	"context"
	"fmt"

	"wardrobe-manager/core/storage"

	"github.com/minio/minio-go/v7"
)

// CheckCatalog returns the published catalog objects missing from the bucket.
func CheckCatalog(ctx context.Context, client storage.Client, bucket string, objects []string) ([]string, error) {
	missing := []string{}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	for _, objectName := range objects {
		opts := minio.ListObjectsOptions{
			Prefix:    objectName,
			Recursive: false,
			MaxKeys:   1,
		}

		found := false
		for obj := range client.ListObjects(ctx, bucket, opts) {
			if obj.Err == nil && obj.Key == objectName {
				found = true
			}
			break
		}

		if !found {
			missing = append(missing, objectName)
		}
	}

	return missing, nil
}
