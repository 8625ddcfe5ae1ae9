// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the Client interface so that the wardrobe
// cache and the catalog publisher can be tested against core/storage/mocks.
// Both AWS S3 and self-hosted MinIO instances are supported.
//
// # Helpers
//
//   - EnsureBucket: creates the target bucket on first use.
//   - PutBytes: uploads an in-memory document.
//   - IsNotFound: recognises missing-object responses.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	err = storage.EnsureBucket(ctx, client, "assets")
package storage
