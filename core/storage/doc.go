// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the Client interface, which covers the
// handful of operations the snapshot export needs: checking and creating the
// bucket, uploading, downloading, listing and removing objects. Both AWS S3
// and self-hosted MinIO work.
//
// The interface exists mostly so storage can be mocked in unit tests
// (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
