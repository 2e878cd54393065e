// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the Client interface so the snapshot
// feature can archive availability reports to AWS S3 or a self-hosted MinIO,
// and so tests can substitute the testify mock in core/storage/mocks.
//
// # Operations
//
//   - BucketExists / MakeBucket: verify or create the snapshot bucket (see EnsureBucket).
//   - PutObject: upload a report.
//   - GetObject: read a report back.
//   - ListObjects: enumerate reports under a prefix.
//   - RemoveObjects: prune old reports in bulk.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
