// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide a simplified interface for bucket
// management, object CRUD, and paginated listing. This abstraction supports
// both AWS S3 and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easier to mock storage interactions for unit testing (as seen in
// core/storage/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket / RemoveBucket / ListBuckets: bucket lifecycle.
//   - StatObject / GetObject / PutObject / CopyObject: object access.
//   - RemoveObject / RemoveObjects: single and bulk deletion.
//   - ListObjectsPage: one page of a prefix/delimiter listing with an opaque
//     continuation token, so callers can drive pagination themselves.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	page, err := client.ListObjectsPage(ctx, "assets", storage.ListPageOptions{
//		Prefix:    "images/",
//		Delimiter: "/",
//	})
package storage
