package pathfs

import (
	"context"
	"errors"
	"fmt"

	"bucketpath/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Bucket wraps a named container. Existence is checked lazily against the
// storage service, never cached.
type Bucket struct {
	// Name is the bucket name.
	Name string
	// Raw is the vendor bucket record, when the bucket came from a listing.
	Raw *minio.BucketInfo

	store  storage.Client
	logger *zap.Logger
}

func newBucket(store storage.Client, name string, logger *zap.Logger) *Bucket {
	return &Bucket{Name: name, store: store, logger: logger}
}

// GetBlob fetches a blob's metadata by key. A missing object, like any
// client-class failure, yields nil without an error.
func (b *Bucket) GetBlob(ctx context.Context, name string) (*Blob, error) {
	if name == "" {
		return nil, errors.New("blob name must not be empty")
	}
	info, err := b.store.StatObject(ctx, b.Name, name, minio.StatObjectOptions{})
	if err != nil {
		if cerr := asClientError(err); cerr != nil {
			if !isNotFound(err) {
				b.logger.Debug("stat object failed",
					zap.String("bucket", b.Name), zap.String("key", name), zap.Error(err))
			}
			return nil, nil
		}
		return nil, err
	}
	return newBlob(b, info), nil
}

// CopyBlob copies blob into target under the given name and returns the new
// blob's metadata. A vanished source yields nil without an error.
func (b *Bucket) CopyBlob(ctx context.Context, blob *Blob, target *Bucket, name string) (*Blob, error) {
	if blob == nil || blob.Raw == nil {
		return nil, errors.New("raw object record required")
	}
	_, err := b.store.CopyObject(ctx,
		minio.CopyDestOptions{Bucket: target.Name, Object: name},
		minio.CopySrcOptions{Bucket: b.Name, Object: blob.Name},
	)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("copy %s to %s/%s: %w", blob.Name, target.Name, name, err)
	}
	// Re-stat so the returned blob carries full metadata, not just the copy
	// acknowledgement.
	return target.GetBlob(ctx, name)
}

// DeleteBlob removes a single object by the blob's key.
func (b *Bucket) DeleteBlob(ctx context.Context, blob *Blob) error {
	return b.store.RemoveObject(ctx, b.Name, blob.Name, minio.RemoveObjectOptions{})
}

// DeleteBlobs removes a batch of objects through the bulk deletion call.
// The first per-object failure aborts the iteration.
func (b *Bucket) DeleteBlobs(ctx context.Context, blobs []*Blob) error {
	objectsCh := make(chan minio.ObjectInfo)
	go func() {
		defer close(objectsCh)
		for _, blob := range blobs {
			select {
			case objectsCh <- minio.ObjectInfo{Key: blob.Name}:
			case <-ctx.Done():
				return
			}
		}
	}()

	for rerr := range b.store.RemoveObjects(ctx, b.Name, objectsCh, minio.RemoveObjectsOptions{}) {
		if rerr.Err != nil {
			return fmt.Errorf("delete %s/%s: %w", b.Name, rerr.ObjectName, rerr.Err)
		}
	}
	return nil
}

// Exists reports whether the bucket exists. Client errors count as absent.
func (b *Bucket) Exists(ctx context.Context) bool {
	ok, err := b.store.BucketExists(ctx, b.Name)
	if err != nil {
		b.logger.Debug("bucket existence check failed",
			zap.String("bucket", b.Name), zap.Error(err))
		return false
	}
	return ok
}
