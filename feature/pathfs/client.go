package pathfs

import (
	"context"
	"fmt"
	"strings"

	"bucketpath/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ListBlobsOptions filters a flat blob listing.
type ListBlobsOptions struct {
	// Prefix restricts the listing to keys starting with this value.
	Prefix string
	// Delimiter, when set, makes the service fold deeper keys into common
	// prefixes, which a flat listing then omits.
	Delimiter string
}

// BucketClient is the capability set a storage backend exposes to the path
// layer. Callers program against this interface, never a concrete backend.
type BucketClient interface {
	// Exists reports whether path names an object or a proper prefix of one.
	Exists(ctx context.Context, path Path) bool
	// Scandir lazily yields the entries directly under path. A rootless path
	// yields one directory entry per bucket.
	Scandir(ctx context.Context, path Path, prefix string) <-chan Entry
	// ListBlobs lazily yields one blob per object, with no directory folding.
	ListBlobs(ctx context.Context, path Path, opts ListBlobsOptions) <-chan *Blob
	// LookupBucket resolves the path's root, nil when absent or unreachable.
	LookupBucket(ctx context.Context, path Path) *Bucket
	// GetBucket resolves the path's root, failing with ErrBucketNotExist or a
	// ClientError.
	GetBucket(ctx context.Context, path Path) (*Bucket, error)
	// CreateBucket creates the bucket named by the path's root.
	CreateBucket(ctx context.Context, path Path) (*Bucket, error)
	// DeleteBucket removes the bucket named by the path's root.
	DeleteBucket(ctx context.Context, path Path) error
	// ListBuckets returns all buckets visible to the session.
	ListBuckets(ctx context.Context) ([]*Bucket, error)
	// MakeURI renders the path as a URI string.
	MakeURI(path Path) string
}

// Client implements BucketClient on top of the core/storage collaborator.
type Client struct {
	store  storage.Client
	logger *zap.Logger
}

var _ BucketClient = (*Client)(nil)

// NewClient creates a path client over the given storage client.
func NewClient(store storage.Client, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{store: store, logger: logger}
}

// Exists reports whether the path denotes an exact object key or a proper
// prefix of at least one key. A bucket-root path reports the existence of the
// bucket itself. Client-class failures collapse to false.
func (c *Client) Exists(ctx context.Context, path Path) bool {
	if path.Root() == "" {
		return false
	}
	key := path.Key()
	if key == "" {
		bucket := c.LookupBucket(ctx, path)
		return bucket != nil
	}

	// Every parent of a stored key must exist, so candidate names matching
	// key+Sep as a prefix count as a hit too.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	for blob := range c.ListBlobs(ctx, path, ListBlobsOptions{Prefix: key}) {
		if blob.Name == key || strings.HasPrefix(blob.Name, key+Sep) {
			return true
		}
	}
	return false
}

// Scandir yields the entries directly under path, folding deeper keys into
// synthetic directory entries. Entries arrive in listing order: the common
// prefixes of a page before that page's objects, pages in fetch order. No
// sorting or deduplication is applied.
func (c *Client) Scandir(ctx context.Context, path Path, prefix string) <-chan Entry {
	out := make(chan Entry)
	go func() {
		defer close(out)

		if path.Root() == "" {
			infos, err := c.store.ListBuckets(ctx)
			if err != nil {
				c.logger.Debug("list buckets failed", zap.Error(err))
				return
			}
			for _, info := range infos {
				if !send(ctx, out, Entry{Name: info.Name, IsDir: true}) {
					return
				}
			}
			return
		}

		if c.LookupBucket(ctx, path) == nil {
			return
		}

		token := ""
		for {
			page, err := c.store.ListObjectsPage(ctx, path.Root(), storage.ListPageOptions{
				Prefix:            prefix,
				Delimiter:         Sep,
				ContinuationToken: token,
			})
			if err != nil {
				c.logger.Debug("scandir page fetch failed",
					zap.String("bucket", path.Root()), zap.Error(err))
				return
			}

			for _, folder := range page.CommonPrefixes {
				full := strings.TrimSuffix(folder, Sep)
				name := lastSegment(full)
				if name == "" {
					continue
				}
				if !send(ctx, out, Entry{Name: name, IsDir: true}) {
					return
				}
			}
			for _, item := range page.Objects {
				name := lastSegment(item.Key)
				if name == "" {
					continue
				}
				entry := Entry{
					Name:         name,
					Size:         item.Size,
					LastModified: item.LastModified.Unix(),
					Raw:          &item,
				}
				if !send(ctx, out, entry) {
					return
				}
			}

			if page.NextContinuationToken == "" {
				return
			}
			token = page.NextContinuationToken
		}
	}()
	return out
}

// ListBlobs yields one blob per object under the path's root, honoring the
// prefix and delimiter filters, continuing across pages in fetch order.
func (c *Client) ListBlobs(ctx context.Context, path Path, opts ListBlobsOptions) <-chan *Blob {
	out := make(chan *Blob)
	go func() {
		defer close(out)

		bucket := c.LookupBucket(ctx, path)
		if bucket == nil {
			return
		}

		token := ""
		for {
			page, err := c.store.ListObjectsPage(ctx, path.Root(), storage.ListPageOptions{
				Prefix:            opts.Prefix,
				Delimiter:         opts.Delimiter,
				ContinuationToken: token,
			})
			if err != nil {
				c.logger.Debug("blob listing page fetch failed",
					zap.String("bucket", path.Root()), zap.Error(err))
				return
			}

			for _, item := range page.Objects {
				if item.Key == "" {
					continue
				}
				if !send(ctx, out, newBlob(bucket, item)) {
					return
				}
			}

			if page.NextContinuationToken == "" {
				return
			}
			token = page.NextContinuationToken
		}
	}()
	return out
}

// LookupBucket resolves the path's root bucket, returning nil when it is
// absent or the check fails.
func (c *Client) LookupBucket(ctx context.Context, path Path) *Bucket {
	if path.Root() == "" {
		return nil
	}
	ok, err := c.store.BucketExists(ctx, path.Root())
	if err != nil {
		c.logger.Debug("bucket lookup failed",
			zap.String("bucket", path.Root()), zap.Error(err))
		return nil
	}
	if !ok {
		return nil
	}
	return newBucket(c.store, path.Root(), c.logger)
}

// GetBucket resolves the path's root bucket. Unlike LookupBucket it reports
// failures: ErrBucketNotExist for a missing bucket, ClientError when the
// service errors.
func (c *Client) GetBucket(ctx context.Context, path Path) (*Bucket, error) {
	if path.Root() == "" {
		return nil, fmt.Errorf("path %s has no bucket: %w", path, ErrBucketNotExist)
	}
	ok, err := c.store.BucketExists(ctx, path.Root())
	if err != nil {
		if cerr := asClientError(err); cerr != nil {
			return nil, cerr
		}
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("bucket %s: %w", path.Root(), ErrBucketNotExist)
	}
	return newBucket(c.store, path.Root(), c.logger), nil
}

// CreateBucket creates the bucket named by the path's root.
func (c *Client) CreateBucket(ctx context.Context, path Path) (*Bucket, error) {
	if err := c.store.MakeBucket(ctx, path.Root(), minio.MakeBucketOptions{}); err != nil {
		return nil, fmt.Errorf("create bucket %s: %w", path.Root(), err)
	}
	return newBucket(c.store, path.Root(), c.logger), nil
}

// DeleteBucket removes the bucket named by the path's root. The bucket is
// resolved first so a missing one surfaces as ErrBucketNotExist.
func (c *Client) DeleteBucket(ctx context.Context, path Path) error {
	if _, err := c.GetBucket(ctx, path); err != nil {
		return err
	}
	return c.store.RemoveBucket(ctx, path.Root())
}

// ListBuckets returns every bucket the session can see, in listing order.
func (c *Client) ListBuckets(ctx context.Context) ([]*Bucket, error) {
	infos, err := c.store.ListBuckets(ctx)
	if err != nil {
		if cerr := asClientError(err); cerr != nil {
			return nil, cerr
		}
		return nil, err
	}
	buckets := make([]*Bucket, 0, len(infos))
	for _, info := range infos {
		b := newBucket(c.store, info.Name, c.logger)
		b.Raw = &info
		buckets = append(buckets, b)
	}
	return buckets, nil
}

// MakeURI renders the path as an s3:// URI.
func (c *Client) MakeURI(path Path) string {
	return path.String()
}

// lastSegment returns the part of key after the final separator.
func lastSegment(key string) string {
	if i := strings.LastIndex(key, Sep); i >= 0 {
		return key[i+1:]
	}
	return key
}

// send delivers v unless the context is cancelled first.
func send[T any](ctx context.Context, out chan<- T, v T) bool {
	select {
	case out <- v:
		return true
	case <-ctx.Done():
		return false
	}
}
