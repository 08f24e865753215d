package storage

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ListPageOptions configures a single page request of a delimiter listing.
type ListPageOptions struct {
	// Prefix filters results to keys starting with this value.
	Prefix string
	// Delimiter groups deeper keys into common prefixes (e.g., "/").
	Delimiter string
	// ContinuationToken resumes listing from a previous ListPage.
	ContinuationToken string
	// MaxKeys limits the number of keys returned per page. Zero means the
	// service default.
	MaxKeys int
}

// ListPage is one page of results from a delimiter listing.
type ListPage struct {
	// Objects are the entries directly under the requested prefix.
	Objects []minio.ObjectInfo
	// CommonPrefixes are the immediate child prefixes, each ending with the
	// delimiter.
	CommonPrefixes []string
	// NextContinuationToken retrieves the next page. Empty on the last page.
	NextContinuationToken string
	// IsTruncated indicates whether more results are available.
	IsTruncated bool
}

// Client defines the interface for storage operations.
type Client interface {
	// BucketExists checks if a bucket exists.
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	// MakeBucket creates a new bucket.
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	// RemoveBucket deletes an empty bucket.
	RemoveBucket(ctx context.Context, bucketName string) error
	// ListBuckets lists all buckets owned by the authenticated user.
	ListBuckets(ctx context.Context) ([]minio.BucketInfo, error)
	// StatObject fetches the metadata of an object.
	StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
	// GetObject downloads an object.
	GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error)
	// PutObject uploads an object.
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	// CopyObject copies an object, possibly across buckets.
	CopyObject(ctx context.Context, dst minio.CopyDestOptions, src minio.CopySrcOptions) (minio.UploadInfo, error)
	// RemoveObject deletes an object from a bucket.
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
	// RemoveObjects deletes multiple objects from a bucket efficiently.
	// objectsCh is a channel of object names to delete.
	RemoveObjects(ctx context.Context, bucketName string, objectsCh <-chan minio.ObjectInfo, opts minio.RemoveObjectsOptions) <-chan minio.RemoveObjectError
	// ListObjectsPage fetches one page of a paginated object listing with
	// prefix/delimiter/continuation-token support.
	ListObjectsPage(ctx context.Context, bucketName string, opts ListPageOptions) (ListPage, error)
}

// NewClient creates a new Minio client based on the configuration.
func NewClient(cfg Config) (Client, error) {
	// Minio expects endpoint without scheme
	endpoint := strings.TrimPrefix(cfg.Endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")

	// Ensure timeout defaults if not set
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	// Create custom transport with strict timeouts
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	// The Core client exposes the raw paginated listing call on top of the
	// regular high-level API.
	core, err := minio.NewCore(endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &minioClientWrapper{core: core}, nil
}

type minioClientWrapper struct {
	core *minio.Core
}

func (c *minioClientWrapper) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	return c.core.Client.BucketExists(ctx, bucketName)
}

func (c *minioClientWrapper) MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
	return c.core.Client.MakeBucket(ctx, bucketName, opts)
}

func (c *minioClientWrapper) RemoveBucket(ctx context.Context, bucketName string) error {
	return c.core.Client.RemoveBucket(ctx, bucketName)
}

func (c *minioClientWrapper) ListBuckets(ctx context.Context) ([]minio.BucketInfo, error) {
	return c.core.Client.ListBuckets(ctx)
}

func (c *minioClientWrapper) StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error) {
	return c.core.Client.StatObject(ctx, bucketName, objectName, opts)
}

func (c *minioClientWrapper) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	return c.core.Client.GetObject(ctx, bucketName, objectName, opts)
}

func (c *minioClientWrapper) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	return c.core.Client.PutObject(ctx, bucketName, objectName, reader, objectSize, opts)
}

func (c *minioClientWrapper) CopyObject(ctx context.Context, dst minio.CopyDestOptions, src minio.CopySrcOptions) (minio.UploadInfo, error) {
	return c.core.Client.CopyObject(ctx, dst, src)
}

func (c *minioClientWrapper) RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error {
	return c.core.Client.RemoveObject(ctx, bucketName, objectName, opts)
}

func (c *minioClientWrapper) RemoveObjects(ctx context.Context, bucketName string, objectsCh <-chan minio.ObjectInfo, opts minio.RemoveObjectsOptions) <-chan minio.RemoveObjectError {
	return c.core.Client.RemoveObjects(ctx, bucketName, objectsCh, opts)
}

func (c *minioClientWrapper) ListObjectsPage(ctx context.Context, bucketName string, opts ListPageOptions) (ListPage, error) {
	// fetchOwner is set so listed objects carry owner information.
	res, err := c.core.ListObjectsV2(
		bucketName, opts.Prefix, "", opts.ContinuationToken, opts.Delimiter, opts.MaxKeys)
	if err != nil {
		return ListPage{}, err
	}

	page := ListPage{
		Objects:               res.Contents,
		NextContinuationToken: res.NextContinuationToken,
		IsTruncated:           res.IsTruncated,
	}
	for _, cp := range res.CommonPrefixes {
		page.CommonPrefixes = append(page.CommonPrefixes, cp.Prefix)
	}
	return page, nil
}
