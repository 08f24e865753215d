package browse

import (
	"context"

	"bucketpath/feature/pathfs"

	"go.uber.org/zap"
)

// EntryInfo is the JSON shape of one directory entry.
type EntryInfo struct {
	Name         string `json:"name"`
	IsDir        bool   `json:"is_dir"`
	Size         int64  `json:"size,omitempty"`
	LastModified int64  `json:"last_modified,omitempty"`
}

// BlobInfo is the JSON shape of one object record.
type BlobInfo struct {
	URI     string `json:"uri"`
	Name    string `json:"name"`
	Size    int64  `json:"size"`
	Updated int64  `json:"updated"`
	Owner   string `json:"owner,omitempty"`
}

// Service answers browse queries through the path capability set.
type Service struct {
	client pathfs.BucketClient
	logger *zap.Logger
}

// NewService creates a new browse service.
func NewService(client pathfs.BucketClient, logger *zap.Logger) *Service {
	return &Service{client: client, logger: logger}
}

// Buckets returns the names of all visible buckets.
func (s *Service) Buckets(ctx context.Context) ([]string, error) {
	buckets, err := s.client.ListBuckets(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(buckets))
	for _, b := range buckets {
		names = append(names, b.Name)
	}
	return names, nil
}

// Scandir collects the directory entries under path.
func (s *Service) Scandir(ctx context.Context, path pathfs.Path, prefix string) []EntryInfo {
	entries := make([]EntryInfo, 0)
	for e := range s.client.Scandir(ctx, path, prefix) {
		entries = append(entries, EntryInfo{
			Name:         e.Name,
			IsDir:        e.IsDir,
			Size:         e.Size,
			LastModified: e.LastModified,
		})
	}
	return entries
}

// Blobs collects the flat object records under path.
func (s *Service) Blobs(ctx context.Context, path pathfs.Path, opts pathfs.ListBlobsOptions) []BlobInfo {
	blobs := make([]BlobInfo, 0)
	for b := range s.client.ListBlobs(ctx, path, opts) {
		blobs = append(blobs, BlobInfo{
			URI:     s.client.MakeURI(pathfs.NewPath(b.Bucket.Name, b.Name)),
			Name:    b.Name,
			Size:    b.Size,
			Updated: b.Updated,
			Owner:   b.Owner,
		})
	}
	return blobs
}

// Exists checks whether path names an object or a directory-like prefix.
func (s *Service) Exists(ctx context.Context, path pathfs.Path) bool {
	return s.client.Exists(ctx, path)
}

// Stat fetches the metadata of the object at path. Absence yields nil without
// an error; a missing bucket surfaces as pathfs.ErrBucketNotExist.
func (s *Service) Stat(ctx context.Context, path pathfs.Path) (*BlobInfo, error) {
	bucket, err := s.client.GetBucket(ctx, path)
	if err != nil {
		return nil, err
	}
	blob, err := bucket.GetBlob(ctx, path.Key())
	if err != nil {
		return nil, err
	}
	if blob == nil {
		return nil, nil
	}
	return &BlobInfo{
		URI:     s.client.MakeURI(path),
		Name:    blob.Name,
		Size:    blob.Size,
		Updated: blob.Updated,
		Owner:   blob.Owner,
	}, nil
}
