package pathfs

import "github.com/minio/minio-go/v7"

// Entry describes one listing result: either a file-like object or a
// synthetic directory derived from a common prefix. Entries are snapshots;
// they are not updated after creation.
type Entry struct {
	// Name is the last path segment, never empty.
	Name string
	// IsDir marks entries synthesized from common prefixes.
	IsDir bool
	// Size in bytes. Zero for directories.
	Size int64
	// LastModified is the modification time in epoch seconds. Zero for
	// directories.
	LastModified int64
	// Raw is the vendor listing record, nil for directories. It is owned by
	// the storage SDK and carried only for pass-through.
	Raw *minio.ObjectInfo
}

// Blob is a snapshot of a stored object, not a live handle. Mutations act
// through the bucket it belongs to.
type Blob struct {
	// Bucket is a non-owning back-reference.
	Bucket *Bucket
	// Owner is the display name of the object owner, when the service
	// reports one.
	Owner string
	// Name is the full object key.
	Name string
	// Size in bytes.
	Size int64
	// Updated is the modification time in epoch seconds.
	Updated int64
	// Raw is the vendor object record.
	Raw *minio.ObjectInfo
}

func newBlob(b *Bucket, info minio.ObjectInfo) *Blob {
	return &Blob{
		Bucket:  b,
		Owner:   info.Owner.DisplayName,
		Name:    info.Key,
		Size:    info.Size,
		Updated: info.LastModified.Unix(),
		Raw:     &info,
	}
}
