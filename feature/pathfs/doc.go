// Package pathfs exposes an object-storage service through a
// filesystem-path-like interface.
//
// Object stores have a flat key namespace with no native directories. This
// package emulates a hierarchy on top of it: a Path addresses a bucket (the
// root) and an object key within it, directory entries are derived purely from
// the common-prefix groups a delimiter listing returns, and existence of a
// "directory" means at least one object key lives under it. Directory markers
// are never materialized or persisted.
//
// # Capability Set
//
// BucketClient is the interface callers program against:
//
//   - Exists: true iff the path names an object or a proper prefix of one.
//   - Scandir: lazy listing of the entries directly under a path, folding
//     deeper keys into synthetic directory entries.
//   - ListBlobs: lazy flat listing, one Blob per object, no folding.
//   - LookupBucket / GetBucket / CreateBucket / DeleteBucket / ListBuckets.
//   - MakeURI: renders a Path as an s3:// URI.
//
// Blob-level operations (GetBlob, CopyBlob, DeleteBlob, DeleteBlobs, Exists)
// live on Bucket. NewClient returns the implementation backed by
// core/storage; additional backends only need to satisfy BucketClient.
//
// # Error Policy
//
// Absence is not an error: lookups return nil and listings simply yield
// nothing. Client-class failures from the storage service are swallowed in
// existence checks, lookups, and listings — "cannot determine" collapses to
// "does not exist" — and are logged at Debug so they are not fully invisible.
// GetBucket is the exception: it propagates a ClientError, and reports a
// missing bucket through ErrBucketNotExist. No operation retries; retry
// policy belongs to the storage client underneath.
//
// # Laziness
//
// Scandir and ListBlobs return channels fed one page at a time; the next page
// is fetched only as the consumer drains the current one. Cancel the context
// to abandon a listing early.
package pathfs
