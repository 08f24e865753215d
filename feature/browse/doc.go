// Package browse exposes the path layer over HTTP for read-only inspection.
//
// It is a thin JSON surface over pathfs.BucketClient: no mutation endpoints
// are registered, so it is safe to point at production buckets.
//
// # HTTP Endpoints
//
//   - GET /buckets : lists bucket names.
//   - GET /ls/:bucket/* : directory-style listing under the path, deeper keys
//     folded into directory entries.
//   - GET /blobs/:bucket : flat object listing (supports ?prefix= and
//     ?delimiter=).
//   - GET /exists/:bucket/* : existence check for the path.
//   - GET /stat/:bucket/* : metadata of a single object (404 when absent).
package browse
