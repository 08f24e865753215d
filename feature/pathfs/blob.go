package pathfs

import "context"

// Delete removes the object behind this blob.
func (b *Blob) Delete(ctx context.Context) error {
	return b.Bucket.DeleteBlob(ctx, b)
}

// Exists reports whether the object behind this blob still exists. Client
// errors count as absent.
func (b *Blob) Exists(ctx context.Context) bool {
	blob, err := b.Bucket.GetBlob(ctx, b.Name)
	return err == nil && blob != nil
}
