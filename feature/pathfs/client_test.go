package pathfs_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"bucketpath/core/storage"
	"bucketpath/core/storage/mocks"
	"bucketpath/feature/pathfs"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient() (*pathfs.Client, *mocks.Client) {
	store := new(mocks.Client)
	return pathfs.NewClient(store, zap.NewNop()), store
}

func collectEntries(ch <-chan pathfs.Entry) []pathfs.Entry {
	var out []pathfs.Entry
	for e := range ch {
		out = append(out, e)
	}
	return out
}

func collectBlobs(ch <-chan *pathfs.Blob) []*pathfs.Blob {
	var out []*pathfs.Blob
	for b := range ch {
		out = append(out, b)
	}
	return out
}

func pageWithKeys(keys ...string) storage.ListPage {
	page := storage.ListPage{}
	for _, k := range keys {
		page.Objects = append(page.Objects, minio.ObjectInfo{
			Key:          k,
			Size:         10,
			LastModified: time.Unix(1700000000, 0),
		})
	}
	return page
}

func accessDenied() error {
	return minio.ErrorResponse{Code: "AccessDenied", Message: "access denied", StatusCode: 403}
}

func TestExists(t *testing.T) {
	t.Run("ExactKey", func(t *testing.T) {
		client, store := newTestClient()
		store.On("BucketExists", mock.Anything, "data").Return(true, nil)
		store.On("ListObjectsPage", mock.Anything, "data", mock.Anything).
			Return(pageWithKeys("reports/2024.csv"), nil)

		assert.True(t, client.Exists(context.Background(), pathfs.NewPath("data", "reports/2024.csv")))
	})

	t.Run("ProperPrefix", func(t *testing.T) {
		client, store := newTestClient()
		store.On("BucketExists", mock.Anything, "data").Return(true, nil)
		store.On("ListObjectsPage", mock.Anything, "data", mock.Anything).
			Return(pageWithKeys("reports/2024.csv"), nil)

		// "reports" is a parent of a stored key, so it exists as a directory.
		assert.True(t, client.Exists(context.Background(), pathfs.NewPath("data", "reports")))
	})

	t.Run("NoMatch", func(t *testing.T) {
		client, store := newTestClient()
		store.On("BucketExists", mock.Anything, "data").Return(true, nil)
		store.On("ListObjectsPage", mock.Anything, "data", mock.Anything).
			Return(pageWithKeys("reports2024.csv"), nil)

		// Neither an exact key nor followed by a separator.
		assert.False(t, client.Exists(context.Background(), pathfs.NewPath("data", "reports")))
	})

	t.Run("ClientErrorIsFalse", func(t *testing.T) {
		client, store := newTestClient()
		store.On("BucketExists", mock.Anything, "data").Return(true, nil)
		store.On("ListObjectsPage", mock.Anything, "data", mock.Anything).
			Return(storage.ListPage{}, accessDenied())

		assert.False(t, client.Exists(context.Background(), pathfs.NewPath("data", "reports")))
	})

	t.Run("BucketRoot", func(t *testing.T) {
		client, store := newTestClient()
		store.On("BucketExists", mock.Anything, "data").Return(true, nil)
		assert.True(t, client.Exists(context.Background(), pathfs.NewPath("data", "")))
	})

	t.Run("MissingBucketRoot", func(t *testing.T) {
		client, store := newTestClient()
		store.On("BucketExists", mock.Anything, "ghost").Return(false, nil)
		assert.False(t, client.Exists(context.Background(), pathfs.NewPath("ghost", "")))
	})

	t.Run("Rootless", func(t *testing.T) {
		client, _ := newTestClient()
		assert.False(t, client.Exists(context.Background(), pathfs.Path{}))
	})
}

func TestScandir(t *testing.T) {
	t.Run("RootlessListsBuckets", func(t *testing.T) {
		client, store := newTestClient()
		store.On("ListBuckets", mock.Anything).Return([]minio.BucketInfo{
			{Name: "alpha"}, {Name: "beta"},
		}, nil)

		// Prefix is ignored in bucket-listing mode.
		entries := collectEntries(client.Scandir(context.Background(), pathfs.Path{}, "ignored"))
		require.Len(t, entries, 2)
		assert.Equal(t, "alpha", entries[0].Name)
		assert.True(t, entries[0].IsDir)
		assert.Equal(t, "beta", entries[1].Name)
		assert.True(t, entries[1].IsDir)
	})

	t.Run("RootlessClientError", func(t *testing.T) {
		client, store := newTestClient()
		store.On("ListBuckets", mock.Anything).Return(nil, accessDenied())

		entries := collectEntries(client.Scandir(context.Background(), pathfs.Path{}, ""))
		assert.Empty(t, entries)
	})

	t.Run("MissingBucket", func(t *testing.T) {
		client, store := newTestClient()
		store.On("BucketExists", mock.Anything, "ghost").Return(false, nil)

		entries := collectEntries(client.Scandir(context.Background(), pathfs.NewPath("ghost", ""), ""))
		assert.Empty(t, entries)
	})

	t.Run("FoldsCommonPrefix", func(t *testing.T) {
		client, store := newTestClient()
		store.On("BucketExists", mock.Anything, "data").Return(true, nil)
		// Objects a/b.txt and a/c.txt fold into the single common prefix "a/".
		store.On("ListObjectsPage", mock.Anything, "data", mock.Anything).
			Return(storage.ListPage{CommonPrefixes: []string{"a/"}}, nil)

		entries := collectEntries(client.Scandir(context.Background(), pathfs.NewPath("data", ""), ""))
		require.Len(t, entries, 1)
		assert.Equal(t, "a", entries[0].Name)
		assert.True(t, entries[0].IsDir)
	})

	t.Run("NestedPrefixUsesLastSegment", func(t *testing.T) {
		client, store := newTestClient()
		store.On("BucketExists", mock.Anything, "data").Return(true, nil)
		store.On("ListObjectsPage", mock.Anything, "data", mock.Anything).
			Return(storage.ListPage{CommonPrefixes: []string{"a/b/"}}, nil)

		entries := collectEntries(client.Scandir(context.Background(), pathfs.NewPath("data", ""), "a/"))
		require.Len(t, entries, 1)
		assert.Equal(t, "b", entries[0].Name)
	})

	t.Run("FileEntry", func(t *testing.T) {
		client, store := newTestClient()
		store.On("BucketExists", mock.Anything, "data").Return(true, nil)
		store.On("ListObjectsPage", mock.Anything, "data", mock.Anything).
			Return(storage.ListPage{Objects: []minio.ObjectInfo{{
				Key:          "f.txt",
				Size:         42,
				LastModified: time.Unix(1700000000, 0),
			}}}, nil)

		entries := collectEntries(client.Scandir(context.Background(), pathfs.NewPath("data", ""), ""))
		require.Len(t, entries, 1)
		e := entries[0]
		assert.Equal(t, "f.txt", e.Name)
		assert.False(t, e.IsDir)
		assert.Equal(t, int64(42), e.Size)
		assert.Equal(t, int64(1700000000), e.LastModified)
		require.NotNil(t, e.Raw)
		assert.Equal(t, "f.txt", e.Raw.Key)
	})

	t.Run("DirsBeforeFilesWithinPage", func(t *testing.T) {
		client, store := newTestClient()
		store.On("BucketExists", mock.Anything, "data").Return(true, nil)
		store.On("ListObjectsPage", mock.Anything, "data", mock.Anything).
			Return(storage.ListPage{
				CommonPrefixes: []string{"sub/"},
				Objects:        []minio.ObjectInfo{{Key: "top.txt", LastModified: time.Unix(0, 0)}},
			}, nil)

		entries := collectEntries(client.Scandir(context.Background(), pathfs.NewPath("data", ""), ""))
		require.Len(t, entries, 2)
		assert.True(t, entries[0].IsDir)
		assert.Equal(t, "sub", entries[0].Name)
		assert.False(t, entries[1].IsDir)
		assert.Equal(t, "top.txt", entries[1].Name)
	})

	t.Run("PageErrorYieldsNothing", func(t *testing.T) {
		client, store := newTestClient()
		store.On("BucketExists", mock.Anything, "data").Return(true, nil)
		store.On("ListObjectsPage", mock.Anything, "data", mock.Anything).
			Return(storage.ListPage{}, accessDenied())

		entries := collectEntries(client.Scandir(context.Background(), pathfs.NewPath("data", ""), ""))
		assert.Empty(t, entries)
	})

	t.Run("AbandonedByCancel", func(t *testing.T) {
		client, store := newTestClient()
		store.On("BucketExists", mock.Anything, "data").Return(true, nil)
		store.On("ListObjectsPage", mock.Anything, "data", mock.Anything).
			Return(pageWithKeys("a.txt", "b.txt", "c.txt"), nil)

		ctx, cancel := context.WithCancel(context.Background())
		ch := client.Scandir(ctx, pathfs.NewPath("data", ""), "")
		<-ch
		cancel()
		// The producer stops; the channel closes without delivering the rest.
		for range ch {
		}
	})
}

func TestListBlobs(t *testing.T) {
	t.Run("TwoPageContinuation", func(t *testing.T) {
		client, store := newTestClient()
		store.On("BucketExists", mock.Anything, "data").Return(true, nil)

		first := pageWithKeys("a/one.txt", "a/two.txt")
		first.NextContinuationToken = "tok-1"
		first.IsTruncated = true
		store.On("ListObjectsPage", mock.Anything, "data", mock.MatchedBy(func(o storage.ListPageOptions) bool {
			return o.ContinuationToken == ""
		})).Return(first, nil)

		second := pageWithKeys("b/three.txt")
		store.On("ListObjectsPage", mock.Anything, "data", mock.MatchedBy(func(o storage.ListPageOptions) bool {
			return o.ContinuationToken == "tok-1"
		})).Return(second, nil)

		blobs := collectBlobs(client.ListBlobs(context.Background(), pathfs.NewPath("data", ""), pathfs.ListBlobsOptions{}))
		require.Len(t, blobs, 3)
		assert.Equal(t, "a/one.txt", blobs[0].Name)
		assert.Equal(t, "a/two.txt", blobs[1].Name)
		assert.Equal(t, "b/three.txt", blobs[2].Name)
	})

	t.Run("RecordFields", func(t *testing.T) {
		client, store := newTestClient()
		store.On("BucketExists", mock.Anything, "data").Return(true, nil)
		store.On("ListObjectsPage", mock.Anything, "data", mock.Anything).
			Return(storage.ListPage{Objects: []minio.ObjectInfo{{
				Key:          "nested/deep/file.bin",
				Size:         2048,
				LastModified: time.Unix(1700000000, 0),
				Owner:        minio.Owner{DisplayName: "svc-backup"},
			}}}, nil)

		blobs := collectBlobs(client.ListBlobs(context.Background(), pathfs.NewPath("data", ""), pathfs.ListBlobsOptions{}))
		require.Len(t, blobs, 1)
		b := blobs[0]
		// Full key, no directory folding.
		assert.Equal(t, "nested/deep/file.bin", b.Name)
		assert.Equal(t, int64(2048), b.Size)
		assert.Equal(t, int64(1700000000), b.Updated)
		assert.Equal(t, "svc-backup", b.Owner)
		require.NotNil(t, b.Bucket)
		assert.Equal(t, "data", b.Bucket.Name)
		require.NotNil(t, b.Raw)
	})

	t.Run("MissingBucket", func(t *testing.T) {
		client, store := newTestClient()
		store.On("BucketExists", mock.Anything, "ghost").Return(false, nil)

		blobs := collectBlobs(client.ListBlobs(context.Background(), pathfs.NewPath("ghost", ""), pathfs.ListBlobsOptions{}))
		assert.Empty(t, blobs)
	})

	t.Run("PageErrorYieldsNothing", func(t *testing.T) {
		client, store := newTestClient()
		store.On("BucketExists", mock.Anything, "data").Return(true, nil)
		store.On("ListObjectsPage", mock.Anything, "data", mock.Anything).
			Return(storage.ListPage{}, accessDenied())

		blobs := collectBlobs(client.ListBlobs(context.Background(), pathfs.NewPath("data", ""), pathfs.ListBlobsOptions{}))
		assert.Empty(t, blobs)
	})
}

func TestLookupBucket(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		client, store := newTestClient()
		store.On("BucketExists", mock.Anything, "data").Return(true, nil)

		b := client.LookupBucket(context.Background(), pathfs.NewPath("data", "any/key"))
		require.NotNil(t, b)
		assert.Equal(t, "data", b.Name)
	})

	t.Run("AbsentIsNil", func(t *testing.T) {
		client, store := newTestClient()
		store.On("BucketExists", mock.Anything, "ghost").Return(false, nil)
		assert.Nil(t, client.LookupBucket(context.Background(), pathfs.NewPath("ghost", "")))
	})

	t.Run("ClientErrorIsNil", func(t *testing.T) {
		client, store := newTestClient()
		store.On("BucketExists", mock.Anything, "data").Return(false, accessDenied())
		assert.Nil(t, client.LookupBucket(context.Background(), pathfs.NewPath("data", "")))
	})
}

func TestGetBucket(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		client, store := newTestClient()
		store.On("BucketExists", mock.Anything, "data").Return(true, nil)

		b, err := client.GetBucket(context.Background(), pathfs.NewPath("data", ""))
		require.NoError(t, err)
		assert.Equal(t, "data", b.Name)
	})

	t.Run("NotFound", func(t *testing.T) {
		client, store := newTestClient()
		store.On("BucketExists", mock.Anything, "ghost").Return(false, nil)

		_, err := client.GetBucket(context.Background(), pathfs.NewPath("ghost", ""))
		assert.ErrorIs(t, err, pathfs.ErrBucketNotExist)
	})

	t.Run("ClientError", func(t *testing.T) {
		client, store := newTestClient()
		store.On("BucketExists", mock.Anything, "data").Return(false, accessDenied())

		_, err := client.GetBucket(context.Background(), pathfs.NewPath("data", ""))
		var cerr *pathfs.ClientError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, 403, cerr.Code)
	})

	t.Run("Rootless", func(t *testing.T) {
		client, _ := newTestClient()
		_, err := client.GetBucket(context.Background(), pathfs.Path{})
		assert.ErrorIs(t, err, pathfs.ErrBucketNotExist)
	})
}

func TestCreateDeleteBucket(t *testing.T) {
	t.Run("Create", func(t *testing.T) {
		client, store := newTestClient()
		store.On("MakeBucket", mock.Anything, "fresh", mock.Anything).Return(nil)

		b, err := client.CreateBucket(context.Background(), pathfs.NewPath("fresh", ""))
		require.NoError(t, err)
		assert.Equal(t, "fresh", b.Name)
	})

	t.Run("CreateFails", func(t *testing.T) {
		client, store := newTestClient()
		store.On("MakeBucket", mock.Anything, "fresh", mock.Anything).Return(errors.New("denied"))

		_, err := client.CreateBucket(context.Background(), pathfs.NewPath("fresh", ""))
		assert.Error(t, err)
	})

	t.Run("Delete", func(t *testing.T) {
		client, store := newTestClient()
		store.On("BucketExists", mock.Anything, "old").Return(true, nil)
		store.On("RemoveBucket", mock.Anything, "old").Return(nil)

		assert.NoError(t, client.DeleteBucket(context.Background(), pathfs.NewPath("old", "")))
		store.AssertCalled(t, "RemoveBucket", mock.Anything, "old")
	})

	t.Run("DeleteMissing", func(t *testing.T) {
		client, store := newTestClient()
		store.On("BucketExists", mock.Anything, "ghost").Return(false, nil)

		err := client.DeleteBucket(context.Background(), pathfs.NewPath("ghost", ""))
		assert.ErrorIs(t, err, pathfs.ErrBucketNotExist)
	})
}

func TestListBuckets(t *testing.T) {
	t.Run("Order", func(t *testing.T) {
		client, store := newTestClient()
		store.On("ListBuckets", mock.Anything).Return([]minio.BucketInfo{
			{Name: "alpha"}, {Name: "beta"},
		}, nil)

		buckets, err := client.ListBuckets(context.Background())
		require.NoError(t, err)
		require.Len(t, buckets, 2)
		assert.Equal(t, "alpha", buckets[0].Name)
		assert.Equal(t, "beta", buckets[1].Name)
		require.NotNil(t, buckets[0].Raw)
	})

	t.Run("ClientError", func(t *testing.T) {
		client, store := newTestClient()
		store.On("ListBuckets", mock.Anything).Return(nil, accessDenied())

		_, err := client.ListBuckets(context.Background())
		var cerr *pathfs.ClientError
		assert.ErrorAs(t, err, &cerr)
	})
}

func TestMakeURI(t *testing.T) {
	client, _ := newTestClient()
	assert.Equal(t, "s3://data/a/b.txt", client.MakeURI(pathfs.NewPath("data", "a/b.txt")))
}
