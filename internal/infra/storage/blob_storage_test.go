package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/memblob"
)

func newTestStorage(t *testing.T) (*blobStorage, *blob.Bucket) {
	t.Helper()

	bucket, err := blob.OpenBucket(context.Background(), "mem://")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, bucket.Close())
	})

	return &blobStorage{bucket: bucket}, bucket
}

func TestBlobStorage_SaveAndDelete(t *testing.T) {
	t.Parallel()

	storage, bucket := newTestStorage(t)
	ctx := context.Background()

	payload := "not really a jpeg"
	written, err := storage.Save(ctx, "profiles/alice/photo-1", "image/jpeg", strings.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, int64(len(payload)), written)

	stored, err := bucket.ReadAll(ctx, "profiles/alice/photo-1")
	require.NoError(t, err)
	assert.Equal(t, payload, string(stored))

	attrs, err := bucket.Attributes(ctx, "profiles/alice/photo-1")
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", attrs.ContentType)

	require.NoError(t, storage.Delete(ctx, "profiles/alice/photo-1"))

	exists, err := bucket.Exists(ctx, "profiles/alice/photo-1")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBlobStorage_DeleteMissingIsNoOp(t *testing.T) {
	t.Parallel()

	storage, _ := newTestStorage(t)

	assert.NoError(t, storage.Delete(context.Background(), "profiles/alice/nope"))
}
