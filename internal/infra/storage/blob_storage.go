// Package storage implements profile photo storage on a gocloud blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"

	"flint/config"
	"flint/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Registered bucket schemes. gs:// for production, file:// and mem://
	// for development and tests.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

// blobStorage implements the service.MediaStorage interface on a blob bucket.
type blobStorage struct {
	bucket *blob.Bucket
}

// Params holds dependencies for media storage, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket, or nothing when media storage is not
// configured. Use cases treat a missing store as "photo upload disabled".
func New(params Params) (service.MediaStorage, error) {
	cfg := params.Config.Media
	if cfg == nil || cfg.BucketURL == "" {
		params.Logger.Info("Media bucket not configured, photo upload disabled")

		return nil, nil
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open media bucket %s", cfg.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return NewBlobStorage(bucket), nil
}

// NewBlobStorage wraps an open bucket as a MediaStorage.
func NewBlobStorage(bucket *blob.Bucket) service.MediaStorage {
	return &blobStorage{bucket: bucket}
}

// Save writes the object and returns the number of bytes stored.
func (s *blobStorage) Save(ctx context.Context, key, contentType string, r io.Reader) (int64, error) {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return 0, errors.Wrapf(err, "failed to open writer for %s", key)
	}

	written, err := io.Copy(writer, r)
	if err != nil {
		// The writer must still be closed to release the upload; the copy
		// error is the one worth reporting.
		_ = writer.Close()

		return 0, errors.Wrapf(err, "failed to write %s", key)
	}

	if err := writer.Close(); err != nil {
		return 0, errors.Wrapf(err, "failed to commit %s", key)
	}

	return written, nil
}

// Delete removes the object. Deleting a missing object is not an error.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}
