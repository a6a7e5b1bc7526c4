package service

import (
	"context"
	"io"
)

// MediaStorage defines the interface for the delegated object store holding
// profile photos. Keys are opaque object paths.
type MediaStorage interface {
	// Save writes the object and returns the number of bytes stored.
	Save(ctx context.Context, key, contentType string, r io.Reader) (int64, error)

	// Delete removes the object. Deleting a missing object is not an error.
	Delete(ctx context.Context, key string) error
}
