package firestore

import (
	domainerrors "flint/internal/domain/errors"
	"flint/internal/errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// mapError classifies a Firestore error. NotFound becomes the repository
// sentinel for the entity, transient backend failures become the retryable
// storage error, and everything else is wrapped with the operation message.
func mapError(err error, notFound error, msg string) error {
	switch status.Code(err) {
	case codes.NotFound:
		return notFound
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted:
		return domainerrors.ErrStorage.WrapMessage(msg)
	}

	return errors.Wrap(err, msg)
}
