package usecase

import (
	"context"
)

// LikeUsecase defines the interface for like/unlike use cases. It is the
// only writer of the like edges on profile documents.
type LikeUsecase interface {
	// SetLike sets or clears the directed like edge liker -> liked. Both
	// sides of the edge (the liker's outgoing set and the target's incoming
	// set) change together in one store transaction. When the requested
	// state already holds the call is a no-op, not an error. Match
	// reconciliation for the pair runs as the final step of every
	// state-changing call.
	SetLike(ctx context.Context, likerID, likedID string, isLiking bool) error

	// ListLikes returns the IDs of users likerID has liked.
	ListLikes(ctx context.Context, userID string) ([]string, error)

	// ListLikedBy returns the IDs of users who liked userID.
	ListLikedBy(ctx context.Context, userID string) ([]string, error)
}
