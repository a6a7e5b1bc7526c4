package usecase

import (
	"context"

	"flint/internal/domain/entity"
)

// MatchWithUnread bundles a match with the viewer's unread flag.
type MatchWithUnread struct {
	*entity.Match
	Unread bool `json:"unread"`
}

// MatchUsecase derives mutual-match state from like sets and keeps the
// persisted match records consistent with it.
type MatchUsecase interface {
	// Reconcile makes the stored match state for the pair (a, b) agree with
	// the current like sets: creates the match when mutual like first holds,
	// deletes it when mutual like no longer holds, does nothing otherwise.
	// Idempotent. Duplicate records for the pair are collapsed to the oldest
	// and reported as a data integrity fault.
	Reconcile(ctx context.Context, userA, userB string) error

	// MarkRead flips the viewer's read flag on the match to true, leaving
	// the other participant's flag untouched.
	MarkRead(ctx context.Context, matchID, userID string) error

	// ListMatches returns the user's matches with their unread flags.
	ListMatches(ctx context.Context, userID string) ([]*MatchWithUnread, error)

	// HasUnread reports whether any of the user's matches is unread.
	HasUnread(ctx context.Context, userID string) (bool, error)

	// WatchBadge streams the user's unread-badge state; a value is emitted
	// on every change to the user's match set. The channel closes when ctx
	// is canceled.
	WatchBadge(ctx context.Context, userID string) (<-chan bool, error)
}

// IsUnread reports whether the match is unread for userID: true when the
// read flag is absent or false.
func IsUnread(match *entity.Match, userID string) bool {
	if match == nil || match.IsRead == nil {
		return true
	}

	return !match.IsRead[userID]
}
