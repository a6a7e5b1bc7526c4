package repository

import (
	"context"

	"flint/internal/domain/entity"
)

// MatchChange is one realtime change to a user's match set.
type MatchChange struct {
	Match   *entity.Match
	Deleted bool
}

// MatchWatcher streams changes to the matches a user participates in. The
// channel closes when ctx is canceled. Consumers (the badge stream) react to
// events; no shared mutable listener state.
type MatchWatcher interface {
	WatchUserMatches(ctx context.Context, userID string) (<-chan MatchChange, error)
}
