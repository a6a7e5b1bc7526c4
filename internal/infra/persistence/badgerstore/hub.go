package badgerstore

import (
	"context"
	"sync"

	"flint/internal/domain/repository"
)

const subscriberBuffer = 16

// watchHub fans match changes out to in-process subscribers. It stands in
// for Firestore's snapshot listeners when the embedded store is used.
type watchHub struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]*subscriber
}

type subscriber struct {
	userID  string
	changes chan repository.MatchChange
}

func newWatchHub() *watchHub {
	return &watchHub{subs: make(map[int]*subscriber)}
}

// subscribe registers a listener for one user's matches. The subscription
// ends and the channel closes when ctx is canceled.
func (h *watchHub) subscribe(ctx context.Context, userID string) <-chan repository.MatchChange {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	sub := &subscriber{
		userID:  userID,
		changes: make(chan repository.MatchChange, subscriberBuffer),
	}
	h.subs[id] = sub
	h.mu.Unlock()

	go func() {
		<-ctx.Done()
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subs, id)
		close(sub.changes)
	}()

	return sub.changes
}

// publish delivers a change to every subscriber watching one of its
// participants. A subscriber that has fallen a full buffer behind drops the
// change; the badge stream reseeds from the store on reconnect.
func (h *watchHub) publish(change repository.MatchChange) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, sub := range h.subs {
		if !change.Match.HasParticipant(sub.userID) {
			continue
		}

		select {
		case sub.changes <- change:
		default:
		}
	}
}

// matchWatcher adapts the hub to the repository.MatchWatcher interface.
type matchWatcher struct {
	hub *watchHub
}

// NewMatchWatcher is the constructor for matchWatcher.
func NewMatchWatcher(store *Store) repository.MatchWatcher {
	return &matchWatcher{hub: store.hub}
}

// WatchUserMatches subscribes to in-process match changes for the user.
func (w *matchWatcher) WatchUserMatches(ctx context.Context, userID string) (<-chan repository.MatchChange, error) {
	return w.hub.subscribe(ctx, userID), nil
}
