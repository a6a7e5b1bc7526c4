package firestore

import (
	"context"
	"log/slog"

	"flint/internal/domain/entity"
	"flint/internal/domain/repository"

	fsLib "cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const watchBuffer = 16

// matchWatcher streams match changes from Firestore snapshot listeners.
type matchWatcher struct {
	client *fsLib.Client
	logger *slog.Logger
}

// NewMatchWatcher is the constructor for matchWatcher.
func NewMatchWatcher(client *fsLib.Client, logger *slog.Logger) repository.MatchWatcher {
	return &matchWatcher{client: client, logger: logger}
}

// WatchUserMatches opens a snapshot listener on the user's matches and
// forwards document changes until ctx is canceled. The returned channel is
// closed when the listener stops.
func (w *matchWatcher) WatchUserMatches(ctx context.Context, userID string) (<-chan repository.MatchChange, error) {
	snapshots := w.client.Collection(colMatches).
		Where("users", "array-contains", userID).
		Snapshots(ctx)

	changes := make(chan repository.MatchChange, watchBuffer)

	go func() {
		defer close(changes)
		defer snapshots.Stop()

		for {
			snap, err := snapshots.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					w.logger.Error("match snapshot listener stopped",
						slog.String("user_id", userID),
						slog.Any("error", err))
				}

				return
			}

			for _, change := range snap.Changes {
				var match entity.Match
				if err := change.Doc.DataTo(&match); err != nil {
					w.logger.Warn("skipping undecodable match change",
						slog.String("doc_id", change.Doc.Ref.ID),
						slog.Any("error", err))

					continue
				}

				event := repository.MatchChange{
					Match:   &match,
					Deleted: change.Kind == fsLib.DocumentRemoved,
				}

				select {
				case changes <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return changes, nil
}
