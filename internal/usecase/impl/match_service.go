package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	deliverycontext "flint/internal/delivery/context"
	"flint/internal/domain/entity"
	domainerrors "flint/internal/domain/errors"
	"flint/internal/domain/repository"
	"flint/internal/domain/service"
	"flint/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// matchService implements the MatchUsecase interface.
type matchService struct {
	txManager       repository.TransactionManager
	matchRepo       repository.MatchRepository
	deviceRepo      repository.DeviceRepository
	watcher         repository.MatchWatcher
	notificationSvc service.NotificationService
	publisher       service.EventPublisher
	logger          *slog.Logger
	now             func() time.Time
}

// MatchServiceParams holds dependencies for matchService, injected by Fx.
type MatchServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	MatchRepo       repository.MatchRepository
	DeviceRepo      repository.DeviceRepository
	Watcher         repository.MatchWatcher       `optional:"true"`
	NotificationSvc service.NotificationService   `optional:"true"`
	Publisher       service.EventPublisher        `optional:"true"`
	Logger          *slog.Logger
}

// NewMatchService is the constructor for matchService.
func NewMatchService(params MatchServiceParams) usecase.MatchUsecase {
	return &matchService{
		txManager:       params.TxManager,
		matchRepo:       params.MatchRepo,
		deviceRepo:      params.DeviceRepo,
		watcher:         params.Watcher,
		notificationSvc: params.NotificationSvc,
		publisher:       params.Publisher,
		logger:          params.Logger,
		now:             time.Now,
	}
}

func (srv *matchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// reconcileOutcome records what one reconciliation run did, so that events
// and pushes fire only after the transaction has committed.
type reconcileOutcome struct {
	created    *entity.Match
	deletedIDs []string

	// ended is true when the pair's match ceased to exist, as opposed to
	// duplicate records being pruned while the match survives.
	ended          bool
	integrityFault bool
}

// Reconcile makes the stored match state for the pair agree with the current
// like sets. All reads happen before any write inside the transaction.
func (srv *matchService) Reconcile(ctx context.Context, userA, userB string) error {
	if userA == userB {
		return domainerrors.ErrValidationFailed.WrapMessage("cannot reconcile a pair with itself")
	}

	var outcome reconcileOutcome
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		matchRepo := repoFactory.MatchRepo()

		first, err := userRepo.FindByID(ctx, userA)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("reconcile: first user missing")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find first user")
		}

		second, err := userRepo.FindByID(ctx, userB)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("reconcile: second user missing")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find second user")
		}

		records, err := matchRepo.FindByPair(ctx, userA, userB)
		if err != nil {
			return errors.Wrap(err, "failed to find matches for pair")
		}

		mutual := first.HasLiked(userB) && second.HasLiked(userA)

		return srv.applyReconciliation(ctx, matchRepo, userA, userB, mutual, records, &outcome)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute match reconciliation",
			slog.String("pair", entity.PairKey(userA, userB)), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute match reconciliation transaction")
	}

	srv.afterReconcile(ctx, userA, userB, &outcome)

	if outcome.integrityFault {
		srv.log(ctx).Error("Repaired duplicate match records",
			slog.String("pair", entity.PairKey(userA, userB)),
			slog.Int("deleted", len(outcome.deletedIDs)))

		return domainerrors.ErrMatchIntegrity.WrapMessage("duplicate match records repaired")
	}

	return nil
}

// applyReconciliation decides and applies the writes for one pair. The store
// state converges to: exactly one match iff the likes are mutual.
func (srv *matchService) applyReconciliation(
	ctx context.Context,
	matchRepo repository.MatchRepository,
	userA, userB string,
	mutual bool,
	records []*entity.Match,
	outcome *reconcileOutcome,
) error {
	if !mutual {
		for _, record := range records {
			if err := matchRepo.Delete(ctx, record.ID); err != nil {
				return errors.Wrap(err, "failed to delete stale match")
			}
			outcome.deletedIDs = append(outcome.deletedIDs, record.ID)
		}
		outcome.ended = len(records) > 0
		outcome.integrityFault = len(records) > 1

		return nil
	}

	switch len(records) {
	case 0:
		match := entity.NewMatch(userA, userB, srv.now())
		if err := matchRepo.Create(ctx, match); err != nil {
			return errors.Wrap(err, "failed to create match")
		}
		outcome.created = match

		return nil
	case 1:
		return nil
	default:
		// Duplicate records for one pair: keep the oldest, drop the rest.
		sort.Slice(records, func(i, j int) bool {
			if records[i].CreatedAt.Equal(records[j].CreatedAt) {
				return records[i].ID < records[j].ID
			}

			return records[i].CreatedAt.Before(records[j].CreatedAt)
		})
		for _, stale := range records[1:] {
			if err := matchRepo.Delete(ctx, stale.ID); err != nil {
				return errors.Wrap(err, "failed to delete duplicate match")
			}
			outcome.deletedIDs = append(outcome.deletedIDs, stale.ID)
		}
		outcome.integrityFault = true

		return nil
	}
}

// afterReconcile publishes events and pushes for a committed outcome.
// Failures here never undo the reconciliation; they are logged and dropped.
func (srv *matchService) afterReconcile(ctx context.Context, userA, userB string, outcome *reconcileOutcome) {
	if outcome.created != nil {
		srv.publishEvent(ctx, service.MatchEventCreated, outcome.created.ID, userA, userB)
		srv.notifyMatched(ctx, outcome.created)
	}

	// Deletion is announced whenever the match actually ended, duplicate
	// repair included; pruning duplicates of a live match announces nothing.
	if outcome.ended {
		srv.publishEvent(ctx, service.MatchEventDeleted, entity.PairKey(userA, userB), userA, userB)
	}
}

func (srv *matchService) publishEvent(ctx context.Context, kind, matchID, userA, userB string) {
	if srv.publisher == nil {
		return
	}

	if userB < userA {
		userA, userB = userB, userA
	}

	event := &service.MatchEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Kind:       kind,
		MatchID:    matchID,
		Users:      [2]string{userA, userB},
		OccurredAt: srv.now(),
	}
	if err := srv.publisher.PublishMatchEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish match event",
			slog.String("kind", kind), slog.String("matchID", matchID), slog.Any("error", err))
	}
}

// notifyMatched pushes the "it's a match" notification to both participants.
func (srv *matchService) notifyMatched(ctx context.Context, match *entity.Match) {
	if srv.notificationSvc == nil {
		return
	}

	for _, userID := range match.Users {
		devices, err := srv.deviceRepo.FindByUser(ctx, userID)
		if err != nil {
			srv.log(ctx).Warn("Failed to fetch devices for match push",
				slog.String("userID", userID), slog.Any("error", err))

			continue
		}
		if len(devices) == 0 {
			continue
		}

		tokens := make([]string, 0, len(devices))
		for _, device := range devices {
			tokens = append(tokens, device.FCMToken)
		}

		data := map[string]string{
			"match_id": match.ID,
			"kind":     service.MatchEventCreated,
		}
		_, _, invalidTokens, err := srv.notificationSvc.SendBatchNotification(
			ctx, tokens, "新的配對", fmt.Sprintf("你和 %s 互相喜歡了對方！", match.Other(userID)), data)
		if err != nil {
			srv.log(ctx).Warn("Failed to send match push",
				slog.String("userID", userID), slog.Any("error", err))

			continue
		}

		if len(invalidTokens) > 0 {
			if err := srv.deviceRepo.RemoveTokens(ctx, userID, invalidTokens); err != nil {
				srv.log(ctx).Warn("Failed to remove invalid tokens",
					slog.String("userID", userID), slog.Any("error", err))
			}
		}
	}
}

// MarkRead flips the viewer's read flag to true.
func (srv *matchService) MarkRead(ctx context.Context, matchID, userID string) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		matchRepo := repoFactory.MatchRepo()

		match, err := matchRepo.FindByID(ctx, matchID)
		if errors.Is(err, repository.ErrMatchNotFound) {
			return domainerrors.ErrMatchNotFound.WrapMessage("mark read")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find match")
		}

		if !match.HasParticipant(userID) {
			return domainerrors.ErrNotMatchParticipant.WrapMessage("mark read")
		}

		if match.IsRead[userID] {
			return nil
		}

		if match.IsRead == nil {
			match.IsRead = make(map[string]bool, 2)
		}
		match.IsRead[userID] = true

		return errors.Wrap(matchRepo.Save(ctx, match), "failed to save match")
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute mark read transaction")
	}

	return nil
}

// ListMatches returns the user's matches with unread flags attached.
func (srv *matchService) ListMatches(ctx context.Context, userID string) ([]*usecase.MatchWithUnread, error) {
	matches, err := srv.matchRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find matches by user")
	}

	result := make([]*usecase.MatchWithUnread, 0, len(matches))
	for _, match := range matches {
		result = append(result, &usecase.MatchWithUnread{
			Match:  match,
			Unread: usecase.IsUnread(match, userID),
		})
	}

	return result, nil
}

// HasUnread reports whether any of the user's matches is unread.
func (srv *matchService) HasUnread(ctx context.Context, userID string) (bool, error) {
	matches, err := srv.matchRepo.FindByUser(ctx, userID)
	if err != nil {
		return false, errors.Wrap(err, "failed to find matches by user")
	}

	for _, match := range matches {
		if usecase.IsUnread(match, userID) {
			return true, nil
		}
	}

	return false, nil
}

// WatchBadge streams the unread-badge state, recomputed on every change to
// the user's match set.
func (srv *matchService) WatchBadge(ctx context.Context, userID string) (<-chan bool, error) {
	if srv.watcher == nil {
		return nil, errors.New("match watcher is not configured")
	}

	changes, err := srv.watcher.WatchUserMatches(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to watch user matches")
	}

	matches, err := srv.matchRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find matches by user")
	}

	state := make(map[string]*entity.Match, len(matches))
	for _, match := range matches {
		state[match.ID] = match
	}

	out := make(chan bool, 1)
	go func() {
		defer close(out)

		emit := func() {
			unread := false
			for _, match := range state {
				if usecase.IsUnread(match, userID) {
					unread = true

					break
				}
			}

			// Single producer with a buffer of one: drop the stale value,
			// then the send cannot block.
			select {
			case <-out:
			default:
			}
			out <- unread
		}

		emit()
		for {
			select {
			case <-ctx.Done():
				return
			case change, ok := <-changes:
				if !ok {
					return
				}
				if change.Deleted {
					delete(state, change.Match.ID)
				} else {
					state[change.Match.ID] = change.Match
				}
				emit()
			}
		}
	}()

	return out, nil
}
