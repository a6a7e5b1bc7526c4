// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"flint/config"
	deliverycontext "flint/internal/delivery/context"
	"flint/internal/domain/entity"
	domainerrors "flint/internal/domain/errors"
	"flint/internal/domain/repository"
	"flint/internal/domain/service"
	"flint/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Quota counters outlive the day they count by one day, so a client in any
// timezone still sees a consistent value until its local day rolls over.
const likeQuotaTTL = 48 * time.Hour

// likeService implements the LikeUsecase interface. It is the only writer of
// the like edges on profile documents.
type likeService struct {
	txManager  repository.TransactionManager
	userRepo   repository.UserRepository
	matchUC    usecase.MatchUsecase
	quota      service.LikeQuota
	dailyLimit int
	logger     *slog.Logger
	now        func() time.Time
}

// LikeServiceParams holds dependencies for likeService, injected by Fx.
type LikeServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	MatchUC   usecase.MatchUsecase
	Quota     service.LikeQuota `optional:"true"`
	Config    *config.Config
	Logger    *slog.Logger
}

// NewLikeService is the constructor for likeService.
func NewLikeService(params LikeServiceParams) usecase.LikeUsecase {
	dailyLimit := 0
	if params.Config != nil && params.Config.Matching != nil {
		dailyLimit = params.Config.Matching.DailyLikeLimit
	}

	return &likeService{
		txManager:  params.TxManager,
		userRepo:   params.UserRepo,
		matchUC:    params.MatchUC,
		quota:      params.Quota,
		dailyLimit: dailyLimit,
		logger:     params.Logger,
		now:        time.Now,
	}
}

func (srv *likeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SetLike sets or clears the directed like edge liker -> liked. Both sides
// of the edge change in one transaction; match reconciliation for the pair
// runs after every state-changing call.
func (srv *likeService) SetLike(ctx context.Context, likerID, likedID string, isLiking bool) error {
	if likerID == likedID {
		return domainerrors.ErrSelfLike.WrapMessage("set like")
	}

	if isLiking {
		if err := srv.checkQuota(ctx, likerID); err != nil {
			return err
		}
	}

	changed := false
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		liker, err := userRepo.FindByID(ctx, likerID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("liker profile missing")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find liker")
		}

		liked, err := userRepo.FindByID(ctx, likedID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("liked profile missing")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find liked user")
		}

		// Requested state already holds: no-op, not an error.
		if liker.HasLiked(likedID) == isLiking {
			return nil
		}

		now := srv.now()
		if isLiking {
			liker.Likes = appendUnique(liker.Likes, likedID)
			liked.LikedBy = appendUnique(liked.LikedBy, likerID)
		} else {
			liker.Likes = removeAll(liker.Likes, likedID)
			liked.LikedBy = removeAll(liked.LikedBy, likerID)
		}
		liker.UpdatedAt = now
		liked.UpdatedAt = now

		if err := userRepo.Save(ctx, liker); err != nil {
			return errors.Wrap(err, "failed to save liker")
		}
		if err := userRepo.Save(ctx, liked); err != nil {
			return errors.Wrap(err, "failed to save liked user")
		}
		changed = true

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute set like transaction",
			slog.String("likerID", likerID), slog.String("likedID", likedID),
			slog.Bool("isLiking", isLiking), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute set like transaction")
	}

	if changed && isLiking {
		srv.spendQuota(ctx, likerID)
	}

	// Reconcile runs on the no-op path too: a repeated like then repairs a
	// stale or missing match record left behind by a prior inconsistency.
	return srv.matchUC.Reconcile(ctx, likerID, likedID)
}

// checkQuota rejects a new like once the daily counter has hit the limit.
// The counter backend failing does not block likes; the quota is a soft
// product limit.
func (srv *likeService) checkQuota(ctx context.Context, likerID string) error {
	if srv.quota == nil || srv.dailyLimit <= 0 {
		return nil
	}

	used, err := srv.quota.Used(ctx, likerID, service.DayKey(srv.now()))
	if err != nil {
		srv.log(ctx).Warn("Failed to read like quota, allowing like",
			slog.String("likerID", likerID), slog.Any("error", err))

		return nil
	}

	if used >= srv.dailyLimit {
		return domainerrors.ErrLikeQuotaExceeded.WrapMessage("set like")
	}

	return nil
}

func (srv *likeService) spendQuota(ctx context.Context, likerID string) {
	if srv.quota == nil || srv.dailyLimit <= 0 {
		return
	}

	if _, err := srv.quota.Increment(ctx, likerID, service.DayKey(srv.now()), 1, likeQuotaTTL); err != nil {
		srv.log(ctx).Warn("Failed to increment like quota",
			slog.String("likerID", likerID), slog.Any("error", err))
	}
}

// ListLikes returns the IDs of users the user has liked.
func (srv *likeService) ListLikes(ctx context.Context, userID string) ([]string, error) {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return slices.Clone(user.Likes), nil
}

// ListLikedBy returns the IDs of users who liked the user.
func (srv *likeService) ListLikedBy(ctx context.Context, userID string) ([]string, error) {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return slices.Clone(user.LikedBy), nil
}

func (srv *likeService) findUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound.WrapMessage("list likes")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func appendUnique(ids []string, id string) []string {
	if slices.Contains(ids, id) {
		return ids
	}

	return append(ids, id)
}

func removeAll(ids []string, id string) []string {
	return slices.DeleteFunc(ids, func(existing string) bool {
		return existing == id
	})
}
