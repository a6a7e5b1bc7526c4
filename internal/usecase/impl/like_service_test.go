package impl

import (
	"context"
	"testing"
	"time"

	"flint/config"
	"flint/internal/domain/entity"
	domainerrors "flint/internal/domain/errors"
	"flint/internal/domain/repository"
	"flint/internal/domain/service"
	"flint/internal/infra/persistence/badgerstore"
	mockSvc "flint/internal/mocks/service"
	mockUC "flint/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLikeServiceForTest(t *testing.T, f *txFixture, quota *mockSvc.MockLikeQuota, dailyLimit int) (*likeService, *mockUC.MockMatchUsecase) {
	mockMatchUC := mockUC.NewMockMatchUsecase(t)

	var cfg *config.Config
	if dailyLimit > 0 {
		cfg = &config.Config{Matching: &config.MatchingConfig{DailyLikeLimit: dailyLimit}}
	}

	params := LikeServiceParams{
		TxManager: f.Manager,
		UserRepo:  f.User,
		MatchUC:   mockMatchUC,
		Config:    cfg,
		Logger:    newDiscardLogger(),
	}
	if quota != nil {
		params.Quota = quota
	}

	return NewLikeService(params).(*likeService), mockMatchUC
}

func TestLikeService_SetLike_AddsEdgeAndReconciles(t *testing.T) {
	f := newTxFixture(t)
	svc, mockMatchUC := newLikeServiceForTest(t, f, nil, 0)

	ctx := context.Background()
	alice := &entity.User{ID: "alice"}
	bob := &entity.User{ID: "bob"}

	f.User.EXPECT().FindByID(ctx, "alice").Return(alice, nil)
	f.User.EXPECT().FindByID(ctx, "bob").Return(bob, nil)

	var savedLiker, savedLiked *entity.User
	f.User.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			switch user.ID {
			case "alice":
				savedLiker = user
			case "bob":
				savedLiked = user
			}
		}).
		Return(nil).Twice()

	mockMatchUC.EXPECT().Reconcile(ctx, "alice", "bob").Return(nil)

	err := svc.SetLike(ctx, "alice", "bob", true)
	require.NoError(t, err)

	require.NotNil(t, savedLiker)
	require.NotNil(t, savedLiked)
	assert.Contains(t, savedLiker.Likes, "bob")
	assert.Contains(t, savedLiked.LikedBy, "alice")
}

func TestLikeService_SetLike_RetractRemovesBothEdges(t *testing.T) {
	f := newTxFixture(t)
	svc, mockMatchUC := newLikeServiceForTest(t, f, nil, 0)

	ctx := context.Background()
	alice := &entity.User{ID: "alice", Likes: []string{"bob", "carol"}}
	bob := &entity.User{ID: "bob", LikedBy: []string{"alice"}}

	f.User.EXPECT().FindByID(ctx, "alice").Return(alice, nil)
	f.User.EXPECT().FindByID(ctx, "bob").Return(bob, nil)

	var savedLiker, savedLiked *entity.User
	f.User.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			switch user.ID {
			case "alice":
				savedLiker = user
			case "bob":
				savedLiked = user
			}
		}).
		Return(nil).Twice()

	mockMatchUC.EXPECT().Reconcile(ctx, "alice", "bob").Return(nil)

	err := svc.SetLike(ctx, "alice", "bob", false)
	require.NoError(t, err)

	assert.NotContains(t, savedLiker.Likes, "bob")
	assert.Contains(t, savedLiker.Likes, "carol")
	assert.NotContains(t, savedLiked.LikedBy, "alice")
}

func TestLikeService_SetLike_NoOpWhenStateAlreadyHolds(t *testing.T) {
	f := newTxFixture(t)
	svc, mockMatchUC := newLikeServiceForTest(t, f, nil, 0)

	ctx := context.Background()
	alice := &entity.User{ID: "alice", Likes: []string{"bob"}}
	bob := &entity.User{ID: "bob", LikedBy: []string{"alice"}}

	f.User.EXPECT().FindByID(ctx, "alice").Return(alice, nil)
	f.User.EXPECT().FindByID(ctx, "bob").Return(bob, nil)

	// No Save expected, but reconcile still runs so a repeated like repairs
	// a stale match record.
	mockMatchUC.EXPECT().Reconcile(ctx, "alice", "bob").Return(nil)

	err := svc.SetLike(ctx, "alice", "bob", true)
	require.NoError(t, err)
}

func TestLikeService_SetLike_NoOpDoesNotSpendQuota(t *testing.T) {
	f := newTxFixture(t)
	quota := mockSvc.NewMockLikeQuota(t)
	svc, mockMatchUC := newLikeServiceForTest(t, f, quota, 10)

	ctx := context.Background()
	alice := &entity.User{ID: "alice", Likes: []string{"bob"}}
	bob := &entity.User{ID: "bob", LikedBy: []string{"alice"}}

	f.User.EXPECT().FindByID(ctx, "alice").Return(alice, nil)
	f.User.EXPECT().FindByID(ctx, "bob").Return(bob, nil)
	quota.EXPECT().Used(ctx, "alice", mock.AnythingOfType("string")).Return(0, nil)

	// The edge already exists: the counter must not move, only reconcile runs.
	mockMatchUC.EXPECT().Reconcile(ctx, "alice", "bob").Return(nil)

	err := svc.SetLike(ctx, "alice", "bob", true)
	require.NoError(t, err)
}

func TestLikeService_SetLike_RejectsSelfLike(t *testing.T) {
	f := newTxFixture(t)
	svc, _ := newLikeServiceForTest(t, f, nil, 0)

	err := svc.SetLike(context.Background(), "alice", "alice", true)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSelfLike)
}

func TestLikeService_SetLike_MissingTarget(t *testing.T) {
	f := newTxFixture(t)
	svc, _ := newLikeServiceForTest(t, f, nil, 0)

	ctx := context.Background()
	alice := &entity.User{ID: "alice"}

	f.User.EXPECT().FindByID(ctx, "alice").Return(alice, nil)
	f.User.EXPECT().FindByID(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	err := svc.SetLike(ctx, "alice", "ghost", true)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestLikeService_SetLike_QuotaExceeded(t *testing.T) {
	f := newTxFixture(t)
	mockQuota := mockSvc.NewMockLikeQuota(t)
	svc, _ := newLikeServiceForTest(t, f, mockQuota, 50)

	ctx := context.Background()
	mockQuota.EXPECT().Used(ctx, "alice", mock.AnythingOfType("string")).Return(50, nil)

	err := svc.SetLike(ctx, "alice", "bob", true)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrLikeQuotaExceeded)
}

func TestLikeService_SetLike_SpendsQuotaOnChange(t *testing.T) {
	f := newTxFixture(t)
	mockQuota := mockSvc.NewMockLikeQuota(t)
	svc, mockMatchUC := newLikeServiceForTest(t, f, mockQuota, 50)

	ctx := context.Background()
	alice := &entity.User{ID: "alice"}
	bob := &entity.User{ID: "bob"}
	dayKey := service.DayKey(time.Now())

	mockQuota.EXPECT().Used(ctx, "alice", dayKey).Return(3, nil)
	f.User.EXPECT().FindByID(ctx, "alice").Return(alice, nil)
	f.User.EXPECT().FindByID(ctx, "bob").Return(bob, nil)
	f.User.EXPECT().Save(ctx, mock.AnythingOfType("*entity.User")).Return(nil).Twice()
	mockQuota.EXPECT().Increment(ctx, "alice", dayKey, 1, likeQuotaTTL).Return(4, nil)
	mockMatchUC.EXPECT().Reconcile(ctx, "alice", "bob").Return(nil)

	err := svc.SetLike(ctx, "alice", "bob", true)
	require.NoError(t, err)
}

func TestLikeService_SetLike_QuotaBackendFailureDoesNotBlock(t *testing.T) {
	f := newTxFixture(t)
	mockQuota := mockSvc.NewMockLikeQuota(t)
	svc, mockMatchUC := newLikeServiceForTest(t, f, mockQuota, 50)

	ctx := context.Background()
	alice := &entity.User{ID: "alice"}
	bob := &entity.User{ID: "bob"}

	mockQuota.EXPECT().Used(ctx, "alice", mock.AnythingOfType("string")).Return(0, assert.AnError)
	f.User.EXPECT().FindByID(ctx, "alice").Return(alice, nil)
	f.User.EXPECT().FindByID(ctx, "bob").Return(bob, nil)
	f.User.EXPECT().Save(ctx, mock.AnythingOfType("*entity.User")).Return(nil).Twice()
	mockQuota.EXPECT().Increment(ctx, "alice", mock.AnythingOfType("string"), 1, likeQuotaTTL).Return(1, nil)
	mockMatchUC.EXPECT().Reconcile(ctx, "alice", "bob").Return(nil)

	err := svc.SetLike(ctx, "alice", "bob", true)
	require.NoError(t, err)
}

func TestLikeService_ListLikes(t *testing.T) {
	f := newTxFixture(t)
	svc, _ := newLikeServiceForTest(t, f, nil, 0)

	ctx := context.Background()
	alice := &entity.User{ID: "alice", Likes: []string{"bob", "carol"}, LikedBy: []string{"dave"}}

	f.User.EXPECT().FindByID(ctx, "alice").Return(alice, nil).Twice()

	likes, err := svc.ListLikes(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"bob", "carol"}, likes)

	likedBy, err := svc.ListLikedBy(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"dave"}, likedBy)
}

// TestLikeService_MutualLikeLifecycle drives the like and match services
// against a real in-memory store through the full pair lifecycle.
func TestLikeService_MutualLikeLifecycle(t *testing.T) {
	store, err := badgerstore.Open(&config.BadgerConfig{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	txManager := badgerstore.NewTransactionManager(store)
	userRepo := badgerstore.NewUserRepository(store)
	matchRepo := badgerstore.NewMatchRepository(store)

	matchUC := NewMatchService(MatchServiceParams{
		TxManager:  txManager,
		MatchRepo:  matchRepo,
		DeviceRepo: badgerstore.NewDeviceRepository(store),
		Logger:     newDiscardLogger(),
	})

	likeUC := NewLikeService(LikeServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		MatchUC:   matchUC,
		Logger:    newDiscardLogger(),
	})

	ctx := context.Background()
	require.NoError(t, userRepo.Create(ctx, &entity.User{ID: "alice"}))
	require.NoError(t, userRepo.Create(ctx, &entity.User{ID: "bob"}))

	// One-sided like: no match yet.
	require.NoError(t, likeUC.SetLike(ctx, "alice", "bob", true))
	records, err := matchRepo.FindByPair(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.Empty(t, records)

	// Reciprocal like: exactly one match, unread for both participants.
	require.NoError(t, likeUC.SetLike(ctx, "bob", "alice", true))
	records, err = matchRepo.FindByPair(ctx, "alice", "bob")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, entity.PairKey("alice", "bob"), records[0].ID)
	assert.Equal(t, map[string]bool{"alice": false, "bob": false}, records[0].IsRead)

	// Repeating the like changes nothing.
	require.NoError(t, likeUC.SetLike(ctx, "alice", "bob", true))
	records, err = matchRepo.FindByPair(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.Len(t, records, 1)

	// Retracting one side deletes the match and both like edges.
	require.NoError(t, likeUC.SetLike(ctx, "alice", "bob", false))
	records, err = matchRepo.FindByPair(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.Empty(t, records)

	alice, err := userRepo.FindByID(ctx, "alice")
	require.NoError(t, err)
	assert.NotContains(t, alice.Likes, "bob")

	bob, err := userRepo.FindByID(ctx, "bob")
	require.NoError(t, err)
	assert.NotContains(t, bob.LikedBy, "alice")
}
