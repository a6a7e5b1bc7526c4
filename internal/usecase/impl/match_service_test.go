package impl

import (
	"context"
	"testing"
	"time"

	"flint/internal/domain/entity"
	domainerrors "flint/internal/domain/errors"
	"flint/internal/domain/repository"
	"flint/internal/domain/service"
	mockRepo "flint/internal/mocks/repository"
	mockSvc "flint/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMatchServiceForTest(t *testing.T, f *txFixture) (*matchService, *mockRepo.MockDeviceRepository, *mockSvc.MockEventPublisher) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)

	svc := NewMatchService(MatchServiceParams{
		TxManager:  f.Manager,
		MatchRepo:  f.Match,
		DeviceRepo: mockDeviceRepo,
		Publisher:  mockPublisher,
		Logger:     newDiscardLogger(),
	}).(*matchService)

	return svc, mockDeviceRepo, mockPublisher
}

func TestMatchService_Reconcile_CreatesMatchOnMutualLike(t *testing.T) {
	f := newTxFixture(t)
	svc, _, mockPublisher := newMatchServiceForTest(t, f)

	ctx := context.Background()
	alice := &entity.User{ID: "alice", Likes: []string{"bob"}}
	bob := &entity.User{ID: "bob", Likes: []string{"alice"}}

	f.User.EXPECT().FindByID(ctx, "alice").Return(alice, nil)
	f.User.EXPECT().FindByID(ctx, "bob").Return(bob, nil)
	f.Match.EXPECT().FindByPair(ctx, "alice", "bob").Return(nil, nil)

	var created *entity.Match
	f.Match.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Match")).
		Run(func(_ context.Context, match *entity.Match) {
			created = match
		}).
		Return(nil)

	mockPublisher.EXPECT().
		PublishMatchEvent(ctx, mock.AnythingOfType("*service.MatchEvent")).
		Return(nil)

	err := svc.Reconcile(ctx, "alice", "bob")
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, entity.PairKey("alice", "bob"), created.ID)
	assert.Equal(t, [2]string{"alice", "bob"}, created.Users)
	assert.False(t, created.IsRead["alice"])
	assert.False(t, created.IsRead["bob"])
}

func TestMatchService_Reconcile_IdempotentWhenMatchExists(t *testing.T) {
	f := newTxFixture(t)
	svc, _, _ := newMatchServiceForTest(t, f)

	ctx := context.Background()
	alice := &entity.User{ID: "alice", Likes: []string{"bob"}}
	bob := &entity.User{ID: "bob", Likes: []string{"alice"}}
	existing := entity.NewMatch("alice", "bob", time.Now())

	f.User.EXPECT().FindByID(ctx, "alice").Return(alice, nil)
	f.User.EXPECT().FindByID(ctx, "bob").Return(bob, nil)
	f.Match.EXPECT().FindByPair(ctx, "alice", "bob").Return([]*entity.Match{existing}, nil)

	err := svc.Reconcile(ctx, "alice", "bob")
	require.NoError(t, err)
}

func TestMatchService_Reconcile_NoMatchWhenOneSided(t *testing.T) {
	f := newTxFixture(t)
	svc, _, _ := newMatchServiceForTest(t, f)

	ctx := context.Background()
	alice := &entity.User{ID: "alice", Likes: []string{"bob"}}
	bob := &entity.User{ID: "bob"}

	f.User.EXPECT().FindByID(ctx, "alice").Return(alice, nil)
	f.User.EXPECT().FindByID(ctx, "bob").Return(bob, nil)
	f.Match.EXPECT().FindByPair(ctx, "alice", "bob").Return(nil, nil)

	err := svc.Reconcile(ctx, "alice", "bob")
	require.NoError(t, err)
}

func TestMatchService_Reconcile_DeletesMatchWhenLikeRetracted(t *testing.T) {
	f := newTxFixture(t)
	svc, _, mockPublisher := newMatchServiceForTest(t, f)

	ctx := context.Background()
	alice := &entity.User{ID: "alice"}
	bob := &entity.User{ID: "bob", Likes: []string{"alice"}}
	existing := entity.NewMatch("alice", "bob", time.Now())

	f.User.EXPECT().FindByID(ctx, "alice").Return(alice, nil)
	f.User.EXPECT().FindByID(ctx, "bob").Return(bob, nil)
	f.Match.EXPECT().FindByPair(ctx, "alice", "bob").Return([]*entity.Match{existing}, nil)
	f.Match.EXPECT().Delete(ctx, existing.ID).Return(nil)

	mockPublisher.EXPECT().
		PublishMatchEvent(ctx, mock.AnythingOfType("*service.MatchEvent")).
		Run(func(_ context.Context, event *service.MatchEvent) {
			assert.Equal(t, service.MatchEventDeleted, event.Kind)
		}).
		Return(nil)

	err := svc.Reconcile(ctx, "alice", "bob")
	require.NoError(t, err)
}

func TestMatchService_Reconcile_CollapsesDuplicatesToOldest(t *testing.T) {
	f := newTxFixture(t)
	svc, _, _ := newMatchServiceForTest(t, f)

	ctx := context.Background()
	alice := &entity.User{ID: "alice", Likes: []string{"bob"}}
	bob := &entity.User{ID: "bob", Likes: []string{"alice"}}

	older := entity.NewMatch("alice", "bob", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	newer := entity.NewMatch("alice", "bob", time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))
	newer.ID = "legacy-duplicate"

	f.User.EXPECT().FindByID(ctx, "alice").Return(alice, nil)
	f.User.EXPECT().FindByID(ctx, "bob").Return(bob, nil)
	f.Match.EXPECT().FindByPair(ctx, "alice", "bob").Return([]*entity.Match{newer, older}, nil)
	f.Match.EXPECT().Delete(ctx, "legacy-duplicate").Return(nil)

	err := svc.Reconcile(ctx, "alice", "bob")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMatchIntegrity)
}

func TestMatchService_Reconcile_AnnouncesDeletionWhenRepairingStalePair(t *testing.T) {
	f := newTxFixture(t)
	svc, _, mockPublisher := newMatchServiceForTest(t, f)

	ctx := context.Background()
	alice := &entity.User{ID: "alice"}
	bob := &entity.User{ID: "bob"}

	canonical := entity.NewMatch("alice", "bob", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	legacy := entity.NewMatch("alice", "bob", time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))
	legacy.ID = "legacy-duplicate"

	f.User.EXPECT().FindByID(ctx, "alice").Return(alice, nil)
	f.User.EXPECT().FindByID(ctx, "bob").Return(bob, nil)
	f.Match.EXPECT().FindByPair(ctx, "alice", "bob").Return([]*entity.Match{canonical, legacy}, nil)
	f.Match.EXPECT().Delete(ctx, canonical.ID).Return(nil)
	f.Match.EXPECT().Delete(ctx, "legacy-duplicate").Return(nil)

	// The match ended even though the repair is surfaced as a fault, so the
	// deletion event must still reach consumers.
	mockPublisher.EXPECT().
		PublishMatchEvent(ctx, mock.AnythingOfType("*service.MatchEvent")).
		Run(func(_ context.Context, event *service.MatchEvent) {
			assert.Equal(t, service.MatchEventDeleted, event.Kind)
			assert.Equal(t, entity.PairKey("alice", "bob"), event.MatchID)
		}).
		Return(nil)

	err := svc.Reconcile(ctx, "alice", "bob")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMatchIntegrity)
}

func TestMatchService_Reconcile_RejectsSelfPair(t *testing.T) {
	f := newTxFixture(t)
	svc, _, _ := newMatchServiceForTest(t, f)

	err := svc.Reconcile(context.Background(), "alice", "alice")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestMatchService_MarkRead_FlipsOnlyViewerFlag(t *testing.T) {
	f := newTxFixture(t)
	svc, _, _ := newMatchServiceForTest(t, f)

	ctx := context.Background()
	match := entity.NewMatch("alice", "bob", time.Now())

	f.Match.EXPECT().FindByID(ctx, match.ID).Return(match, nil)

	var saved *entity.Match
	f.Match.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.Match")).
		Run(func(_ context.Context, m *entity.Match) {
			saved = m
		}).
		Return(nil)

	err := svc.MarkRead(ctx, match.ID, "alice")
	require.NoError(t, err)

	require.NotNil(t, saved)
	assert.True(t, saved.IsRead["alice"])
	assert.False(t, saved.IsRead["bob"])
}

func TestMatchService_MarkRead_NoOpWhenAlreadyRead(t *testing.T) {
	f := newTxFixture(t)
	svc, _, _ := newMatchServiceForTest(t, f)

	ctx := context.Background()
	match := entity.NewMatch("alice", "bob", time.Now())
	match.IsRead["alice"] = true

	f.Match.EXPECT().FindByID(ctx, match.ID).Return(match, nil)

	err := svc.MarkRead(ctx, match.ID, "alice")
	require.NoError(t, err)
}

func TestMatchService_MarkRead_RejectsNonParticipant(t *testing.T) {
	f := newTxFixture(t)
	svc, _, _ := newMatchServiceForTest(t, f)

	ctx := context.Background()
	match := entity.NewMatch("alice", "bob", time.Now())

	f.Match.EXPECT().FindByID(ctx, match.ID).Return(match, nil)

	err := svc.MarkRead(ctx, match.ID, "mallory")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotMatchParticipant)
}

func TestMatchService_MarkRead_NotFound(t *testing.T) {
	f := newTxFixture(t)
	svc, _, _ := newMatchServiceForTest(t, f)

	ctx := context.Background()
	f.Match.EXPECT().FindByID(ctx, "missing").Return(nil, repository.ErrMatchNotFound)

	err := svc.MarkRead(ctx, "missing", "alice")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMatchNotFound)
}

func TestMatchService_ListMatches_AttachesUnreadFlags(t *testing.T) {
	f := newTxFixture(t)
	svc, _, _ := newMatchServiceForTest(t, f)

	ctx := context.Background()
	read := entity.NewMatch("alice", "bob", time.Now())
	read.IsRead["alice"] = true
	unread := entity.NewMatch("alice", "carol", time.Now())

	f.Match.EXPECT().FindByUser(ctx, "alice").Return([]*entity.Match{read, unread}, nil)

	matches, err := svc.ListMatches(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.False(t, matches[0].Unread)
	assert.True(t, matches[1].Unread)
}

func TestMatchService_HasUnread(t *testing.T) {
	f := newTxFixture(t)
	svc, _, _ := newMatchServiceForTest(t, f)

	ctx := context.Background()
	read := entity.NewMatch("alice", "bob", time.Now())
	read.IsRead["alice"] = true

	f.Match.EXPECT().FindByUser(ctx, "alice").Return([]*entity.Match{read}, nil).Once()

	hasUnread, err := svc.HasUnread(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, hasUnread)

	unread := entity.NewMatch("alice", "carol", time.Now())
	f.Match.EXPECT().FindByUser(ctx, "alice").Return([]*entity.Match{read, unread}, nil).Once()

	hasUnread, err = svc.HasUnread(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, hasUnread)
}

func TestMatchService_WatchBadge_EmitsOnChanges(t *testing.T) {
	f := newTxFixture(t)
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockWatcher := mockRepo.NewMockMatchWatcher(t)

	svc := NewMatchService(MatchServiceParams{
		TxManager:  f.Manager,
		MatchRepo:  f.Match,
		DeviceRepo: mockDeviceRepo,
		Watcher:    mockWatcher,
		Logger:     newDiscardLogger(),
	}).(*matchService)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan repository.MatchChange)
	mockWatcher.EXPECT().
		WatchUserMatches(ctx, "alice").
		Return((<-chan repository.MatchChange)(changes), nil)
	f.Match.EXPECT().FindByUser(ctx, "alice").Return(nil, nil)

	badge, err := svc.WatchBadge(ctx, "alice")
	require.NoError(t, err)

	assert.False(t, receiveBadge(t, badge))

	unread := entity.NewMatch("alice", "bob", time.Now())
	changes <- repository.MatchChange{Match: unread}
	assert.True(t, receiveBadge(t, badge))

	read := entity.NewMatch("alice", "bob", time.Now())
	read.IsRead["alice"] = true
	changes <- repository.MatchChange{Match: read}
	assert.False(t, receiveBadge(t, badge))

	changes <- repository.MatchChange{Match: read, Deleted: true}
	assert.False(t, receiveBadge(t, badge))
}

func receiveBadge(t *testing.T, badge <-chan bool) bool {
	t.Helper()

	select {
	case value := <-badge:
		return value
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for badge value")

		return false
	}
}
