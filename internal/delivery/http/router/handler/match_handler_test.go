package handler

import (
	"net/http"
	"testing"
	"time"

	"flint/internal/domain/entity"
	domainerrors "flint/internal/domain/errors"
	mockUC "flint/internal/mocks/usecase"
	"flint/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMatchHandler(t *testing.T) (*MatchHandler, *mockUC.MockMatchUsecase) {
	t.Helper()

	uc := mockUC.NewMockMatchUsecase(t)
	h := NewMatchHandler(MatchHandlerParams{
		MatchUC: uc,
		Logger:  testLogger(),
	})

	return h, uc
}

func TestMatchHandler_ListMatches(t *testing.T) {
	h, uc := newMatchHandler(t)

	match := entity.NewMatch("alice", "bob", time.Now())
	uc.EXPECT().ListMatches(mock.Anything, "alice").
		Return([]*usecase.MatchWithUnread{{Match: match, Unread: true}}, nil).Once()

	c, rec := newTestContext(t, http.MethodGet, "/me/matches", "", "alice")

	require.NoError(t, h.ListMatches(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), match.ID)
}

func TestMatchHandler_MarkRead(t *testing.T) {
	h, uc := newMatchHandler(t)

	uc.EXPECT().MarkRead(mock.Anything, "alice__bob", "alice").Return(nil).Once()

	c, rec := newTestContext(t, http.MethodPost, "/matches/alice__bob/read", "", "alice")
	c.SetParamNames("id")
	c.SetParamValues("alice__bob")

	require.NoError(t, h.MarkRead(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMatchHandler_MarkRead_NotParticipant(t *testing.T) {
	h, uc := newMatchHandler(t)

	uc.EXPECT().MarkRead(mock.Anything, "alice__bob", "carol").
		Return(domainerrors.ErrNotMatchParticipant).Once()

	c, rec := newTestContext(t, http.MethodPost, "/matches/alice__bob/read", "", "carol")
	c.SetParamNames("id")
	c.SetParamValues("alice__bob")

	require.NoError(t, h.MarkRead(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_MATCH_PARTICIPANT")
}

func TestMatchHandler_MarkRead_NotFound(t *testing.T) {
	h, uc := newMatchHandler(t)

	uc.EXPECT().MarkRead(mock.Anything, "nope", "alice").
		Return(domainerrors.ErrMatchNotFound).Once()

	c, rec := newTestContext(t, http.MethodPost, "/matches/nope/read", "", "alice")
	c.SetParamNames("id")
	c.SetParamValues("nope")

	require.NoError(t, h.MarkRead(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "MATCH_NOT_FOUND")
}

func TestMatchHandler_GetBadge(t *testing.T) {
	h, uc := newMatchHandler(t)

	uc.EXPECT().HasUnread(mock.Anything, "alice").Return(true, nil).Once()

	c, rec := newTestContext(t, http.MethodGet, "/me/matches/badge", "", "alice")

	require.NoError(t, h.GetBadge(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"has_unread":true`)
}

func TestMatchHandler_GetBadge_Unauthenticated(t *testing.T) {
	h, _ := newMatchHandler(t)

	c, rec := newTestContext(t, http.MethodGet, "/me/matches/badge", "", "")

	require.Error(t, h.GetBadge(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
