package handler

import (
	"net/http"
	"testing"

	domainerrors "flint/internal/domain/errors"
	mockUC "flint/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLikeHandler(t *testing.T) (*LikeHandler, *mockUC.MockLikeUsecase) {
	t.Helper()

	uc := mockUC.NewMockLikeUsecase(t)
	h := NewLikeHandler(LikeHandlerParams{
		LikeUC: uc,
		Logger: testLogger(),
	})

	return h, uc
}

func TestLikeHandler_SetLike(t *testing.T) {
	h, uc := newLikeHandler(t)

	uc.EXPECT().SetLike(mock.Anything, "alice", "bob", true).Return(nil).Once()

	c, rec := newTestContext(t, http.MethodPut, "/me/likes/bob", "", "alice")
	c.SetParamNames("id")
	c.SetParamValues("bob")

	require.NoError(t, h.SetLike(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Like set successfully")
}

func TestLikeHandler_RemoveLike(t *testing.T) {
	h, uc := newLikeHandler(t)

	uc.EXPECT().SetLike(mock.Anything, "alice", "bob", false).Return(nil).Once()

	c, rec := newTestContext(t, http.MethodDelete, "/me/likes/bob", "", "alice")
	c.SetParamNames("id")
	c.SetParamValues("bob")

	require.NoError(t, h.RemoveLike(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Like removed successfully")
}

func TestLikeHandler_SetLike_SelfLike(t *testing.T) {
	h, uc := newLikeHandler(t)

	uc.EXPECT().SetLike(mock.Anything, "alice", "alice", true).
		Return(domainerrors.ErrSelfLike).Once()

	c, rec := newTestContext(t, http.MethodPut, "/me/likes/alice", "", "alice")
	c.SetParamNames("id")
	c.SetParamValues("alice")

	require.NoError(t, h.SetLike(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "SELF_LIKE_FORBIDDEN")
}

func TestLikeHandler_SetLike_QuotaExceeded(t *testing.T) {
	h, uc := newLikeHandler(t)

	uc.EXPECT().SetLike(mock.Anything, "alice", "bob", true).
		Return(domainerrors.ErrLikeQuotaExceeded).Once()

	c, rec := newTestContext(t, http.MethodPut, "/me/likes/bob", "", "alice")
	c.SetParamNames("id")
	c.SetParamValues("bob")

	require.NoError(t, h.SetLike(c))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "LIKE_QUOTA_EXCEEDED")
}

func TestLikeHandler_ListLikes(t *testing.T) {
	h, uc := newLikeHandler(t)

	uc.EXPECT().ListLikes(mock.Anything, "alice").Return([]string{"bob", "carol"}, nil).Once()

	c, rec := newTestContext(t, http.MethodGet, "/me/likes", "", "alice")

	require.NoError(t, h.ListLikes(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "bob")
	assert.Contains(t, rec.Body.String(), "carol")
}

func TestLikeHandler_ListLikedBy(t *testing.T) {
	h, uc := newLikeHandler(t)

	uc.EXPECT().ListLikedBy(mock.Anything, "alice").Return([]string{"dave"}, nil).Once()

	c, rec := newTestContext(t, http.MethodGet, "/me/liked-by", "", "alice")

	require.NoError(t, h.ListLikedBy(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "dave")
}
