package handler

import (
	"log/slog"
	"net/http"

	"flint/internal/delivery/http/response"
	"flint/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LikeHandlerParams holds dependencies for LikeHandler, injected by Fx.
type LikeHandlerParams struct {
	fx.In

	LikeUC usecase.LikeUsecase
	Logger *slog.Logger
}

// LikeHandler holds dependencies for like-related handlers
type LikeHandler struct {
	likeUC usecase.LikeUsecase
	logger *slog.Logger
}

// NewLikeHandler is the constructor for LikeHandler
func NewLikeHandler(params LikeHandlerParams) *LikeHandler {
	return &LikeHandler{
		likeUC: params.LikeUC,
		logger: params.Logger,
	}
}

// SetLike handles creating the like edge toward the target user
func (h *LikeHandler) SetLike(c echo.Context) error {
	return h.setLike(c, true)
}

// RemoveLike handles retracting the like edge toward the target user
func (h *LikeHandler) RemoveLike(c echo.Context) error {
	return h.setLike(c, false)
}

func (h *LikeHandler) setLike(c echo.Context, isLiking bool) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	targetID := c.Param("id")
	if targetID == "" {
		return response.BadRequest(c, "INVALID_ID", "Missing target user ID")
	}

	if err := h.likeUC.SetLike(c.Request().Context(), userID, targetID, isLiking); err != nil {
		return handleAppError(c, err)
	}

	message := "Like removed successfully"
	if isLiking {
		message = "Like set successfully"
	}

	return response.Success(c, http.StatusOK, nil, message)
}

// ListLikes handles listing the users the authenticated user has liked
func (h *LikeHandler) ListLikes(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	likes, err := h.likeUC.ListLikes(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, likes, "Likes retrieved successfully")
}

// ListLikedBy handles listing the users who liked the authenticated user
func (h *LikeHandler) ListLikedBy(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	likedBy, err := h.likeUC.ListLikedBy(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, likedBy, "Liked-by retrieved successfully")
}
