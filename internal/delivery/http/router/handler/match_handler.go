package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"flint/internal/delivery/http/response"
	"flint/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const badgeWriteTimeout = 10 * time.Second

// MatchHandlerParams holds dependencies for MatchHandler, injected by Fx.
type MatchHandlerParams struct {
	fx.In

	MatchUC usecase.MatchUsecase
	Logger  *slog.Logger
}

// MatchHandler holds dependencies for match-related handlers
type MatchHandler struct {
	matchUC  usecase.MatchUsecase
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// NewMatchHandler is the constructor for MatchHandler
func NewMatchHandler(params MatchHandlerParams) *MatchHandler {
	return &MatchHandler{
		matchUC: params.MatchUC,
		logger:  params.Logger,
		upgrader: websocket.Upgrader{
			// The API is served behind its own auth; origin policy is the
			// proxy's concern.
			CheckOrigin: func(_ *http.Request) bool { return true },
		},
	}
}

// badgeMessage is one frame of the unread-badge stream.
type badgeMessage struct {
	HasUnread bool `json:"has_unread"`
}

// ListMatches handles listing the authenticated user's matches
func (h *MatchHandler) ListMatches(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	matches, err := h.matchUC.ListMatches(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, matches, "Matches retrieved successfully")
}

// MarkRead handles flipping the viewer's read flag on a match
func (h *MatchHandler) MarkRead(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	matchID := c.Param("id")
	if matchID == "" {
		return response.BadRequest(c, "INVALID_ID", "Missing match ID")
	}

	if err := h.matchUC.MarkRead(c.Request().Context(), matchID, userID); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Match marked as read")
}

// GetBadge handles the one-shot unread-badge query
func (h *MatchHandler) GetBadge(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	hasUnread, err := h.matchUC.HasUnread(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, badgeMessage{HasUnread: hasUnread}, "Badge retrieved successfully")
}

// StreamBadge upgrades to a websocket and pushes the unread-badge state on
// every change to the user's match set.
func (h *MatchHandler) StreamBadge(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return response.BadRequest(c, "UPGRADE_FAILED", "Websocket upgrade failed")
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	badges, err := h.matchUC.WatchBadge(ctx, userID)
	if err != nil {
		h.logger.Error("failed to open badge stream",
			slog.String("user_id", userID),
			slog.Any("error", err))

		return nil
	}

	// Reader goroutine: the client never sends data frames, but reading is
	// what surfaces close frames and dead connections.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case hasUnread, ok := <-badges:
			if !ok {
				return nil
			}

			conn.SetWriteDeadline(time.Now().Add(badgeWriteTimeout))
			if err := conn.WriteJSON(badgeMessage{HasUnread: hasUnread}); err != nil {
				return nil
			}

		case <-ctx.Done():
			return nil
		}
	}
}
