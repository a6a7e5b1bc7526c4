// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"flint/internal/delivery/http/middleware"
	"flint/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProfileHandler   *handler.ProfileHandler
	LikeHandler      *handler.LikeHandler
	MatchHandler     *handler.MatchHandler
	ProximityHandler *handler.ProximityHandler
	ReminderHandler  *handler.ReminderHandler
	TileHandler      *handler.TileHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	profileHandler   *handler.ProfileHandler
	likeHandler      *handler.LikeHandler
	matchHandler     *handler.MatchHandler
	proximityHandler *handler.ProximityHandler
	reminderHandler  *handler.ReminderHandler
	tileHandler      *handler.TileHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		profileHandler:   params.ProfileHandler,
		likeHandler:      params.LikeHandler,
		matchHandler:     params.MatchHandler,
		proximityHandler: params.ProximityHandler,
		reminderHandler:  params.ReminderHandler,
		tileHandler:      params.TileHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Basemap tiles; public, the map renders before login completes
	e.GET("/tiles/:z/:x/:y", r.tileHandler.GetTile)

	// Everything else requires a verified bearer token
	api := e.Group("", r.authMiddleware.Authenticate)

	profiles := api.Group("/profiles")
	{
		profiles.POST("", r.profileHandler.CreateProfile)
		profiles.GET("/:id", r.profileHandler.GetProfile)
	}

	me := api.Group("/me")
	{
		me.GET("/profile", r.profileHandler.GetMyProfile)
		me.PATCH("/profile", r.profileHandler.UpdateProfile)
		me.PUT("/location", r.profileHandler.UpdateLocation)
		me.POST("/photos", r.profileHandler.UploadPhoto)
		me.POST("/devices", r.profileHandler.RegisterDevice)
		me.GET("/qr", r.profileHandler.ShareQR)

		me.PUT("/likes/:id", r.likeHandler.SetLike)
		me.DELETE("/likes/:id", r.likeHandler.RemoveLike)
		me.GET("/likes", r.likeHandler.ListLikes)
		me.GET("/liked-by", r.likeHandler.ListLikedBy)

		me.GET("/matches", r.matchHandler.ListMatches)
		me.GET("/matches/badge", r.matchHandler.GetBadge)
		me.GET("/matches/badge/stream", r.matchHandler.StreamBadge)

		me.GET("/reminders", r.reminderHandler.List)
		me.POST("/reminders", r.reminderHandler.Schedule)
		me.DELETE("/reminders/:id", r.reminderHandler.Delete)
	}

	matches := api.Group("/matches")
	{
		matches.POST("/:id/read", r.matchHandler.MarkRead)
	}

	api.GET("/nearby", r.proximityHandler.Nearby)
}
