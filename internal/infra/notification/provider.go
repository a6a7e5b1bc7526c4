package notification

import (
	"context"
	"log/slog"

	"flint/config"
	"flint/internal/domain/service"

	"go.uber.org/fx"
)

// Params holds dependencies for the notification service, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New creates the push notification service, or nothing when Firebase is not
// configured. Use cases treat a missing service as "push disabled".
func New(params Params) (service.NotificationService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Info("Firebase not configured, push notifications disabled")

		return nil, nil
	}

	return NewFirebaseService(params.Ctx, cfg.CredentialsPath)
}
