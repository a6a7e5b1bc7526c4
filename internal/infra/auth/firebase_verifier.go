// Package auth verifies bearer ID tokens issued by the delegated auth
// backend.
package auth

import (
	"context"
	"log/slog"

	"flint/config"
	"flint/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// firebaseVerifier implements service.TokenVerifier on Firebase Auth.
type firebaseVerifier struct {
	client *fbauth.Client
}

// passthroughVerifier treats the bearer token itself as the user ID. Local
// development only, when Firebase is not configured.
type passthroughVerifier struct{}

// Params holds dependencies for the token verifier, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New creates the token verifier based on configuration.
func New(params Params) (service.TokenVerifier, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Warn("Firebase not configured, bearer tokens are trusted as user IDs")

		return &passthroughVerifier{}, nil
	}

	app, err := firebase.NewApp(params.Ctx, nil, option.WithCredentialsFile(cfg.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	return &firebaseVerifier{client: client}, nil
}

// VerifyIDToken checks the token signature and expiry and returns the user
// ID it was minted for.
func (v *firebaseVerifier) VerifyIDToken(ctx context.Context, idToken string) (string, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", errors.Wrap(err, "failed to verify ID token")
	}

	return token.UID, nil
}

func (v *passthroughVerifier) VerifyIDToken(_ context.Context, idToken string) (string, error) {
	if idToken == "" {
		return "", errors.New("empty token")
	}

	return idToken, nil
}
