package service

import "context"

// TokenVerifier checks a bearer ID token issued by the delegated auth
// backend and returns the stable user ID it was minted for. The engine never
// mints tokens or stores credentials.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (string, error)
}
