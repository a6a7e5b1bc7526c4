// Package handler contains the HTTP handlers for the API surface.
package handler

import (
	"net/http"

	"flint/internal/delivery/http/middleware"
	"flint/internal/delivery/http/response"
	domainerrors "flint/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// errUnauthenticated marks a request that reached a handler without an
// authenticated user; the 401 response has already been written.
var errUnauthenticated = errors.New("no authenticated user in context")

// getUserID extracts the authenticated user ID from the context. On a miss
// it writes the 401 response itself and returns a non-nil error so callers
// can bail out with a plain return.
func getUserID(c echo.Context) (string, error) {
	userID, ok := c.Get(middleware.KeyUserID).(string)
	if !ok || userID == "" {
		if err := response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token"); err != nil {
			return "", err
		}

		return "", errUnauthenticated
	}

	return userID, nil
}

// handleAppError renders domain errors with their HTTP mapping and lets
// everything else fall through to the global error handler.
func handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
