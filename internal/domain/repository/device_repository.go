package repository

import (
	"context"

	"flint/internal/domain/entity"
)

// DeviceRepository defines the interface for push-device registrations.
type DeviceRepository interface {
	// Register stores a device token for a user, replacing any previous
	// registration of the same token.
	Register(ctx context.Context, device *entity.UserDevice) error

	// FindByUser retrieves all registered devices for a user.
	FindByUser(ctx context.Context, userID string) ([]*entity.UserDevice, error)

	// RemoveTokens deletes registrations whose tokens the push service
	// reported invalid.
	RemoveTokens(ctx context.Context, userID string, tokens []string) error
}
