package usecase

import (
	"context"
	"io"
	"time"

	"flint/internal/domain/entity"
)

// UpdateProfileInput carries partial profile edits; nil fields are left
// untouched.
type UpdateProfileInput struct {
	Name   *string `json:"name,omitempty"`
	Gender *string `json:"gender,omitempty"`
	Bio    *string `json:"bio,omitempty"`
}

// UpdateLocationInput sets the user's reported position.
type UpdateLocationInput struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	IsVirtual bool    `json:"is_virtual"`
}

// RegisterDeviceInput registers a push token for the user.
type RegisterDeviceInput struct {
	FCMToken string `json:"fcm_token"`
	Platform string `json:"platform"`
}

// ProfileUsecase covers the profile reads and writes around the engine:
// profile CRUD, location updates, photo storage and profile sharing.
type ProfileUsecase interface {
	// GetProfile retrieves a profile by ID.
	GetProfile(ctx context.Context, userID string) (*entity.User, error)

	// CreateProfile persists a new profile for the authenticated user.
	CreateProfile(ctx context.Context, user *entity.User) (*entity.User, error)

	// UpdateProfile applies partial edits to the user's own profile.
	UpdateProfile(ctx context.Context, userID string, input *UpdateProfileInput) (*entity.User, error)

	// UpdateLocation sets the user's location and stamps LastUpdated.
	UpdateLocation(ctx context.Context, userID string, input *UpdateLocationInput, now time.Time) (*entity.User, error)

	// UploadPhoto stores a profile photo in the object store and appends
	// its key to the profile. Returns the stored key.
	UploadPhoto(ctx context.Context, userID, contentType string, r io.Reader) (string, error)

	// RegisterDevice stores a push device registration for the user.
	RegisterDevice(ctx context.Context, userID string, input *RegisterDeviceInput) error

	// ShareQR renders the user's profile-share QR code as PNG bytes.
	ShareQR(ctx context.Context, userID string) ([]byte, error)
}
