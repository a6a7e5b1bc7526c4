package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	deliverycontext "flint/internal/delivery/context"
	"flint/internal/domain/entity"
	domainerrors "flint/internal/domain/errors"
	"flint/internal/domain/repository"
	"flint/internal/domain/service"
	"flint/internal/usecase"
	"flint/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface. Profile edits run
// in a transaction so they never clobber like edges written concurrently by
// the like flow.
type profileService struct {
	txManager  repository.TransactionManager
	userRepo   repository.UserRepository
	deviceRepo repository.DeviceRepository
	media      service.MediaStorage
	qrSvc      service.QRCodeService
	logger     *slog.Logger
	now        func() time.Time
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	UserRepo   repository.UserRepository
	DeviceRepo repository.DeviceRepository
	Media      service.MediaStorage `optional:"true"`
	QRSvc      service.QRCodeService
	Logger     *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:  params.TxManager,
		userRepo:   params.UserRepo,
		deviceRepo: params.DeviceRepo,
		media:      params.Media,
		qrSvc:      params.QRSvc,
		logger:     params.Logger,
		now:        time.Now,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves a profile by ID.
func (srv *profileService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound.WrapMessage("get profile")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// CreateProfile persists a new profile for the authenticated user.
func (srv *profileService) CreateProfile(ctx context.Context, user *entity.User) (*entity.User, error) {
	now := srv.now()
	user.Likes = []string{}
	user.LikedBy = []string{}
	user.CreatedAt = now
	user.UpdatedAt = now

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create profile")
	}

	srv.log(ctx).Info("Profile created", slog.String("userID", user.ID))

	return user, nil
}

// UpdateProfile applies partial edits to the user's own profile.
func (srv *profileService) UpdateProfile(ctx context.Context, userID string, input *usecase.UpdateProfileInput) (*entity.User, error) {
	var updated *entity.User
	err := srv.mutateProfile(ctx, userID, func(user *entity.User) {
		if input.Name != nil {
			user.Name = *input.Name
		}
		if input.Gender != nil {
			user.Gender = *input.Gender
		}
		if input.Bio != nil {
			user.Bio = *input.Bio
		}
		updated = user
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// UpdateLocation sets the user's reported position and stamps LastUpdated.
func (srv *profileService) UpdateLocation(ctx context.Context, userID string, input *usecase.UpdateLocationInput, now time.Time) (*entity.User, error) {
	var updated *entity.User
	err := srv.mutateProfile(ctx, userID, func(user *entity.User) {
		user.Location = &entity.Location{
			Latitude:    input.Latitude,
			Longitude:   input.Longitude,
			IsVirtual:   input.IsVirtual,
			LastUpdated: now,
		}
		updated = user
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// UploadPhoto stores a profile photo in the object store and appends its key
// to the profile.
func (srv *profileService) UploadPhoto(ctx context.Context, userID, contentType string, r io.Reader) (string, error) {
	if srv.media == nil {
		return "", errors.New("media storage is not configured")
	}

	key := fmt.Sprintf("profiles/%s/%s", userID, uuid.New().String())
	size, err := srv.media.Save(ctx, key, contentType, r)
	if err != nil {
		return "", errors.Wrap(err, "failed to store photo")
	}

	if err := srv.mutateProfile(ctx, userID, func(user *entity.User) {
		user.PhotoKeys = append(user.PhotoKeys, key)
	}); err != nil {
		// Orphaned object; remove it so the store does not leak.
		if deleteErr := srv.media.Delete(ctx, key); deleteErr != nil {
			srv.log(ctx).Warn("Failed to delete orphaned photo",
				slog.String("key", key), slog.Any("error", deleteErr))
		}

		return "", err
	}

	srv.log(ctx).Info("Profile photo stored",
		slog.String("userID", userID),
		slog.String("key", key),
		slog.String("size", util.FormatBytes(size)))

	return key, nil
}

// RegisterDevice stores a push device registration for the user.
func (srv *profileService) RegisterDevice(ctx context.Context, userID string, input *usecase.RegisterDeviceInput) error {
	if input.FCMToken == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("fcm token is required")
	}

	device := &entity.UserDevice{
		UserID:       userID,
		FCMToken:     input.FCMToken,
		Platform:     input.Platform,
		RegisteredAt: srv.now(),
	}

	return errors.Wrap(srv.deviceRepo.Register(ctx, device), "failed to register device")
}

// ShareQR renders the user's profile-share QR code as PNG bytes.
func (srv *profileService) ShareQR(ctx context.Context, userID string) ([]byte, error) {
	if _, err := srv.GetProfile(ctx, userID); err != nil {
		return nil, err
	}

	png, err := srv.qrSvc.GenerateProfileQR(userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate profile QR code")
	}

	return png, nil
}

// mutateProfile runs a read-modify-save on the profile inside one
// transaction.
func (srv *profileService) mutateProfile(ctx context.Context, userID string, mutate func(*entity.User)) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("update profile")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		mutate(user)
		user.UpdatedAt = srv.now()

		return errors.Wrap(userRepo.Save(ctx, user), "failed to save profile")
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute profile update transaction")
	}

	return nil
}
