package impl

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"flint/internal/domain/entity"
	domainerrors "flint/internal/domain/errors"
	"flint/internal/domain/repository"
	mockRepo "flint/internal/mocks/repository"
	mockSvc "flint/internal/mocks/service"
	"flint/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProfileServiceForTest(t *testing.T, f *txFixture) (*profileService, *mockRepo.MockDeviceRepository, *mockSvc.MockMediaStorage, *mockSvc.MockQRCodeService) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockMedia := mockSvc.NewMockMediaStorage(t)
	mockQRSvc := mockSvc.NewMockQRCodeService(t)

	svc := NewProfileService(ProfileServiceParams{
		TxManager:  f.Manager,
		UserRepo:   f.User,
		DeviceRepo: mockDeviceRepo,
		Media:      mockMedia,
		QRSvc:      mockQRSvc,
		Logger:     newDiscardLogger(),
	}).(*profileService)

	return svc, mockDeviceRepo, mockMedia, mockQRSvc
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	f := newTxFixture(t)
	svc, _, _, _ := newProfileServiceForTest(t, f)

	ctx := context.Background()
	f.User.EXPECT().FindByID(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	_, err := svc.GetProfile(ctx, "ghost")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestProfileService_CreateProfile_InitializesLikeSets(t *testing.T) {
	f := newTxFixture(t)
	svc, _, _, _ := newProfileServiceForTest(t, f)

	ctx := context.Background()
	f.User.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := svc.CreateProfile(ctx, &entity.User{ID: "alice", Name: "Alice"})
	require.NoError(t, err)

	assert.NotNil(t, user.Likes)
	assert.Empty(t, user.Likes)
	assert.NotNil(t, user.LikedBy)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestProfileService_UpdateProfile_PartialEdit(t *testing.T) {
	f := newTxFixture(t)
	svc, _, _, _ := newProfileServiceForTest(t, f)

	ctx := context.Background()
	alice := &entity.User{ID: "alice", Name: "Alice", Bio: "old bio", Likes: []string{"bob"}}

	f.User.EXPECT().FindByID(ctx, "alice").Return(alice, nil)
	f.User.EXPECT().Save(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	bio := "new bio"
	updated, err := svc.UpdateProfile(ctx, "alice", &usecase.UpdateProfileInput{Bio: &bio})
	require.NoError(t, err)

	assert.Equal(t, "new bio", updated.Bio)
	assert.Equal(t, "Alice", updated.Name)
	// Like edges survive a profile edit untouched.
	assert.Equal(t, []string{"bob"}, updated.Likes)
}

func TestProfileService_UpdateLocation(t *testing.T) {
	f := newTxFixture(t)
	svc, _, _, _ := newProfileServiceForTest(t, f)

	ctx := context.Background()
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	alice := &entity.User{ID: "alice"}

	f.User.EXPECT().FindByID(ctx, "alice").Return(alice, nil)
	f.User.EXPECT().Save(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	updated, err := svc.UpdateLocation(ctx, "alice", &usecase.UpdateLocationInput{
		Latitude:  49.2827,
		Longitude: -123.1207,
		IsVirtual: true,
	}, now)
	require.NoError(t, err)

	require.NotNil(t, updated.Location)
	assert.Equal(t, 49.2827, updated.Location.Latitude)
	assert.True(t, updated.Location.IsVirtual)
	assert.Equal(t, now, updated.Location.LastUpdated)
}

func TestProfileService_UploadPhoto(t *testing.T) {
	f := newTxFixture(t)
	svc, _, mockMedia, _ := newProfileServiceForTest(t, f)

	ctx := context.Background()
	alice := &entity.User{ID: "alice"}

	var storedKey string
	mockMedia.EXPECT().
		Save(ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "profiles/alice/")
		}), "image/jpeg", mock.Anything).
		Run(func(_ context.Context, key string, _ string, _ io.Reader) {
			storedKey = key
		}).
		Return(int64(2048), nil)

	f.User.EXPECT().FindByID(ctx, "alice").Return(alice, nil)
	f.User.EXPECT().Save(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	key, err := svc.UploadPhoto(ctx, "alice", "image/jpeg", strings.NewReader("jpeg bytes"))
	require.NoError(t, err)
	assert.Equal(t, storedKey, key)
	assert.Contains(t, alice.PhotoKeys, key)
}

func TestProfileService_UploadPhoto_CleansUpOrphanOnFailure(t *testing.T) {
	f := newTxFixture(t)
	svc, _, mockMedia, _ := newProfileServiceForTest(t, f)

	ctx := context.Background()

	mockMedia.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), "image/jpeg", mock.Anything).
		Return(int64(2048), nil)
	f.User.EXPECT().FindByID(ctx, "ghost").Return(nil, repository.ErrUserNotFound)
	mockMedia.EXPECT().Delete(ctx, mock.AnythingOfType("string")).Return(nil)

	_, err := svc.UploadPhoto(ctx, "ghost", "image/jpeg", strings.NewReader("jpeg bytes"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestProfileService_RegisterDevice(t *testing.T) {
	f := newTxFixture(t)
	svc, mockDeviceRepo, _, _ := newProfileServiceForTest(t, f)

	ctx := context.Background()

	err := svc.RegisterDevice(ctx, "alice", &usecase.RegisterDeviceInput{Platform: "ios"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	mockDeviceRepo.EXPECT().
		Register(ctx, mock.MatchedBy(func(device *entity.UserDevice) bool {
			return device.UserID == "alice" && device.FCMToken == "token-1"
		})).
		Return(nil)

	err = svc.RegisterDevice(ctx, "alice", &usecase.RegisterDeviceInput{FCMToken: "token-1", Platform: "ios"})
	require.NoError(t, err)
}

func TestProfileService_ShareQR(t *testing.T) {
	f := newTxFixture(t)
	svc, _, _, mockQRSvc := newProfileServiceForTest(t, f)

	ctx := context.Background()
	alice := &entity.User{ID: "alice"}

	f.User.EXPECT().FindByID(ctx, "alice").Return(alice, nil)
	mockQRSvc.EXPECT().GenerateProfileQR("alice").Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)

	png, err := svc.ShareQR(ctx, "alice")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
