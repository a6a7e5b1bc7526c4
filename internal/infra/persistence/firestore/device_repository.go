package firestore

import (
	"context"

	"flint/internal/domain/entity"
	"flint/internal/domain/repository"
	"flint/internal/errors"

	fsLib "cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// deviceRepository implements the domain.DeviceRepository interface on Firestore.
type deviceRepository struct {
	docStore
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(client *fsLib.Client) repository.DeviceRepository {
	return &deviceRepository{docStore{client: client}}
}

// The document ID combines user and token so re-registering the same token
// overwrites the previous record instead of duplicating it.
func (repo *deviceRepository) doc(userID, token string) *fsLib.DocumentRef {
	return repo.client.Collection(colDevices).Doc(userID + "__" + token)
}

// Register stores a device token for a user.
func (repo *deviceRepository) Register(ctx context.Context, device *entity.UserDevice) error {
	if err := repo.set(ctx, repo.doc(device.UserID, device.FCMToken), device); err != nil {
		return errors.Wrap(err, "failed to register device")
	}

	return nil
}

// FindByUser retrieves all registered devices for a user.
func (repo *deviceRepository) FindByUser(ctx context.Context, userID string) ([]*entity.UserDevice, error) {
	query := repo.client.Collection(colDevices).Where("userId", "==", userID)

	iter := repo.documents(ctx, query)
	defer iter.Stop()

	var devices []*entity.UserDevice
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to find devices by user")
		}

		var device entity.UserDevice
		if err := snap.DataTo(&device); err != nil {
			return nil, errors.Wrap(err, "failed to decode device document")
		}

		devices = append(devices, &device)
	}

	return devices, nil
}

// RemoveTokens deletes registrations whose tokens the push service reported
// invalid.
func (repo *deviceRepository) RemoveTokens(ctx context.Context, userID string, tokens []string) error {
	for _, token := range tokens {
		if err := repo.del(ctx, repo.doc(userID, token)); err != nil {
			return errors.Wrap(err, "failed to remove device token")
		}
	}

	return nil
}
