package badgerstore

import (
	"context"
	"encoding/json"

	"flint/internal/domain/entity"
	"flint/internal/domain/repository"
	"flint/internal/errors"
)

// deviceRepository implements the domain.DeviceRepository interface on Badger.
type deviceRepository struct {
	kvStore
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(store *Store) repository.DeviceRepository {
	return &deviceRepository{kvStore{db: store.db}}
}

// The key nests the token under the user so re-registering overwrites and
// one prefix scan lists a user's devices.
func deviceKey(userID, token string) []byte {
	return []byte(prefixDevice + userID + "/" + token)
}

func devicePrefix(userID string) []byte {
	return []byte(prefixDevice + userID + "/")
}

// Register stores a device token for a user.
func (repo *deviceRepository) Register(_ context.Context, device *entity.UserDevice) error {
	return repo.setJSON(deviceKey(device.UserID, device.FCMToken), device)
}

// FindByUser retrieves all registered devices for a user.
func (repo *deviceRepository) FindByUser(_ context.Context, userID string) ([]*entity.UserDevice, error) {
	var devices []*entity.UserDevice
	err := repo.scanJSON(devicePrefix(userID), func(val []byte) error {
		var device entity.UserDevice
		if err := json.Unmarshal(val, &device); err != nil {
			return errors.Wrap(err, "failed to decode device document")
		}
		devices = append(devices, &device)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return devices, nil
}

// RemoveTokens deletes registrations whose tokens the push service reported
// invalid.
func (repo *deviceRepository) RemoveTokens(_ context.Context, userID string, tokens []string) error {
	for _, token := range tokens {
		if err := repo.delete(deviceKey(userID, token)); err != nil {
			return err
		}
	}

	return nil
}
