package badgerstore

import (
	"context"
	"encoding/json"

	"flint/internal/domain/entity"
	"flint/internal/domain/repository"
	"flint/internal/errors"
)

// userRepository implements the domain.UserRepository interface on Badger.
type userRepository struct {
	kvStore
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{kvStore{db: store.db}}
}

func userKey(id string) []byte {
	return []byte(prefixUser + id)
}

// Create persists a new user profile.
func (repo *userRepository) Create(_ context.Context, user *entity.User) error {
	return repo.createJSON(userKey(user.ID), user)
}

// FindByID retrieves a single profile by its ID.
func (repo *userRepository) FindByID(_ context.Context, id string) (*entity.User, error) {
	var user entity.User
	if err := repo.getJSON(userKey(id), &user, repository.ErrUserNotFound); err != nil {
		return nil, err
	}

	return &user, nil
}

// Save replaces the stored profile document.
func (repo *userRepository) Save(_ context.Context, user *entity.User) error {
	return repo.setJSON(userKey(user.ID), user)
}

// ListCandidates retrieves every profile except excludeID.
func (repo *userRepository) ListCandidates(_ context.Context, excludeID string) ([]*entity.User, error) {
	var users []*entity.User
	err := repo.scanJSON([]byte(prefixUser), func(val []byte) error {
		var user entity.User
		if err := json.Unmarshal(val, &user); err != nil {
			return errors.Wrap(err, "failed to decode user document")
		}
		if user.ID != excludeID {
			users = append(users, &user)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return users, nil
}
