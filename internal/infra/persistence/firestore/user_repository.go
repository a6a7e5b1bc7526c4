package firestore

import (
	"context"

	"flint/internal/domain/entity"
	"flint/internal/domain/repository"
	"flint/internal/errors"

	fsLib "cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// userRepository implements the domain.UserRepository interface on Firestore.
type userRepository struct {
	docStore
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(client *fsLib.Client) repository.UserRepository {
	return &userRepository{docStore{client: client}}
}

func (repo *userRepository) doc(id string) *fsLib.DocumentRef {
	return repo.client.Collection(colUsers).Doc(id)
}

// Create persists a new user profile. Fails when a profile with the same ID
// already exists.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if err := repo.create(ctx, repo.doc(user.ID), user); err != nil {
		return errors.Wrap(err, "failed to create user")
	}

	return nil
}

// FindByID retrieves a single profile by its ID.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	snap, err := repo.get(ctx, repo.doc(id))
	if err != nil {
		return nil, mapError(err, repository.ErrUserNotFound, "failed to find user by id")
	}

	var user entity.User
	if err := snap.DataTo(&user); err != nil {
		return nil, errors.Wrap(err, "failed to decode user document")
	}

	return &user, nil
}

// Save replaces the stored profile document.
func (repo *userRepository) Save(ctx context.Context, user *entity.User) error {
	if err := repo.set(ctx, repo.doc(user.ID), user); err != nil {
		return mapError(err, repository.ErrUserNotFound, "failed to save user")
	}

	return nil
}

// ListCandidates retrieves every profile except excludeID.
func (repo *userRepository) ListCandidates(ctx context.Context, excludeID string) ([]*entity.User, error) {
	iter := repo.documents(ctx, repo.client.Collection(colUsers).Query)
	defer iter.Stop()

	var users []*entity.User
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list candidates")
		}

		var user entity.User
		if err := snap.DataTo(&user); err != nil {
			return nil, errors.Wrap(err, "failed to decode user document")
		}
		if user.ID == excludeID {
			continue
		}

		users = append(users, &user)
	}

	return users, nil
}
