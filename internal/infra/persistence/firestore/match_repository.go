package firestore

import (
	"context"

	"flint/internal/domain/entity"
	"flint/internal/domain/repository"
	"flint/internal/errors"

	fsLib "cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// matchRepository implements the domain.MatchRepository interface on Firestore.
type matchRepository struct {
	docStore
}

// NewMatchRepository is the constructor for matchRepository.
func NewMatchRepository(client *fsLib.Client) repository.MatchRepository {
	return &matchRepository{docStore{client: client}}
}

func (repo *matchRepository) doc(id string) *fsLib.DocumentRef {
	return repo.client.Collection(colMatches).Doc(id)
}

// Create persists a new match record.
func (repo *matchRepository) Create(ctx context.Context, match *entity.Match) error {
	if err := repo.create(ctx, repo.doc(match.ID), match); err != nil {
		return errors.Wrap(err, "failed to create match")
	}

	return nil
}

// FindByID retrieves a match by its canonical pair key.
func (repo *matchRepository) FindByID(ctx context.Context, id string) (*entity.Match, error) {
	snap, err := repo.get(ctx, repo.doc(id))
	if err != nil {
		return nil, mapError(err, repository.ErrMatchNotFound, "failed to find match by id")
	}

	var match entity.Match
	if err := snap.DataTo(&match); err != nil {
		return nil, errors.Wrap(err, "failed to decode match document")
	}

	return &match, nil
}

// FindByPair retrieves every match record holding the unordered pair. The
// query is by the sorted users array rather than the document ID so that
// legacy records created under a non-canonical ID are found too.
func (repo *matchRepository) FindByPair(ctx context.Context, a, b string) ([]*entity.Match, error) {
	if b < a {
		a, b = b, a
	}

	query := repo.client.Collection(colMatches).Where("users", "==", []string{a, b})

	return repo.collect(ctx, query, "failed to find matches by pair")
}

// FindByUser retrieves all matches the user participates in.
func (repo *matchRepository) FindByUser(ctx context.Context, userID string) ([]*entity.Match, error) {
	query := repo.client.Collection(colMatches).Where("users", "array-contains", userID)

	return repo.collect(ctx, query, "failed to find matches by user")
}

// Save replaces the stored match document.
func (repo *matchRepository) Save(ctx context.Context, match *entity.Match) error {
	if err := repo.set(ctx, repo.doc(match.ID), match); err != nil {
		return mapError(err, repository.ErrMatchNotFound, "failed to save match")
	}

	return nil
}

// Delete removes a match record by ID.
func (repo *matchRepository) Delete(ctx context.Context, id string) error {
	if err := repo.del(ctx, repo.doc(id)); err != nil {
		return mapError(err, repository.ErrMatchNotFound, "failed to delete match")
	}

	return nil
}

func (repo *matchRepository) collect(ctx context.Context, query fsLib.Query, msg string) ([]*entity.Match, error) {
	iter := repo.documents(ctx, query)
	defer iter.Stop()

	var matches []*entity.Match
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, msg)
		}

		var match entity.Match
		if err := snap.DataTo(&match); err != nil {
			return nil, errors.Wrap(err, "failed to decode match document")
		}

		matches = append(matches, &match)
	}

	return matches, nil
}
