package badgerstore

import (
	"context"
	"encoding/json"

	"flint/internal/domain/entity"
	"flint/internal/domain/repository"
	"flint/internal/errors"
)

// eventSink receives match changes as writes happen. The standalone
// repository publishes straight to the hub; the transactional one defers
// publication until the transaction commits.
type eventSink func(repository.MatchChange)

// matchRepository implements the domain.MatchRepository interface on Badger.
type matchRepository struct {
	kvStore
	events eventSink
}

// NewMatchRepository is the constructor for matchRepository.
func NewMatchRepository(store *Store) repository.MatchRepository {
	return &matchRepository{
		kvStore: kvStore{db: store.db},
		events:  store.hub.publish,
	}
}

func matchKey(id string) []byte {
	return []byte(prefixMatch + id)
}

// Create persists a new match record.
func (repo *matchRepository) Create(_ context.Context, match *entity.Match) error {
	if err := repo.createJSON(matchKey(match.ID), match); err != nil {
		return err
	}
	repo.events(repository.MatchChange{Match: match})

	return nil
}

// FindByID retrieves a match by its canonical pair key.
func (repo *matchRepository) FindByID(_ context.Context, id string) (*entity.Match, error) {
	var match entity.Match
	if err := repo.getJSON(matchKey(id), &match, repository.ErrMatchNotFound); err != nil {
		return nil, err
	}

	return &match, nil
}

// FindByPair retrieves every match record holding the unordered pair. A full
// scan, because legacy records may live under a non-canonical ID.
func (repo *matchRepository) FindByPair(_ context.Context, a, b string) ([]*entity.Match, error) {
	return repo.collect(func(match *entity.Match) bool {
		return match.HasParticipant(a) && match.HasParticipant(b)
	})
}

// FindByUser retrieves all matches the user participates in.
func (repo *matchRepository) FindByUser(_ context.Context, userID string) ([]*entity.Match, error) {
	return repo.collect(func(match *entity.Match) bool {
		return match.HasParticipant(userID)
	})
}

// Save replaces the stored match document.
func (repo *matchRepository) Save(_ context.Context, match *entity.Match) error {
	if err := repo.setJSON(matchKey(match.ID), match); err != nil {
		return err
	}
	repo.events(repository.MatchChange{Match: match})

	return nil
}

// Delete removes a match record by ID.
func (repo *matchRepository) Delete(ctx context.Context, id string) error {
	match, err := repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrMatchNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := repo.delete(matchKey(id)); err != nil {
		return err
	}
	repo.events(repository.MatchChange{Match: match, Deleted: true})

	return nil
}

func (repo *matchRepository) collect(keep func(*entity.Match) bool) ([]*entity.Match, error) {
	var matches []*entity.Match
	err := repo.scanJSON([]byte(prefixMatch), func(val []byte) error {
		var match entity.Match
		if err := json.Unmarshal(val, &match); err != nil {
			return errors.Wrap(err, "failed to decode match document")
		}
		if keep(&match) {
			matches = append(matches, &match)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return matches, nil
}
