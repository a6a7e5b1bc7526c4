package repository

import (
	"context"

	"flint/internal/domain/entity"
	"flint/internal/errors"
)

// Domain-specific errors for match persistence.
var (
	// ErrMatchNotFound is returned when a match record does not exist.
	ErrMatchNotFound = errors.New("match not found")
)

// MatchRepository defines the interface for match-record store operations.
type MatchRepository interface {
	// Create persists a new match record.
	Create(ctx context.Context, match *entity.Match) error

	// FindByID retrieves a match by its canonical pair key.
	FindByID(ctx context.Context, id string) (*entity.Match, error)

	// FindByPair retrieves every match record holding the unordered pair
	// (a, b). A healthy store returns at most one; more than one is a data
	// integrity fault the caller must repair and surface.
	FindByPair(ctx context.Context, a, b string) ([]*entity.Match, error)

	// FindByUser retrieves all matches the user participates in.
	FindByUser(ctx context.Context, userID string) ([]*entity.Match, error)

	// Save replaces the stored match document.
	Save(ctx context.Context, match *entity.Match) error

	// Delete removes a match record by ID.
	Delete(ctx context.Context, id string) error
}
