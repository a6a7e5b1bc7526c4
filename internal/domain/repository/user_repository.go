// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"flint/internal/domain/entity"
	"flint/internal/errors"
)

// Domain-specific errors for profile persistence.
var (
	// ErrUserNotFound is returned when a user profile does not exist.
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository defines the interface for profile-related store operations.
// Like-set edits go through Save after a read in the same transaction; the
// transaction scope is what keeps the two sides of a like edge consistent.
type UserRepository interface {
	// Create persists a new user profile.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a profile by its ID.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// Save replaces the stored profile document.
	Save(ctx context.Context, user *entity.User) error

	// ListCandidates retrieves every profile except excludeID. The engine
	// filters and orders; the store just hands the candidate set over.
	ListCandidates(ctx context.Context, excludeID string) ([]*entity.User, error)
}
