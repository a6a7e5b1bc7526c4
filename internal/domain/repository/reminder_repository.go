package repository

import (
	"context"
	"time"

	"flint/internal/domain/entity"
	"flint/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for reminder persistence.
var (
	// ErrReminderNotFound is returned when a reminder does not exist.
	ErrReminderNotFound = errors.New("reminder not found")
)

// ReminderRepository defines the interface for reminder store operations.
type ReminderRepository interface {
	// Create persists a new reminder.
	Create(ctx context.Context, reminder *entity.Reminder) error

	// FindByID retrieves a reminder by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Reminder, error)

	// FindByOwner retrieves all reminders created by the user.
	FindByOwner(ctx context.Context, ownerID string) ([]*entity.Reminder, error)

	// FindPendingDue retrieves reminders still pending whose event time has
	// passed. Used by the status sweep.
	FindPendingDue(ctx context.Context, now time.Time) ([]*entity.Reminder, error)

	// FindAlertsDue retrieves pending reminders whose alert time has passed
	// and whose alert push has not been sent yet.
	FindAlertsDue(ctx context.Context, now time.Time) ([]*entity.Reminder, error)

	// Save replaces the stored reminder document.
	Save(ctx context.Context, reminder *entity.Reminder) error

	// Delete removes a reminder by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
