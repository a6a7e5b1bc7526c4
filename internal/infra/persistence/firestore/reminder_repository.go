package firestore

import (
	"context"
	"time"

	"flint/internal/domain/entity"
	"flint/internal/domain/repository"
	"flint/internal/errors"

	fsLib "cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
)

// reminderRepository implements the domain.ReminderRepository interface on Firestore.
type reminderRepository struct {
	docStore
}

// NewReminderRepository is the constructor for reminderRepository.
func NewReminderRepository(client *fsLib.Client) repository.ReminderRepository {
	return &reminderRepository{docStore{client: client}}
}

func (repo *reminderRepository) doc(id uuid.UUID) *fsLib.DocumentRef {
	return repo.client.Collection(colReminders).Doc(id.String())
}

// Create persists a new reminder.
func (repo *reminderRepository) Create(ctx context.Context, reminder *entity.Reminder) error {
	if err := repo.create(ctx, repo.doc(reminder.ID), reminder); err != nil {
		return errors.Wrap(err, "failed to create reminder")
	}

	return nil
}

// FindByID retrieves a reminder by its ID.
func (repo *reminderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reminder, error) {
	snap, err := repo.get(ctx, repo.doc(id))
	if err != nil {
		return nil, mapError(err, repository.ErrReminderNotFound, "failed to find reminder by id")
	}

	var reminder entity.Reminder
	if err := snap.DataTo(&reminder); err != nil {
		return nil, errors.Wrap(err, "failed to decode reminder document")
	}

	return &reminder, nil
}

// FindByOwner retrieves all reminders created by the user.
func (repo *reminderRepository) FindByOwner(ctx context.Context, ownerID string) ([]*entity.Reminder, error) {
	query := repo.client.Collection(colReminders).Where("ownerId", "==", ownerID)

	return repo.collect(ctx, query, nil, "failed to find reminders by owner")
}

// FindPendingDue retrieves pending reminders whose event time has passed.
func (repo *reminderRepository) FindPendingDue(ctx context.Context, now time.Time) ([]*entity.Reminder, error) {
	query := repo.client.Collection(colReminders).
		Where("status", "==", string(entity.ReminderPending)).
		Where("eventTime", "<=", now)

	return repo.collect(ctx, query, nil, "failed to find pending reminders")
}

// FindAlertsDue retrieves pending reminders whose alert time has passed and
// whose alert push has not been sent yet. The alert instant is derived from
// the offset rather than stored, so the cutoff is applied after decoding.
func (repo *reminderRepository) FindAlertsDue(ctx context.Context, now time.Time) ([]*entity.Reminder, error) {
	query := repo.client.Collection(colReminders).
		Where("status", "==", string(entity.ReminderPending)).
		Where("notificationHandle", "==", "")

	keep := func(reminder *entity.Reminder) bool {
		alertAt, ok := reminder.AlertTime()

		return ok && !alertAt.After(now)
	}

	return repo.collect(ctx, query, keep, "failed to find due alerts")
}

// Save replaces the stored reminder document.
func (repo *reminderRepository) Save(ctx context.Context, reminder *entity.Reminder) error {
	if err := repo.set(ctx, repo.doc(reminder.ID), reminder); err != nil {
		return mapError(err, repository.ErrReminderNotFound, "failed to save reminder")
	}

	return nil
}

// Delete removes a reminder by ID.
func (repo *reminderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.del(ctx, repo.doc(id)); err != nil {
		return mapError(err, repository.ErrReminderNotFound, "failed to delete reminder")
	}

	return nil
}

func (repo *reminderRepository) collect(ctx context.Context, query fsLib.Query, keep func(*entity.Reminder) bool, msg string) ([]*entity.Reminder, error) {
	iter := repo.documents(ctx, query)
	defer iter.Stop()

	var reminders []*entity.Reminder
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, msg)
		}

		var reminder entity.Reminder
		if err := snap.DataTo(&reminder); err != nil {
			return nil, errors.Wrap(err, "failed to decode reminder document")
		}
		if keep != nil && !keep(&reminder) {
			continue
		}

		reminders = append(reminders, &reminder)
	}

	return reminders, nil
}
