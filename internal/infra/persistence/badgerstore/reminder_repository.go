package badgerstore

import (
	"context"
	"encoding/json"
	"time"

	"flint/internal/domain/entity"
	"flint/internal/domain/repository"
	"flint/internal/errors"

	"github.com/google/uuid"
)

// reminderRepository implements the domain.ReminderRepository interface on Badger.
type reminderRepository struct {
	kvStore
}

// NewReminderRepository is the constructor for reminderRepository.
func NewReminderRepository(store *Store) repository.ReminderRepository {
	return &reminderRepository{kvStore{db: store.db}}
}

func reminderKey(id uuid.UUID) []byte {
	return []byte(prefixReminder + id.String())
}

// Create persists a new reminder.
func (repo *reminderRepository) Create(_ context.Context, reminder *entity.Reminder) error {
	return repo.createJSON(reminderKey(reminder.ID), reminder)
}

// FindByID retrieves a reminder by its ID.
func (repo *reminderRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Reminder, error) {
	var reminder entity.Reminder
	if err := repo.getJSON(reminderKey(id), &reminder, repository.ErrReminderNotFound); err != nil {
		return nil, err
	}

	return &reminder, nil
}

// FindByOwner retrieves all reminders created by the user.
func (repo *reminderRepository) FindByOwner(_ context.Context, ownerID string) ([]*entity.Reminder, error) {
	return repo.collect(func(reminder *entity.Reminder) bool {
		return reminder.OwnerID == ownerID
	})
}

// FindPendingDue retrieves pending reminders whose event time has passed.
func (repo *reminderRepository) FindPendingDue(_ context.Context, now time.Time) ([]*entity.Reminder, error) {
	return repo.collect(func(reminder *entity.Reminder) bool {
		return reminder.Status == entity.ReminderPending && !reminder.EventTime.After(now)
	})
}

// FindAlertsDue retrieves pending reminders whose alert time has passed and
// whose alert push has not been sent yet.
func (repo *reminderRepository) FindAlertsDue(_ context.Context, now time.Time) ([]*entity.Reminder, error) {
	return repo.collect(func(reminder *entity.Reminder) bool {
		if reminder.Status != entity.ReminderPending || reminder.NotificationHandle != "" {
			return false
		}
		alertAt, ok := reminder.AlertTime()

		return ok && !alertAt.After(now)
	})
}

// Save replaces the stored reminder document.
func (repo *reminderRepository) Save(_ context.Context, reminder *entity.Reminder) error {
	return repo.setJSON(reminderKey(reminder.ID), reminder)
}

// Delete removes a reminder by ID.
func (repo *reminderRepository) Delete(_ context.Context, id uuid.UUID) error {
	return repo.delete(reminderKey(id))
}

func (repo *reminderRepository) collect(keep func(*entity.Reminder) bool) ([]*entity.Reminder, error) {
	var reminders []*entity.Reminder
	err := repo.scanJSON([]byte(prefixReminder), func(val []byte) error {
		var reminder entity.Reminder
		if err := json.Unmarshal(val, &reminder); err != nil {
			return errors.Wrap(err, "failed to decode reminder document")
		}
		if keep(&reminder) {
			reminders = append(reminders, &reminder)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return reminders, nil
}
