package usecase

import (
	"context"
	"time"

	"flint/internal/domain/entity"

	"github.com/google/uuid"
)

// ScheduleReminderInput is the payload for creating a reminder.
type ScheduleReminderInput struct {
	MatchID     string             `json:"match_id,omitempty"`
	SubjectName string             `json:"subject_name"`
	PlaceName   string             `json:"place_name"`
	Latitude    float64            `json:"latitude"`
	Longitude   float64            `json:"longitude"`
	EventTime   time.Time          `json:"event_time"`
	AlertOffset entity.AlertOffset `json:"alert_offset"`
}

// ReminderUsecase schedules date reminders and keeps their status in step
// with wall-clock time.
type ReminderUsecase interface {
	// Schedule creates and persists a reminder owned by ownerID. An alert
	// time already in the past is accepted; the alert simply fires on the
	// next sweep.
	Schedule(ctx context.Context, ownerID string, input *ScheduleReminderInput) (*entity.Reminder, error)

	// ListReminders returns the owner's reminders, statuses reconciled
	// against the current time.
	ListReminders(ctx context.Context, ownerID string) ([]*entity.Reminder, error)

	// Delete removes a reminder. Only the owner may delete it.
	Delete(ctx context.Context, ownerID string, reminderID uuid.UUID) error

	// SweepStatuses persists the Pending -> Completed transition for every
	// reminder whose event time has passed, and fires due alert pushes.
	// Returns the number of reminders completed.
	SweepStatuses(ctx context.Context, now time.Time) (int, error)
}

// ComputeAlertTime returns the instant the alert for eventTime should fire
// under the given offset; ok is false only for the explicit none offset.
// Pure arithmetic, never fails.
func ComputeAlertTime(eventTime time.Time, offset entity.AlertOffset) (time.Time, bool) {
	d, ok := offset.Duration()
	if !ok {
		return time.Time{}, false
	}

	return eventTime.Add(-d), true
}

// ReconcileStatus returns a copy of the reminder with status Completed when
// now is past the event time and the reminder is still pending; otherwise it
// returns the input unchanged. Monotonic: a completed reminder never goes
// back to pending, whatever now says.
func ReconcileStatus(reminder *entity.Reminder, now time.Time) *entity.Reminder {
	if reminder.Status != entity.ReminderPending || !now.After(reminder.EventTime) {
		return reminder
	}

	completed := *reminder
	completed.Status = entity.ReminderCompleted
	completed.UpdatedAt = now

	return &completed
}
