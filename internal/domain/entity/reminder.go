package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReminderStatus is the lifecycle state of a reminder. The only transition
// is Pending to Completed, taken once, when wall-clock time passes EventTime.
type ReminderStatus string

const (
	ReminderPending   ReminderStatus = "pending"
	ReminderCompleted ReminderStatus = "completed"
)

// Reminder is a scheduled alert for a planned date, exclusively owned by the
// user who created it.
type Reminder struct {
	ID      uuid.UUID `json:"id" firestore:"id"`
	OwnerID string    `json:"owner_id" firestore:"ownerId"`

	// MatchID optionally ties the reminder to the match the date was
	// planned from.
	MatchID string `json:"match_id,omitempty" firestore:"matchId"`

	SubjectName string  `json:"subject_name" firestore:"subjectName"`
	PlaceName   string  `json:"place_name" firestore:"placeName"`
	Latitude    float64 `json:"latitude" firestore:"latitude"`
	Longitude   float64 `json:"longitude" firestore:"longitude"`

	EventTime   time.Time   `json:"event_time" firestore:"eventTime"`
	AlertOffset AlertOffset `json:"alert_offset" firestore:"alertOffset"`

	// NotificationHandle is the opaque ID of the alert push once it has
	// been sent; empty until then.
	NotificationHandle string `json:"notification_handle,omitempty" firestore:"notificationHandle"`

	Status    ReminderStatus `json:"status" firestore:"status"`
	CreatedAt time.Time      `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time      `json:"updated_at" firestore:"updatedAt"`
}

// AlertTime returns the instant the alert should fire, or ok=false when the
// offset is AlertNone and no alert is wanted.
func (r *Reminder) AlertTime() (time.Time, bool) {
	d, ok := r.AlertOffset.Duration()
	if !ok {
		return time.Time{}, false
	}

	return r.EventTime.Add(-d), true
}
