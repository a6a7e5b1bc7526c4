package usecase

import (
	"testing"
	"time"

	"flint/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeAlertTime(t *testing.T) {
	t.Parallel()

	eventTime := time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		offset entity.AlertOffset
		want   time.Time
		wantOK bool
	}{
		{name: "thirty minutes before", offset: entity.Alert30Min, want: eventTime.Add(-30 * time.Minute), wantOK: true},
		{name: "at event time", offset: entity.AlertAtTime, want: eventTime, wantOK: true},
		{name: "one week before", offset: entity.Alert1Week, want: eventTime.AddDate(0, 0, -7), wantOK: true},
		{name: "none wants no alert", offset: entity.AlertNone, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := ComputeAlertTime(eventTime, tt.offset)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestReconcileStatus(t *testing.T) {
	t.Parallel()

	eventTime := time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC)

	t.Run("pending stays pending before event time", func(t *testing.T) {
		t.Parallel()

		reminder := &entity.Reminder{Status: entity.ReminderPending, EventTime: eventTime}
		got := ReconcileStatus(reminder, eventTime.Add(-time.Minute))
		assert.Same(t, reminder, got)
		assert.Equal(t, entity.ReminderPending, got.Status)
	})

	t.Run("pending stays pending at the exact event time", func(t *testing.T) {
		t.Parallel()

		reminder := &entity.Reminder{Status: entity.ReminderPending, EventTime: eventTime}
		got := ReconcileStatus(reminder, eventTime)
		assert.Same(t, reminder, got)
	})

	t.Run("pending completes after event time", func(t *testing.T) {
		t.Parallel()

		reminder := &entity.Reminder{Status: entity.ReminderPending, EventTime: eventTime}
		got := ReconcileStatus(reminder, eventTime.Add(time.Second))
		require.NotSame(t, reminder, got)
		assert.Equal(t, entity.ReminderCompleted, got.Status)
		// The input is never mutated.
		assert.Equal(t, entity.ReminderPending, reminder.Status)
	})

	t.Run("completed never reverts", func(t *testing.T) {
		t.Parallel()

		reminder := &entity.Reminder{Status: entity.ReminderCompleted, EventTime: eventTime}
		got := ReconcileStatus(reminder, eventTime.Add(-time.Hour))
		assert.Same(t, reminder, got)
		assert.Equal(t, entity.ReminderCompleted, got.Status)
	})
}
