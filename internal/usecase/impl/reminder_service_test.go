package impl

import (
	"context"
	"testing"
	"time"

	"flint/internal/domain/entity"
	domainerrors "flint/internal/domain/errors"
	"flint/internal/domain/repository"
	mockRepo "flint/internal/mocks/repository"
	mockSvc "flint/internal/mocks/service"
	"flint/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newReminderServiceForTest(t *testing.T) (*reminderService, *mockRepo.MockReminderRepository, *mockRepo.MockDeviceRepository, *mockSvc.MockNotificationService) {
	mockReminderRepo := mockRepo.NewMockReminderRepository(t)
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockNotificationSvc := mockSvc.NewMockNotificationService(t)

	svc := NewReminderService(ReminderServiceParams{
		ReminderRepo:    mockReminderRepo,
		DeviceRepo:      mockDeviceRepo,
		NotificationSvc: mockNotificationSvc,
		Logger:          newDiscardLogger(),
	}).(*reminderService)

	return svc, mockReminderRepo, mockDeviceRepo, mockNotificationSvc
}

func TestReminderService_Schedule(t *testing.T) {
	svc, mockReminderRepo, _, _ := newReminderServiceForTest(t)

	ctx := context.Background()
	eventTime := time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC)

	var created *entity.Reminder
	mockReminderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Reminder")).
		Run(func(_ context.Context, reminder *entity.Reminder) {
			created = reminder
		}).
		Return(nil)

	reminder, err := svc.Schedule(ctx, "alice", &usecase.ScheduleReminderInput{
		SubjectName: "Bob",
		PlaceName:   "Cafe Medina",
		Latitude:    49.2827,
		Longitude:   -123.1187,
		EventTime:   eventTime,
		AlertOffset: entity.Alert30Min,
	})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, reminder, created)
	assert.Equal(t, "alice", reminder.OwnerID)
	assert.Equal(t, entity.ReminderPending, reminder.Status)
	assert.NotEqual(t, uuid.Nil, reminder.ID)

	alertTime, ok := reminder.AlertTime()
	require.True(t, ok)
	assert.Equal(t, eventTime.Add(-30*time.Minute), alertTime)
}

func TestReminderService_Schedule_RejectsUnknownOffset(t *testing.T) {
	svc, _, _, _ := newReminderServiceForTest(t)

	_, err := svc.Schedule(context.Background(), "alice", &usecase.ScheduleReminderInput{
		SubjectName: "Bob",
		EventTime:   time.Now().Add(time.Hour),
		AlertOffset: entity.AlertOffset("fortnight"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestReminderService_Schedule_AcceptsPastAlertTime(t *testing.T) {
	svc, mockReminderRepo, _, _ := newReminderServiceForTest(t)

	ctx := context.Background()
	mockReminderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Reminder")).Return(nil)

	// Event in ten minutes with a 30 minute offset: the alert instant is
	// already in the past, which is accepted and fires on the next sweep.
	reminder, err := svc.Schedule(ctx, "alice", &usecase.ScheduleReminderInput{
		SubjectName: "Bob",
		PlaceName:   "Cafe Medina",
		EventTime:   time.Now().Add(10 * time.Minute),
		AlertOffset: entity.Alert30Min,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ReminderPending, reminder.Status)
}

func TestReminderService_ListReminders_LazilyCompletesPastDue(t *testing.T) {
	svc, mockReminderRepo, _, _ := newReminderServiceForTest(t)

	ctx := context.Background()
	now := time.Now()

	past := &entity.Reminder{
		ID:        uuid.New(),
		OwnerID:   "alice",
		EventTime: now.Add(-time.Hour),
		Status:    entity.ReminderPending,
	}
	upcoming := &entity.Reminder{
		ID:        uuid.New(),
		OwnerID:   "alice",
		EventTime: now.Add(time.Hour),
		Status:    entity.ReminderPending,
	}

	mockReminderRepo.EXPECT().
		FindByOwner(ctx, "alice").
		Return([]*entity.Reminder{past, upcoming}, nil)
	mockReminderRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.Reminder")).
		Run(func(_ context.Context, reminder *entity.Reminder) {
			assert.Equal(t, past.ID, reminder.ID)
			assert.Equal(t, entity.ReminderCompleted, reminder.Status)
		}).
		Return(nil)

	reminders, err := svc.ListReminders(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, reminders, 2)
	assert.Equal(t, entity.ReminderCompleted, reminders[0].Status)
	assert.Equal(t, entity.ReminderPending, reminders[1].Status)
}

func TestReminderService_Delete_OwnerOnly(t *testing.T) {
	svc, mockReminderRepo, _, _ := newReminderServiceForTest(t)

	ctx := context.Background()
	reminder := &entity.Reminder{ID: uuid.New(), OwnerID: "alice"}

	mockReminderRepo.EXPECT().FindByID(ctx, reminder.ID).Return(reminder, nil).Twice()

	err := svc.Delete(ctx, "mallory", reminder.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrReminderOwnershipViolation)

	mockReminderRepo.EXPECT().Delete(ctx, reminder.ID).Return(nil)
	err = svc.Delete(ctx, "alice", reminder.ID)
	require.NoError(t, err)
}

func TestReminderService_Delete_NotFound(t *testing.T) {
	svc, mockReminderRepo, _, _ := newReminderServiceForTest(t)

	ctx := context.Background()
	missing := uuid.New()
	mockReminderRepo.EXPECT().FindByID(ctx, missing).Return(nil, repository.ErrReminderNotFound)

	err := svc.Delete(ctx, "alice", missing)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrReminderNotFound)
}

func TestReminderService_SweepStatuses_FiresAlertsAndCompletes(t *testing.T) {
	svc, mockReminderRepo, mockDeviceRepo, mockNotificationSvc := newReminderServiceForTest(t)

	ctx := context.Background()
	now := time.Date(2026, 9, 12, 17, 45, 0, 0, time.UTC)

	alertDue := &entity.Reminder{
		ID:          uuid.New(),
		OwnerID:     "alice",
		SubjectName: "Bob",
		PlaceName:   "Cafe Medina",
		EventTime:   now.Add(15 * time.Minute),
		AlertOffset: entity.Alert30Min,
		Status:      entity.ReminderPending,
	}
	pastDue := &entity.Reminder{
		ID:        uuid.New(),
		OwnerID:   "carol",
		EventTime: now.Add(-time.Hour),
		Status:    entity.ReminderPending,
	}

	mockReminderRepo.EXPECT().FindAlertsDue(ctx, now).Return([]*entity.Reminder{alertDue}, nil)
	mockDeviceRepo.EXPECT().
		FindByUser(ctx, "alice").
		Return([]*entity.UserDevice{{UserID: "alice", FCMToken: "token-1"}}, nil)
	mockNotificationSvc.EXPECT().
		SendSingleNotification(ctx, "token-1", mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.Anything).
		Return("projects/flint/messages/123", nil)
	mockReminderRepo.EXPECT().
		Save(ctx, mock.MatchedBy(func(reminder *entity.Reminder) bool {
			return reminder.ID == alertDue.ID && reminder.NotificationHandle == "projects/flint/messages/123"
		})).
		Return(nil)

	mockReminderRepo.EXPECT().FindPendingDue(ctx, now).Return([]*entity.Reminder{pastDue}, nil)
	mockReminderRepo.EXPECT().
		Save(ctx, mock.MatchedBy(func(reminder *entity.Reminder) bool {
			return reminder.ID == pastDue.ID && reminder.Status == entity.ReminderCompleted
		})).
		Return(nil)

	completed, err := svc.SweepStatuses(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, completed)
}

func TestReminderService_SweepStatuses_SkipsAlertWithoutDevices(t *testing.T) {
	svc, mockReminderRepo, mockDeviceRepo, _ := newReminderServiceForTest(t)

	ctx := context.Background()
	now := time.Now()

	alertDue := &entity.Reminder{
		ID:          uuid.New(),
		OwnerID:     "alice",
		EventTime:   now.Add(15 * time.Minute),
		AlertOffset: entity.Alert30Min,
		Status:      entity.ReminderPending,
	}

	mockReminderRepo.EXPECT().FindAlertsDue(ctx, now).Return([]*entity.Reminder{alertDue}, nil)
	mockDeviceRepo.EXPECT().FindByUser(ctx, "alice").Return(nil, nil)
	mockReminderRepo.EXPECT().FindPendingDue(ctx, now).Return(nil, nil)

	completed, err := svc.SweepStatuses(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 0, completed)
}
