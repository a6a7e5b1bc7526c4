package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "flint/internal/delivery/context"
	"flint/internal/domain/entity"
	domainerrors "flint/internal/domain/errors"
	"flint/internal/domain/repository"
	"flint/internal/domain/service"
	"flint/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reminderService implements the ReminderUsecase interface. Reminders are
// single-owner documents, so plain repository calls suffice; no transaction
// scope is needed.
type reminderService struct {
	reminderRepo    repository.ReminderRepository
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	logger          *slog.Logger
	now             func() time.Time
}

// ReminderServiceParams holds dependencies for reminderService, injected by Fx.
type ReminderServiceParams struct {
	fx.In

	ReminderRepo    repository.ReminderRepository
	DeviceRepo      repository.DeviceRepository
	NotificationSvc service.NotificationService `optional:"true"`
	Logger          *slog.Logger
}

// NewReminderService is the constructor for reminderService.
func NewReminderService(params ReminderServiceParams) usecase.ReminderUsecase {
	return &reminderService{
		reminderRepo:    params.ReminderRepo,
		deviceRepo:      params.DeviceRepo,
		notificationSvc: params.NotificationSvc,
		logger:          params.Logger,
		now:             time.Now,
	}
}

func (srv *reminderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Schedule creates and persists a reminder owned by ownerID. An alert time
// already in the past is accepted; it fires on the next sweep.
func (srv *reminderService) Schedule(ctx context.Context, ownerID string, input *usecase.ScheduleReminderInput) (*entity.Reminder, error) {
	if !input.AlertOffset.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown alert offset")
	}
	if input.EventTime.IsZero() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("event time is required")
	}

	now := srv.now()
	reminder := &entity.Reminder{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		MatchID:     input.MatchID,
		SubjectName: input.SubjectName,
		PlaceName:   input.PlaceName,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		EventTime:   input.EventTime,
		AlertOffset: input.AlertOffset,
		Status:      entity.ReminderPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := srv.reminderRepo.Create(ctx, reminder); err != nil {
		return nil, errors.Wrap(err, "failed to create reminder")
	}

	srv.log(ctx).Debug("Reminder scheduled",
		slog.String("reminderID", reminder.ID.String()),
		slog.String("ownerID", ownerID),
		slog.Time("eventTime", reminder.EventTime))

	return reminder, nil
}

// ListReminders returns the owner's reminders, each reconciled against the
// current time. Reconciled transitions are persisted best-effort; the
// returned view is correct even if a save fails, and the sweep will retry.
func (srv *reminderService) ListReminders(ctx context.Context, ownerID string) ([]*entity.Reminder, error) {
	reminders, err := srv.reminderRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find reminders by owner")
	}

	now := srv.now()
	result := make([]*entity.Reminder, 0, len(reminders))
	for _, reminder := range reminders {
		reconciled := usecase.ReconcileStatus(reminder, now)
		if reconciled != reminder {
			if err := srv.reminderRepo.Save(ctx, reconciled); err != nil {
				srv.log(ctx).Warn("Failed to persist reminder completion",
					slog.String("reminderID", reminder.ID.String()), slog.Any("error", err))
			}
		}
		result = append(result, reconciled)
	}

	return result, nil
}

// Delete removes a reminder. Only the owner may delete it.
func (srv *reminderService) Delete(ctx context.Context, ownerID string, reminderID uuid.UUID) error {
	reminder, err := srv.reminderRepo.FindByID(ctx, reminderID)
	if errors.Is(err, repository.ErrReminderNotFound) {
		return domainerrors.ErrReminderNotFound.WrapMessage("delete reminder")
	}
	if err != nil {
		return errors.Wrap(err, "failed to find reminder")
	}

	if reminder.OwnerID != ownerID {
		return domainerrors.ErrReminderOwnershipViolation.WrapMessage("delete reminder")
	}

	return errors.Wrap(srv.reminderRepo.Delete(ctx, reminderID), "failed to delete reminder")
}

// SweepStatuses fires due alert pushes, then persists the Pending ->
// Completed transition for every reminder whose event time has passed.
// Returns the number of reminders completed.
func (srv *reminderService) SweepStatuses(ctx context.Context, now time.Time) (int, error) {
	srv.fireDueAlerts(ctx, now)

	pending, err := srv.reminderRepo.FindPendingDue(ctx, now)
	if err != nil {
		return 0, errors.Wrap(err, "failed to find pending due reminders")
	}

	completed := 0
	for _, reminder := range pending {
		reconciled := usecase.ReconcileStatus(reminder, now)
		if reconciled == reminder {
			continue
		}
		if err := srv.reminderRepo.Save(ctx, reconciled); err != nil {
			srv.log(ctx).Warn("Failed to persist reminder completion",
				slog.String("reminderID", reminder.ID.String()), slog.Any("error", err))

			continue
		}
		completed++
	}

	if completed > 0 {
		srv.log(ctx).Info("Reminder sweep completed reminders", slog.Int("count", completed))
	}

	return completed, nil
}

// fireDueAlerts sends the alert push for every pending reminder whose alert
// time has passed and records the push handle, so the alert fires at most
// once. Send failures are logged and retried on the next sweep.
func (srv *reminderService) fireDueAlerts(ctx context.Context, now time.Time) {
	if srv.notificationSvc == nil {
		return
	}

	due, err := srv.reminderRepo.FindAlertsDue(ctx, now)
	if err != nil {
		srv.log(ctx).Warn("Failed to find due alerts", slog.Any("error", err))

		return
	}

	for _, reminder := range due {
		handle, sent := srv.sendAlert(ctx, reminder)
		if !sent {
			continue
		}

		reminder.NotificationHandle = handle
		reminder.UpdatedAt = now
		if err := srv.reminderRepo.Save(ctx, reminder); err != nil {
			srv.log(ctx).Warn("Failed to record alert handle",
				slog.String("reminderID", reminder.ID.String()), slog.Any("error", err))
		}
	}
}

func (srv *reminderService) sendAlert(ctx context.Context, reminder *entity.Reminder) (handle string, sent bool) {
	devices, err := srv.deviceRepo.FindByUser(ctx, reminder.OwnerID)
	if err != nil {
		srv.log(ctx).Warn("Failed to fetch devices for reminder alert",
			slog.String("reminderID", reminder.ID.String()), slog.Any("error", err))

		return "", false
	}
	if len(devices) == 0 {
		// No device to alert yet; retried once one registers.
		return "", false
	}

	data := map[string]string{
		"reminder_id": reminder.ID.String(),
		"event_time":  reminder.EventTime.Format(time.RFC3339),
		"latitude":    fmt.Sprintf("%f", reminder.Latitude),
		"longitude":   fmt.Sprintf("%f", reminder.Longitude),
	}
	title := "約會提醒"
	body := fmt.Sprintf("與 %s 在 %s 的約會即將開始", reminder.SubjectName, reminder.PlaceName)

	for _, device := range devices {
		messageID, err := srv.notificationSvc.SendSingleNotification(ctx, device.FCMToken, title, body, data)
		if err != nil {
			srv.log(ctx).Warn("Failed to send reminder alert",
				slog.String("reminderID", reminder.ID.String()), slog.Any("error", err))

			continue
		}
		if handle == "" {
			handle = messageID
		}
	}

	return handle, handle != ""
}
