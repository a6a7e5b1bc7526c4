// Package sweeper runs the periodic reminder status sweep.
package sweeper

import (
	"context"
	"log/slog"
	"time"

	"flint/config"
	"flint/internal/delivery"
	"flint/internal/usecase"
	"flint/internal/util"

	"go.uber.org/fx"
)

const defaultSweepInterval = time.Minute

// ServerParams holds dependencies for the sweeper
type ServerParams struct {
	fx.In
	fx.Lifecycle

	Config     *config.Config
	Logger     *slog.Logger
	ReminderUC usecase.ReminderUsecase
}

// sweeper fires due reminder alerts and completes past-due reminders on a
// fixed interval.
type sweeper struct {
	interval   time.Duration
	logger     *slog.Logger
	reminderUC usecase.ReminderUsecase
	done       chan struct{}
}

// NewSweeper creates the reminder sweeper delivery.
func NewSweeper(params ServerParams) (delivery.Delivery, error) {
	interval := defaultSweepInterval
	if params.Config.Reminders != nil && params.Config.Reminders.SweepInterval > 0 {
		interval = params.Config.Reminders.SweepInterval
	}

	s := &sweeper{
		interval:   interval,
		logger:     params.Logger,
		reminderUC: params.ReminderUC,
		done:       make(chan struct{}),
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			close(s.done)

			return nil
		},
	})

	return s, nil
}

// Serve runs the sweep loop until shutdown.
func (s *sweeper) Serve(ctx context.Context) error {
	s.logger.Info("Starting reminder sweeper", slog.String("interval", util.FormatDuration(s.interval)))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep(ctx)
		case <-ctx.Done():
			return nil
		case <-s.done:
			s.logger.Info("Stopping reminder sweeper")

			return nil
		}
	}
}

func (s *sweeper) sweep(ctx context.Context) {
	completed, err := s.reminderUC.SweepStatuses(ctx, time.Now())
	if err != nil {
		// Transient store failures are retried on the next tick.
		s.logger.Warn("reminder sweep failed", slog.Any("error", err))

		return
	}

	if completed > 0 {
		s.logger.Info("reminder sweep finished", slog.Int("completed", completed))
	}
}
