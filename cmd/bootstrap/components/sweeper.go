package components

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"rentloop/internal/pkg/config"
	"rentloop/internal/usecase"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

var SweeperModule = fx.Module("sweeper",
	fx.Invoke(StartSweeper),
)

// StartSweeper runs the periodic sweeps on the in-process cron. Deployments
// that trigger sweeps externally set BOOKING_SWEEPS_IN_PROCESS=false and
// call the sweep endpoints instead.
func StartSweeper(lc fx.Lifecycle, cfg config.Config, sweeps usecase.SweepUseCase) {
	if !cfg.Booking.SweepsRunInProcess {
		slog.Info("in-process sweeps disabled")
		return
	}

	c := cron.New()

	addSweep(c, "payment-reminders", cfg.Booking.ReminderInterval, func(ctx context.Context) error {
		_, err := sweeps.RunReminderSweep(ctx)
		return err
	})
	addSweep(c, "auto-cancel", cfg.Booking.AutoCancelInterval, func(ctx context.Context) error {
		_, err := sweeps.RunAutoCancelSweep(ctx)
		return err
	})
	addSweep(c, "refund-reminders", cfg.Booking.RefundSweepInterval, func(ctx context.Context) error {
		_, err := sweeps.RunRefundReminderSweep(ctx)
		return err
	})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			c.Start()
			slog.Info("sweep scheduler started",
				"reminder_interval", cfg.Booking.ReminderInterval,
				"auto_cancel_interval", cfg.Booking.AutoCancelInterval,
				"refund_sweep_interval", cfg.Booking.RefundSweepInterval)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			stopCtx := c.Stop()
			select {
			case <-stopCtx.Done():
			case <-ctx.Done():
			}
			slog.Info("sweep scheduler stopped")
			return nil
		},
	})
}

func addSweep(c *cron.Cron, name string, interval time.Duration, run func(ctx context.Context) error) {
	spec := fmt.Sprintf("@every %s", interval)
	_, err := c.AddFunc(spec, func() {
		if err := run(context.Background()); err != nil {
			slog.Error("sweep run failed", "sweep", name, "error", err.Error())
		}
	})
	if err != nil {
		panic(fmt.Sprintf("invalid sweep schedule %q: %v", spec, err))
	}
}
