package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"rentloop/internal/domain/booking"
	"rentloop/internal/infra"
	"rentloop/internal/infra/db"
	"rentloop/internal/pkg/clock"
	"rentloop/internal/pkg/config"
	"rentloop/internal/pkg/errs"
	"rentloop/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SweepUseCase is the periodic maintenance side of the lifecycle: payment
// reminders, the unpaid auto-cancel deadline and refund chasing. Every
// sweep is idempotent; running one twice in a row changes nothing the
// second time.
type SweepUseCase interface {
	RunReminderSweep(ctx context.Context) (*readmodel.SweepReportRM, error)
	RunAutoCancelSweep(ctx context.Context) (*readmodel.SweepReportRM, error)
	RunRefundReminderSweep(ctx context.Context) (*readmodel.SweepReportRM, error)
}

type sweepUseCaseImpl struct {
	bookingRepo      BookingRepository
	notificationRepo NotificationRepository
	notifier         Notifier
	db               *pgxpool.Pool
	clock            clock.Clock
	loc              *time.Location
	cfg              config.BookingConfig
}

func NewSweepUseCase(
	bookingRepo BookingRepository,
	notificationRepo NotificationRepository,
	notifier Notifier,
	pool *pgxpool.Pool,
	clk clock.Clock,
	loc *time.Location,
	cfg config.BookingConfig,
) SweepUseCase {
	return &sweepUseCaseImpl{
		bookingRepo:      bookingRepo,
		notificationRepo: notificationRepo,
		notifier:         notifier,
		db:               pool,
		clock:            clk,
		loc:              loc,
		cfg:              cfg,
	}
}

// RunReminderSweep delivers due payment reminders. A task whose booking
// left the awaiting-payment state is retired without a message; a delivery
// failure leaves the task unsent so the next run retries it.
func (u *sweepUseCaseImpl) RunReminderSweep(ctx context.Context) (*readmodel.SweepReportRM, error) {
	now := u.clock.Now()
	due, err := u.notificationRepo.FindDue(ctx, now)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load due reminders")
	}

	report := &readmodel.SweepReportRM{Examined: len(due)}
	for _, task := range due {
		if task.BookingState != booking.StatusConfirmedUnpaid.String() {
			if err := u.notificationRepo.MarkSent(ctx, task.TaskID, now); err != nil {
				slog.Warn("failed to retire stale reminder", "task_id", task.TaskID, "error", err.Error())
				report.Failed++
				continue
			}
			report.Skipped++
			continue
		}

		kind := booking.ReminderKind(task.Kind)
		if err := u.notifier.Notify(ctx, task.RenterID, msgPaymentReminder(task, kind.Hours())); err != nil {
			slog.Warn("failed to deliver payment reminder",
				"task_id", task.TaskID, "booking_id", task.BookingID, "error", err.Error())
			report.Failed++
			continue
		}
		if err := u.notificationRepo.MarkSent(ctx, task.TaskID, now); err != nil {
			slog.Warn("failed to mark reminder sent", "task_id", task.TaskID, "error", err.Error())
			report.Failed++
			continue
		}
		report.Acted++
	}
	return report, nil
}

// RunAutoCancelSweep drops confirmed-unpaid bookings whose start date has
// arrived. Each cancellation is its own transaction; a booking that got
// paid or canceled between the scan and the swap is skipped.
func (u *sweepUseCaseImpl) RunAutoCancelSweep(ctx context.Context) (*readmodel.SweepReportRM, error) {
	today := booking.DateOf(u.clock.Now().In(u.loc))
	candidates, err := u.bookingRepo.FindUnpaidStarted(ctx, today)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load auto-cancel candidates")
	}

	report := &readmodel.SweepReportRM{Examined: len(candidates)}
	for _, rm := range candidates {
		_, err := db.WithDefaultRetry(ctx, u.db, func(tx db.DBTX) (struct{}, error) {
			var zero struct{}
			b, err := u.bookingRepo.FindByID(ctx, tx, rm.ID)
			if err != nil {
				return zero, err
			}
			if err := b.AutoCancel(today); err != nil {
				return zero, errs.Mark(err, errs.ErrStaleState)
			}
			if err := u.bookingRepo.UpdateTransition(ctx, tx, b, []booking.Status{booking.StatusConfirmedUnpaid}); err != nil {
				return zero, err
			}
			return zero, nil
		})
		if err != nil {
			if infra.IsKind(err, infra.KindStaleState) || errors.Is(err, errs.ErrStaleState) {
				report.Skipped++
				continue
			}
			slog.Warn("auto-cancel failed", "booking_id", rm.ID, "error", err.Error())
			report.Failed++
			continue
		}

		u.send(ctx, rm.RenterID, msgAutoCanceledRenter(rm))
		if rm.OwnerID != rm.RenterID {
			u.send(ctx, rm.OwnerID, msgAutoCanceledOwner(rm))
		}
		report.Acted++
	}
	return report, nil
}

// RunRefundReminderSweep asks renters with an outstanding refund to
// confirm receipt, at most one message per booking per throttle window.
// Only the renter can close the loop via ConfirmRefund, so the chase
// goes to them; the owner already got the refund-owed notice at cancel.
func (u *sweepUseCaseImpl) RunRefundReminderSweep(ctx context.Context) (*readmodel.SweepReportRM, error) {
	now := u.clock.Now()
	owed, err := u.bookingRepo.FindRefundOwed(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load refund-owed bookings")
	}

	report := &readmodel.SweepReportRM{Examined: len(owed)}
	for _, rm := range owed {
		if rm.LastRefundReminderAt != nil && now.Sub(*rm.LastRefundReminderAt) < u.cfg.RefundReminderEvery {
			report.Skipped++
			continue
		}
		if err := u.notifier.Notify(ctx, rm.RenterID, msgRefundReminder(rm)); err != nil {
			slog.Warn("failed to deliver refund reminder", "booking_id", rm.ID, "error", err.Error())
			report.Failed++
			continue
		}
		if err := u.bookingRepo.TouchRefundReminder(ctx, u.db, rm.ID, now); err != nil {
			slog.Warn("failed to advance refund reminder throttle", "booking_id", rm.ID, "error", err.Error())
			report.Failed++
			continue
		}
		report.Acted++
	}
	return report, nil
}

func (u *sweepUseCaseImpl) send(ctx context.Context, userID int64, text string) {
	if err := u.notifier.Notify(ctx, userID, text); err != nil {
		slog.Warn("failed to deliver notification", "user_id", userID, "error", err.Error())
	}
}
