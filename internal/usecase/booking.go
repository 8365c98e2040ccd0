package usecase

import (
	"context"
	"log/slog"
	"time"

	"rentloop/internal/domain/booking"
	"rentloop/internal/infra"
	"rentloop/internal/infra/db"
	"rentloop/internal/pkg/clock"
	"rentloop/internal/pkg/errs"
	"rentloop/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BookingUseCase drives every lifecycle transition. Each command loads the
// booking, applies the entity transition, and persists it with a
// compare-and-swap on the states the transition is valid from; a missed
// swap surfaces as ErrStaleState instead of silently double-applying.
type BookingUseCase interface {
	CreateBooking(ctx context.Context, renterID, itemID int64, dates booking.DateRange) (*readmodel.BookingRM, error)
	Confirm(ctx context.Context, bookingID uuid.UUID, actorID int64) (*readmodel.BookingRM, error)
	Decline(ctx context.Context, bookingID uuid.UUID, actorID int64) (*readmodel.BookingRM, error)
	MarkPaid(ctx context.Context, bookingID uuid.UUID, actorID int64) (*readmodel.BookingRM, error)
	CancelUnpaid(ctx context.Context, bookingID uuid.UUID, actorID int64) (*readmodel.BookingRM, error)
	CancelByRenter(ctx context.Context, bookingID uuid.UUID, actorID int64) (*readmodel.BookingRM, error)
	ConfirmRefund(ctx context.Context, bookingID uuid.UUID, actorID int64) (*readmodel.BookingRM, error)
	NotifyPaid(ctx context.Context, bookingID uuid.UUID, actorID int64) error
}

type bookingUseCaseImpl struct {
	bookingRepo      BookingRepository
	itemRepo         ItemRepository
	userRepo         UserRepository
	notificationRepo NotificationRepository
	notifier         Notifier
	db               *pgxpool.Pool
	clock            clock.Clock
	loc              *time.Location
}

func NewBookingUseCase(
	bookingRepo BookingRepository,
	itemRepo ItemRepository,
	userRepo UserRepository,
	notificationRepo NotificationRepository,
	notifier Notifier,
	pool *pgxpool.Pool,
	clk clock.Clock,
	loc *time.Location,
) BookingUseCase {
	return &bookingUseCaseImpl{
		bookingRepo:      bookingRepo,
		itemRepo:         itemRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		notifier:         notifier,
		db:               pool,
		clock:            clk,
		loc:              loc,
	}
}

// CreateBooking creates a request, or a self-block when the renter owns the
// item. The conflict check and the insert run in one transaction holding a
// per-item advisory lock, so two overlapping requests cannot both pass.
func (u *bookingUseCaseImpl) CreateBooking(ctx context.Context, renterID, itemID int64, dates booking.DateRange) (*readmodel.BookingRM, error) {
	itm, err := u.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrItemNotFound
		}
		return nil, errs.Wrap(err, "failed to find item")
	}

	renter, err := u.userRepo.FindByID(ctx, renterID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrNotAllowed
		}
		return nil, errs.Wrap(err, "failed to find renter")
	}

	self := itm.OwnedBy(renter.OwnerHandle) || itm.OwnedBy(renter.Username)

	ownerID := renterID
	if !self {
		owner, err := u.userRepo.FindByOwnerHandle(ctx, itm.OwnerHandle())
		if err != nil {
			return nil, errs.Wrap(err, "failed to resolve item owner")
		}
		if owner == nil {
			return nil, errs.ErrOwnerNotRegistered
		}
		ownerID = owner.ID
	}

	b, err := db.WithDefaultRetry(ctx, u.db, func(tx db.DBTX) (*booking.Booking, error) {
		if err := db.LockItem(ctx, tx, itemID); err != nil {
			return nil, err
		}

		live, err := u.bookingRepo.FindLiveRangesByItem(ctx, tx, itemID, dates.Start(), dates.End())
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if booking.HasConflict(live, dates) {
			return nil, errs.ErrDatesConflict
		}

		var entity *booking.Booking
		if self {
			entity = booking.NewSelfBlock(itemID, ownerID, dates, u.clock.Now())
		} else {
			entity = booking.NewRequest(itemID, renterID, ownerID, dates)
		}
		if err := u.bookingRepo.Create(ctx, tx, entity); err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return entity, nil
	})
	if err != nil {
		return nil, err
	}

	rm, err := u.bookingRepo.FindRM(ctx, b.ID())
	if err != nil {
		return nil, errs.Wrap(err, "failed to reload booking")
	}

	if !self {
		u.send(ctx, ownerID, msgRequestReceived(rm))
	}
	return rm, nil
}

// Confirm moves a request to awaiting payment and schedules the payment
// reminders whose fire time is still ahead.
func (u *bookingUseCaseImpl) Confirm(ctx context.Context, bookingID uuid.UUID, actorID int64) (*readmodel.BookingRM, error) {
	rm, err := u.transition(ctx, bookingID, actorID, actorRoleOwner,
		[]booking.Status{booking.StatusRequested},
		func(tx db.DBTX, b *booking.Booking) error {
			if err := b.Confirm(); err != nil {
				return errs.Mark(err, errs.ErrStaleState)
			}
			return nil
		},
		func(tx db.DBTX, b *booking.Booking) error {
			return u.scheduleReminders(ctx, tx, b)
		},
	)
	if err != nil {
		return nil, err
	}
	u.send(ctx, rm.RenterID, msgConfirmed(rm))
	return rm, nil
}

func (u *bookingUseCaseImpl) Decline(ctx context.Context, bookingID uuid.UUID, actorID int64) (*readmodel.BookingRM, error) {
	rm, err := u.transition(ctx, bookingID, actorID, actorRoleOwner,
		[]booking.Status{booking.StatusRequested},
		func(tx db.DBTX, b *booking.Booking) error {
			if err := b.Decline(); err != nil {
				return errs.Mark(err, errs.ErrStaleState)
			}
			return nil
		},
		nil,
	)
	if err != nil {
		return nil, err
	}
	u.send(ctx, rm.RenterID, msgDeclined(rm))
	return rm, nil
}

func (u *bookingUseCaseImpl) MarkPaid(ctx context.Context, bookingID uuid.UUID, actorID int64) (*readmodel.BookingRM, error) {
	rm, err := u.transition(ctx, bookingID, actorID, actorRoleOwner,
		[]booking.Status{booking.StatusConfirmedUnpaid},
		func(tx db.DBTX, b *booking.Booking) error {
			if err := b.MarkPaid(u.clock.Now()); err != nil {
				return errs.Mark(err, errs.ErrStaleState)
			}
			return nil
		},
		nil,
	)
	if err != nil {
		return nil, err
	}
	u.send(ctx, rm.RenterID, msgPaidConfirmed(rm))
	return rm, nil
}

func (u *bookingUseCaseImpl) CancelUnpaid(ctx context.Context, bookingID uuid.UUID, actorID int64) (*readmodel.BookingRM, error) {
	rm, err := u.transition(ctx, bookingID, actorID, actorRoleOwner,
		[]booking.Status{booking.StatusConfirmedUnpaid},
		func(tx db.DBTX, b *booking.Booking) error {
			if err := b.CancelUnpaidByOwner(); err != nil {
				return errs.Mark(err, errs.ErrStaleState)
			}
			return nil
		},
		nil,
	)
	if err != nil {
		return nil, err
	}
	u.send(ctx, rm.RenterID, msgCanceledUnpaid(rm))
	return rm, nil
}

// CancelByRenter is valid from any live state. When the booking was paid
// the owner is told a refund is owed and the renter is asked to confirm
// receipt; the refund-reminder sweep repeats that ask until ConfirmRefund.
// Touching the reminder timestamp here starts the throttle window at the
// cancel itself, so the first sweep reminder comes a full window later.
func (u *bookingUseCaseImpl) CancelByRenter(ctx context.Context, bookingID uuid.UUID, actorID int64) (*readmodel.BookingRM, error) {
	var wasPaid bool
	rm, err := u.transition(ctx, bookingID, actorID, actorRoleRenter,
		booking.LiveStatuses(),
		func(tx db.DBTX, b *booking.Booking) error {
			paid, err := b.CancelByRenter(u.clock.Now())
			if err != nil {
				return errs.Mark(err, errs.ErrStaleState)
			}
			wasPaid = paid
			return nil
		},
		func(tx db.DBTX, b *booking.Booking) error {
			if !wasPaid {
				return nil
			}
			return u.bookingRepo.TouchRefundReminder(ctx, tx, b.ID(), u.clock.Now())
		},
	)
	if err != nil {
		return nil, err
	}
	if wasPaid {
		u.send(ctx, rm.RenterID, msgRefundPrompt(rm))
	}
	if rm.RenterID != rm.OwnerID {
		u.send(ctx, rm.OwnerID, msgRenterCanceled(rm, wasPaid))
	}
	return rm, nil
}

// ConfirmRefund is the renter acknowledging the money came back. Repeated
// confirmations are accepted and change nothing.
func (u *bookingUseCaseImpl) ConfirmRefund(ctx context.Context, bookingID uuid.UUID, actorID int64) (*readmodel.BookingRM, error) {
	return u.transition(ctx, bookingID, actorID, actorRoleRenter,
		[]booking.Status{booking.StatusCanceledByRenter},
		func(tx db.DBTX, b *booking.Booking) error {
			if err := b.ConfirmRefund(u.clock.Now()); err != nil {
				return errs.Mark(err, errs.ErrStaleState)
			}
			return nil
		},
		nil,
	)
}

// NotifyPaid relays the renter's "I have paid" to the owner. It changes no
// state; the owner still has to confirm the payment themselves.
func (u *bookingUseCaseImpl) NotifyPaid(ctx context.Context, bookingID uuid.UUID, actorID int64) error {
	rm, err := u.bookingRepo.FindRM(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrBookingNotFound
		}
		return errs.Wrap(err, "failed to find booking")
	}
	if rm.RenterID != actorID {
		return errs.ErrNotAllowed
	}
	if rm.State != booking.StatusConfirmedUnpaid.String() {
		return errs.ErrStaleState
	}
	u.send(ctx, rm.OwnerID, msgPaidNotice(rm))
	return nil
}

type actorRole int

const (
	actorRoleOwner actorRole = iota
	actorRoleRenter
)

// transition runs one guarded state change: load, authorize, apply, then
// CAS-persist against the expected source states. extra runs in the same
// transaction after the swap succeeded.
func (u *bookingUseCaseImpl) transition(
	ctx context.Context,
	bookingID uuid.UUID,
	actorID int64,
	role actorRole,
	expected []booking.Status,
	apply func(tx db.DBTX, b *booking.Booking) error,
	extra func(tx db.DBTX, b *booking.Booking) error,
) (*readmodel.BookingRM, error) {
	_, err := db.WithDefaultRetry(ctx, u.db, func(tx db.DBTX) (struct{}, error) {
		var zero struct{}

		b, err := u.bookingRepo.FindByID(ctx, tx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return zero, errs.ErrBookingNotFound
			}
			return zero, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		switch role {
		case actorRoleOwner:
			if !b.IsOwner(actorID) {
				return zero, errs.ErrNotAllowed
			}
		case actorRoleRenter:
			if !b.IsRenter(actorID) {
				return zero, errs.ErrNotAllowed
			}
		}

		if err := apply(tx, b); err != nil {
			return zero, err
		}
		if err := u.bookingRepo.UpdateTransition(ctx, tx, b, expected); err != nil {
			if infra.IsKind(err, infra.KindStaleState) {
				return zero, errs.ErrStaleState
			}
			return zero, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if extra != nil {
			if err := extra(tx, b); err != nil {
				return zero, err
			}
		}
		return zero, nil
	})
	if err != nil {
		return nil, err
	}

	rm, err := u.bookingRepo.FindRM(ctx, bookingID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to reload booking")
	}
	return rm, nil
}

// scheduleReminders inserts the payment reminders whose fire time is still
// ahead. The start instant is local midnight of the start date; a booking
// confirmed 13 hours before it misses the 24h reminder but still gets the
// 12h and 2h ones.
func (u *bookingUseCaseImpl) scheduleReminders(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	start := b.Dates().Start().StartInstant(u.loc)
	now := u.clock.Now()
	for _, kind := range booking.ReminderKinds() {
		at := start.Add(-kind.Offset())
		if !at.After(now) {
			continue
		}
		if err := u.notificationRepo.CreateTask(ctx, tx, b.ID(), kind, at); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}
	return nil
}

// send delivers best-effort: a gateway outage must not roll back a
// transition that already committed.
func (u *bookingUseCaseImpl) send(ctx context.Context, userID int64, text string) {
	if err := u.notifier.Notify(ctx, userID, text); err != nil {
		slog.Warn("failed to deliver notification", "user_id", userID, "error", err.Error())
	}
}
