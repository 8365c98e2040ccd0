package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotRequested       = errors.New("booking is not awaiting owner confirmation")
	ErrNotAwaitingPayment = errors.New("booking is not awaiting payment")
	ErrNotLive            = errors.New("booking is no longer live")
	ErrRefundNotOwed      = errors.New("no refund is owed on this booking")
)

// Booking is the authoritative lifecycle record of one reservation.
// Rows are never deleted; terminal states stay behind as history.
type Booking struct {
	id                   uuid.UUID
	itemID               int64
	renterID             int64
	ownerID              int64
	dates                DateRange
	status               Status
	paidConfirmedAt      *time.Time
	refundConfirmedAt    *time.Time
	lastRefundReminderAt *time.Time
	canceledReason       string
	createdAt            time.Time
	updatedAt            time.Time
}

// NewRequest starts the regular renter flow: the booking waits for the
// owner before it blocks anything beyond the overlap invariant.
func NewRequest(itemID, renterID, ownerID int64, dates DateRange) *Booking {
	return &Booking{
		id:       uuid.New(),
		itemID:   itemID,
		renterID: renterID,
		ownerID:  ownerID,
		dates:    dates,
		status:   StatusRequested,
	}
}

// NewSelfBlock is the owner reserving dates on their own item. It lands
// directly in paid_confirmed, skipping confirmation and payment. Kept as
// its own constructor so the bypass stays auditable.
func NewSelfBlock(itemID, ownerID int64, dates DateRange, now time.Time) *Booking {
	paidAt := now
	return &Booking{
		id:              uuid.New(),
		itemID:          itemID,
		renterID:        ownerID,
		ownerID:         ownerID,
		dates:           dates,
		status:          StatusPaidConfirmed,
		paidConfirmedAt: &paidAt,
	}
}

func Reconstruct(
	id uuid.UUID,
	itemID, renterID, ownerID int64,
	dates DateRange,
	status Status,
	paidConfirmedAt, refundConfirmedAt, lastRefundReminderAt *time.Time,
	canceledReason string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:                   id,
		itemID:               itemID,
		renterID:             renterID,
		ownerID:              ownerID,
		dates:                dates,
		status:               status,
		paidConfirmedAt:      paidConfirmedAt,
		refundConfirmedAt:    refundConfirmedAt,
		lastRefundReminderAt: lastRefundReminderAt,
		canceledReason:       canceledReason,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
	}
}

// Confirm moves requested → owner_confirmed_unpaid.
func (b *Booking) Confirm() error {
	if b.status != StatusRequested {
		return ErrNotRequested
	}
	b.status = StatusConfirmedUnpaid
	return nil
}

// Decline moves requested → canceled_by_owner.
func (b *Booking) Decline() error {
	if b.status != StatusRequested {
		return ErrNotRequested
	}
	b.status = StatusCanceledByOwner
	b.canceledReason = "declined by owner"
	return nil
}

// MarkPaid records the owner's assertion that payment arrived.
func (b *Booking) MarkPaid(now time.Time) error {
	if b.status != StatusConfirmedUnpaid {
		return ErrNotAwaitingPayment
	}
	b.status = StatusPaidConfirmed
	b.paidConfirmedAt = &now
	return nil
}

// CancelUnpaidByOwner lets the owner drop a confirmed booking that was
// never paid.
func (b *Booking) CancelUnpaidByOwner() error {
	if b.status != StatusConfirmedUnpaid {
		return ErrNotAwaitingPayment
	}
	b.status = StatusCanceledByOwner
	b.canceledReason = "payment not received"
	return nil
}

// CancelByRenter is valid from any live state. When the booking was paid,
// refund-reminder tracking starts immediately so the first reminder is
// throttled like every later one.
func (b *Booking) CancelByRenter(now time.Time) (wasPaid bool, err error) {
	if !b.status.IsLive() {
		return false, ErrNotLive
	}
	wasPaid = b.status == StatusPaidConfirmed
	b.status = StatusCanceledByRenter
	if wasPaid {
		b.lastRefundReminderAt = &now
	}
	return wasPaid, nil
}

// ConfirmRefund sets refund_confirmed_at once. Repeated calls are no-ops.
func (b *Booking) ConfirmRefund(now time.Time) error {
	if b.status != StatusCanceledByRenter || b.paidConfirmedAt == nil {
		return ErrRefundNotOwed
	}
	if b.refundConfirmedAt != nil {
		return nil
	}
	b.refundConfirmedAt = &now
	return nil
}

// AutoCancel applies the payment deadline: a confirmed-unpaid booking whose
// start date has arrived gets dropped by the sweep.
func (b *Booking) AutoCancel(today Date) error {
	if b.status != StatusConfirmedUnpaid {
		return ErrNotAwaitingPayment
	}
	if b.dates.Start().After(today) {
		return ErrNotAwaitingPayment
	}
	b.status = StatusCanceledUnpaidTimeout
	b.canceledReason = "payment not confirmed by start date"
	return nil
}

// RefundOwed reports whether the refund-reminder sweep should still chase
// this booking.
func (b *Booking) RefundOwed() bool {
	return b.status == StatusCanceledByRenter &&
		b.paidConfirmedAt != nil &&
		b.refundConfirmedAt == nil
}

func (b *Booking) IsOwner(userID int64) bool  { return b.ownerID == userID }
func (b *Booking) IsRenter(userID int64) bool { return b.renterID == userID }
func (b *Booking) IsSelfBlock() bool          { return b.ownerID == b.renterID }

func (b *Booking) ID() uuid.UUID                    { return b.id }
func (b *Booking) ItemID() int64                    { return b.itemID }
func (b *Booking) RenterID() int64                  { return b.renterID }
func (b *Booking) OwnerID() int64                   { return b.ownerID }
func (b *Booking) Dates() DateRange                 { return b.dates }
func (b *Booking) Status() Status                   { return b.status }
func (b *Booking) PaidConfirmedAt() *time.Time      { return b.paidConfirmedAt }
func (b *Booking) RefundConfirmedAt() *time.Time    { return b.refundConfirmedAt }
func (b *Booking) LastRefundReminderAt() *time.Time { return b.lastRefundReminderAt }
func (b *Booking) CanceledReason() string           { return b.canceledReason }
func (b *Booking) CreatedAt() time.Time             { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time             { return b.updatedAt }
