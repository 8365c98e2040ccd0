package repository

import (
	"context"
	"time"

	"rentloop/internal/domain/booking"
	"rentloop/internal/infra"
	"rentloop/internal/infra/db"
	"rentloop/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

const bookingColumns = `
	b.id, b.item_id, b.renter_id, b.owner_id, b.start_date, b.end_date, b.state,
	b.paid_confirmed_at, b.refund_confirmed_at, b.last_refund_reminder_at,
	b.canceled_reason, b.created_at, b.updated_at`

const bookingRMColumns = bookingColumns + `, i.name, i.deposit_required`

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO bookings (id, item_id, renter_id, owner_id, start_date, end_date, state, paid_confirmed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		b.ID(), b.ItemID(), b.RenterID(), b.OwnerID(),
		b.Dates().Start().Time(), b.Dates().End().Time(), b.Status().String(), b.PaidConfirmedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row := dbtx.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings b WHERE b.id = $1`, id)

	b, err := scanBooking(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by id", err)
	}
	return b, nil
}

// FindLiveRangesByItem returns the date ranges of every live booking for
// the item intersecting [from, to]. Feeds the overlap checker and the
// blocked-dates view.
func (r *BookingRepository) FindLiveRangesByItem(ctx context.Context, dbtx db.DBTX, itemID int64, from, to booking.Date) ([]booking.DateRange, error) {
	rows, err := dbtx.Query(ctx, `
		SELECT b.start_date, b.end_date
		FROM bookings b
		WHERE b.item_id = $1
		  AND b.state = ANY($2)
		  AND b.start_date <= $3
		  AND b.end_date >= $4`,
		itemID, liveStates(), to.Time(), from.Time(),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query live bookings", err)
	}
	defer rows.Close()

	var ranges []booking.DateRange
	for rows.Next() {
		var start, end time.Time
		if err := rows.Scan(&start, &end); err != nil {
			return nil, infra.WrapRepoErr("failed to scan live booking range", err)
		}
		dr, err := booking.NewDateRange(booking.DateOf(start), booking.DateOf(end))
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt booking range in storage", err)
		}
		ranges = append(ranges, dr)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read live booking ranges", err)
	}
	return ranges, nil
}

// UpdateTransition persists a state transition with compare-and-swap
// semantics: the row is only written if it is still in one of the expected
// states. Zero rows means someone else got there first.
func (r *BookingRepository) UpdateTransition(ctx context.Context, dbtx db.DBTX, b *booking.Booking, expected []booking.Status) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE bookings
		SET state = $2,
		    paid_confirmed_at = $3,
		    refund_confirmed_at = $4,
		    last_refund_reminder_at = $5,
		    canceled_reason = NULLIF($6, ''),
		    updated_at = now()
		WHERE id = $1 AND state = ANY($7)`,
		b.ID(), b.Status().String(), b.PaidConfirmedAt(), b.RefundConfirmedAt(),
		b.LastRefundReminderAt(), b.CanceledReason(), statusStrings(expected),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking state", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking state changed concurrently", nil, infra.KindStaleState)
	}
	return nil
}

// TouchRefundReminder advances the throttle timestamp after a reminder
// went out.
func (r *BookingRepository) TouchRefundReminder(ctx context.Context, dbtx db.DBTX, id uuid.UUID, at time.Time) error {
	_, err := dbtx.Exec(ctx,
		`UPDATE bookings SET last_refund_reminder_at = $2, updated_at = now() WHERE id = $1`,
		id, at,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to touch refund reminder", err)
	}
	return nil
}

func (r *BookingRepository) FindByRenter(ctx context.Context, renterID int64) ([]*readmodel.BookingRM, error) {
	return r.queryRMs(ctx, `
		SELECT `+bookingRMColumns+`
		FROM bookings b JOIN items i ON i.id = b.item_id
		WHERE b.renter_id = $1
		ORDER BY b.start_date ASC`, renterID)
}

func (r *BookingRepository) FindByOwner(ctx context.Context, ownerID int64) ([]*readmodel.BookingRM, error) {
	return r.queryRMs(ctx, `
		SELECT `+bookingRMColumns+`
		FROM bookings b JOIN items i ON i.id = b.item_id
		WHERE b.owner_id = $1
		ORDER BY b.start_date ASC`, ownerID)
}

func (r *BookingRepository) FindByItem(ctx context.Context, itemID int64) ([]*readmodel.BookingRM, error) {
	return r.queryRMs(ctx, `
		SELECT `+bookingRMColumns+`
		FROM bookings b JOIN items i ON i.id = b.item_id
		WHERE b.item_id = $1
		ORDER BY b.start_date DESC`, itemID)
}

func (r *BookingRepository) FindRM(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+bookingRMColumns+`
		FROM bookings b JOIN items i ON i.id = b.item_id
		WHERE b.id = $1`, id)

	rm, err := scanBookingRM(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return rm, nil
}

// FindUnpaidStarted returns confirmed-unpaid bookings whose start date has
// arrived: the auto-cancel sweep's candidates.
func (r *BookingRepository) FindUnpaidStarted(ctx context.Context, today booking.Date) ([]*readmodel.BookingRM, error) {
	return r.queryRMs(ctx, `
		SELECT `+bookingRMColumns+`
		FROM bookings b JOIN items i ON i.id = b.item_id
		WHERE b.state = $1 AND b.start_date <= $2
		ORDER BY b.start_date ASC`,
		booking.StatusConfirmedUnpaid.String(), today.Time())
}

// FindRefundOwed returns renter-canceled bookings that were paid and whose
// refund is still unconfirmed. Throttling happens in the sweep.
func (r *BookingRepository) FindRefundOwed(ctx context.Context) ([]*readmodel.BookingRM, error) {
	return r.queryRMs(ctx, `
		SELECT `+bookingRMColumns+`
		FROM bookings b JOIN items i ON i.id = b.item_id
		WHERE b.state = $1
		  AND b.paid_confirmed_at IS NOT NULL
		  AND b.refund_confirmed_at IS NULL
		ORDER BY b.updated_at ASC`,
		booking.StatusCanceledByRenter.String())
}

func (r *BookingRepository) queryRMs(ctx context.Context, sql string, args ...any) ([]*readmodel.BookingRM, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query bookings", err)
	}
	defer rows.Close()

	var result []*readmodel.BookingRM
	for rows.Next() {
		rm, err := scanBookingRM(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return result, nil
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id                                        uuid.UUID
		itemID, renterID, ownerID                 int64
		startDate, endDate                        time.Time
		state                                     string
		paidAt, refundAt, lastReminderAt          *time.Time
		canceledReason                            *string
		createdAt, updatedAt                      time.Time
	)
	if err := row.Scan(
		&id, &itemID, &renterID, &ownerID, &startDate, &endDate, &state,
		&paidAt, &refundAt, &lastReminderAt, &canceledReason, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	dates, err := booking.NewDateRange(booking.DateOf(startDate), booking.DateOf(endDate))
	if err != nil {
		return nil, err
	}

	reason := ""
	if canceledReason != nil {
		reason = *canceledReason
	}

	return booking.Reconstruct(
		id, itemID, renterID, ownerID, dates, booking.Status(state),
		paidAt, refundAt, lastReminderAt, reason, createdAt, updatedAt,
	), nil
}

func scanBookingRM(row pgx.Row) (*readmodel.BookingRM, error) {
	var rm readmodel.BookingRM
	if err := row.Scan(
		&rm.ID, &rm.ItemID, &rm.RenterID, &rm.OwnerID, &rm.StartDate, &rm.EndDate, &rm.State,
		&rm.PaidConfirmedAt, &rm.RefundConfirmedAt, &rm.LastRefundReminderAt,
		&rm.CanceledReason, &rm.CreatedAt, &rm.UpdatedAt,
		&rm.ItemName, &rm.DepositRequired,
	); err != nil {
		return nil, err
	}
	return &rm, nil
}

func liveStates() []string {
	return statusStrings(booking.LiveStatuses())
}

func statusStrings(statuses []booking.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = s.String()
	}
	return out
}
