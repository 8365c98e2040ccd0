//go:build unit || e2e

package builder

import (
	"time"

	dombooking "rentloop/internal/domain/booking"
	reqdto "rentloop/internal/handler/dto/request"
	"rentloop/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// BookingBuilder assembles bookings in any lifecycle state for tests.
type BookingBuilder struct {
	ID                   uuid.UUID
	ItemID               int64
	ItemName             string
	DepositRequired      bool
	RenterID             int64
	OwnerID              int64
	Start                dombooking.Date
	End                  dombooking.Date
	Status               dombooking.Status
	PaidConfirmedAt      *time.Time
	RefundConfirmedAt    *time.Time
	LastRefundReminderAt *time.Time
	CanceledReason       string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now().UTC()
	return &BookingBuilder{
		ID:        uuid.New(),
		ItemID:    42,
		ItemName:  "Cordless drill",
		RenterID:  100,
		OwnerID:   200,
		Start:     dombooking.NewDate(2026, time.June, 10),
		End:       dombooking.NewDate(2026, time.June, 12),
		Status:    dombooking.StatusRequested,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *BookingBuilder) WithStatus(s dombooking.Status) *BookingBuilder {
	b.Status = s
	return b
}

func (b *BookingBuilder) WithDates(start, end dombooking.Date) *BookingBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *BookingBuilder) WithParties(renterID, ownerID int64) *BookingBuilder {
	b.RenterID = renterID
	b.OwnerID = ownerID
	return b
}

func (b *BookingBuilder) WithPaidConfirmedAt(at time.Time) *BookingBuilder {
	b.PaidConfirmedAt = &at
	return b
}

func (b *BookingBuilder) WithLastRefundReminderAt(at time.Time) *BookingBuilder {
	b.LastRefundReminderAt = &at
	return b
}

func (b *BookingBuilder) WithDeposit() *BookingBuilder {
	b.DepositRequired = true
	return b
}

func (b *BookingBuilder) Range() dombooking.DateRange {
	r, err := dombooking.NewDateRange(b.Start, b.End)
	if err != nil {
		panic(err)
	}
	return r
}

func (b *BookingBuilder) BuildDomain() *dombooking.Booking {
	return dombooking.Reconstruct(
		b.ID,
		b.ItemID, b.RenterID, b.OwnerID,
		b.Range(),
		b.Status,
		b.PaidConfirmedAt, b.RefundConfirmedAt, b.LastRefundReminderAt,
		b.CanceledReason,
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *BookingBuilder) BuildRM() *readmodel.BookingRM {
	rm := &readmodel.BookingRM{
		ID:                   b.ID,
		ItemID:               b.ItemID,
		ItemName:             b.ItemName,
		DepositRequired:      b.DepositRequired,
		RenterID:             b.RenterID,
		OwnerID:              b.OwnerID,
		StartDate:            b.Start.Time(),
		EndDate:              b.End.Time(),
		State:                b.Status.String(),
		PaidConfirmedAt:      b.PaidConfirmedAt,
		RefundConfirmedAt:    b.RefundConfirmedAt,
		LastRefundReminderAt: b.LastRefundReminderAt,
		CreatedAt:            b.CreatedAt,
		UpdatedAt:            b.UpdatedAt,
	}
	if b.CanceledReason != "" {
		reason := b.CanceledReason
		rm.CanceledReason = &reason
	}
	return rm
}

func (b *BookingBuilder) BuildDueReminder(kind dombooking.ReminderKind, scheduledFor time.Time) *readmodel.DueReminderRM {
	return &readmodel.DueReminderRM{
		TaskID:       uuid.New(),
		BookingID:    b.ID,
		Kind:         kind.String(),
		ScheduledFor: scheduledFor,
		BookingState: b.Status.String(),
		RenterID:     b.RenterID,
		ItemName:     b.ItemName,
		StartDate:    b.Start.Time(),
		EndDate:      b.End.Time(),
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ItemID:    b.ItemID,
		StartDate: b.Start.String(),
		EndDate:   b.End.String(),
	}
}
