//go:build unit

package booking_test

import (
	"testing"
	"time"

	"rentloop/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(t *testing.T) *booking.Booking {
	t.Helper()
	return booking.NewRequest(42, 100, 200, mustRange(t, day(10), day(12)))
}

func TestNewRequest(t *testing.T) {
	b := newRequest(t)

	assert.NotEqual(t, uuid.Nil, b.ID())
	assert.Equal(t, int64(42), b.ItemID())
	assert.Equal(t, int64(100), b.RenterID())
	assert.Equal(t, int64(200), b.OwnerID())
	assert.Equal(t, booking.StatusRequested, b.Status())
	assert.False(t, b.IsSelfBlock())
	assert.Nil(t, b.PaidConfirmedAt())
}

func TestNewSelfBlock(t *testing.T) {
	now := time.Date(2026, time.June, 1, 10, 0, 0, 0, time.UTC)
	b := booking.NewSelfBlock(42, 200, mustRange(t, day(10), day(12)), now)

	assert.Equal(t, booking.StatusPaidConfirmed, b.Status())
	assert.True(t, b.IsSelfBlock())
	require.NotNil(t, b.PaidConfirmedAt())
	assert.Equal(t, now, *b.PaidConfirmedAt())
}

func TestHappyPathTransitions(t *testing.T) {
	now := time.Date(2026, time.June, 1, 10, 0, 0, 0, time.UTC)
	b := newRequest(t)

	require.NoError(t, b.Confirm())
	assert.Equal(t, booking.StatusConfirmedUnpaid, b.Status())

	require.NoError(t, b.MarkPaid(now))
	assert.Equal(t, booking.StatusPaidConfirmed, b.Status())
	require.NotNil(t, b.PaidConfirmedAt())
	assert.Equal(t, now, *b.PaidConfirmedAt())
}

func TestWrongStateTransitions(t *testing.T) {
	now := time.Now().UTC()

	testCases := []struct {
		name  string
		apply func(b *booking.Booking) error
		errIs error
	}{
		{
			name:  "confirm twice",
			apply: func(b *booking.Booking) error { _ = b.Confirm(); return b.Confirm() },
			errIs: booking.ErrNotRequested,
		},
		{
			name:  "decline after confirm",
			apply: func(b *booking.Booking) error { _ = b.Confirm(); return b.Decline() },
			errIs: booking.ErrNotRequested,
		},
		{
			name:  "mark paid before confirm",
			apply: func(b *booking.Booking) error { return b.MarkPaid(now) },
			errIs: booking.ErrNotAwaitingPayment,
		},
		{
			name: "mark paid twice",
			apply: func(b *booking.Booking) error {
				_ = b.Confirm()
				_ = b.MarkPaid(now)
				return b.MarkPaid(now)
			},
			errIs: booking.ErrNotAwaitingPayment,
		},
		{
			name:  "owner cancel before confirm",
			apply: func(b *booking.Booking) error { return b.CancelUnpaidByOwner() },
			errIs: booking.ErrNotAwaitingPayment,
		},
		{
			name: "owner cancel after payment",
			apply: func(b *booking.Booking) error {
				_ = b.Confirm()
				_ = b.MarkPaid(now)
				return b.CancelUnpaidByOwner()
			},
			errIs: booking.ErrNotAwaitingPayment,
		},
		{
			name: "renter cancel on a terminal booking",
			apply: func(b *booking.Booking) error {
				_ = b.Decline()
				_, err := b.CancelByRenter(now)
				return err
			},
			errIs: booking.ErrNotLive,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := newRequest(t)
			assert.ErrorIs(t, tc.apply(b), tc.errIs)
		})
	}
}

func TestDecline(t *testing.T) {
	b := newRequest(t)

	require.NoError(t, b.Decline())
	assert.Equal(t, booking.StatusCanceledByOwner, b.Status())
	assert.NotEmpty(t, b.CanceledReason())
	assert.True(t, b.Status().IsTerminal())
}

func TestCancelByRenter(t *testing.T) {
	now := time.Date(2026, time.June, 5, 9, 0, 0, 0, time.UTC)

	t.Run("unpaid cancel starts no refund tracking", func(t *testing.T) {
		b := newRequest(t)
		require.NoError(t, b.Confirm())

		wasPaid, err := b.CancelByRenter(now)
		require.NoError(t, err)
		assert.False(t, wasPaid)
		assert.Equal(t, booking.StatusCanceledByRenter, b.Status())
		assert.Nil(t, b.LastRefundReminderAt())
		assert.False(t, b.RefundOwed())
	})

	t.Run("paid cancel owes a refund and starts the throttle", func(t *testing.T) {
		b := newRequest(t)
		require.NoError(t, b.Confirm())
		require.NoError(t, b.MarkPaid(now))

		wasPaid, err := b.CancelByRenter(now)
		require.NoError(t, err)
		assert.True(t, wasPaid)
		assert.Equal(t, booking.StatusCanceledByRenter, b.Status())
		require.NotNil(t, b.LastRefundReminderAt())
		assert.Equal(t, now, *b.LastRefundReminderAt())
		assert.True(t, b.RefundOwed())
	})

	t.Run("cancel straight from requested", func(t *testing.T) {
		b := newRequest(t)

		wasPaid, err := b.CancelByRenter(now)
		require.NoError(t, err)
		assert.False(t, wasPaid)
		assert.Equal(t, booking.StatusCanceledByRenter, b.Status())
	})
}

func TestConfirmRefund(t *testing.T) {
	now := time.Date(2026, time.June, 5, 9, 0, 0, 0, time.UTC)
	later := now.Add(48 * time.Hour)

	t.Run("refund on a paid renter-canceled booking", func(t *testing.T) {
		b := newRequest(t)
		require.NoError(t, b.Confirm())
		require.NoError(t, b.MarkPaid(now))
		_, err := b.CancelByRenter(now)
		require.NoError(t, err)

		require.NoError(t, b.ConfirmRefund(later))
		require.NotNil(t, b.RefundConfirmedAt())
		assert.Equal(t, later, *b.RefundConfirmedAt())
		assert.False(t, b.RefundOwed())
	})

	t.Run("repeated confirmation keeps the first timestamp", func(t *testing.T) {
		b := newRequest(t)
		require.NoError(t, b.Confirm())
		require.NoError(t, b.MarkPaid(now))
		_, err := b.CancelByRenter(now)
		require.NoError(t, err)

		require.NoError(t, b.ConfirmRefund(later))
		require.NoError(t, b.ConfirmRefund(later.Add(time.Hour)))
		assert.Equal(t, later, *b.RefundConfirmedAt())
	})

	t.Run("no refund owed on an unpaid cancel", func(t *testing.T) {
		b := newRequest(t)
		require.NoError(t, b.Confirm())
		_, err := b.CancelByRenter(now)
		require.NoError(t, err)

		assert.ErrorIs(t, b.ConfirmRefund(later), booking.ErrRefundNotOwed)
	})

	t.Run("no refund outside canceled_by_renter", func(t *testing.T) {
		b := newRequest(t)
		require.NoError(t, b.Confirm())
		require.NoError(t, b.MarkPaid(now))

		assert.ErrorIs(t, b.ConfirmRefund(later), booking.ErrRefundNotOwed)
	})
}

func TestAutoCancel(t *testing.T) {
	t.Run("start date arrived", func(t *testing.T) {
		b := newRequest(t)
		require.NoError(t, b.Confirm())

		require.NoError(t, b.AutoCancel(day(10)))
		assert.Equal(t, booking.StatusCanceledUnpaidTimeout, b.Status())
		assert.NotEmpty(t, b.CanceledReason())
	})

	t.Run("start date already past", func(t *testing.T) {
		b := newRequest(t)
		require.NoError(t, b.Confirm())

		require.NoError(t, b.AutoCancel(day(15)))
		assert.Equal(t, booking.StatusCanceledUnpaidTimeout, b.Status())
	})

	t.Run("start date still ahead", func(t *testing.T) {
		b := newRequest(t)
		require.NoError(t, b.Confirm())

		assert.ErrorIs(t, b.AutoCancel(day(9)), booking.ErrNotAwaitingPayment)
		assert.Equal(t, booking.StatusConfirmedUnpaid, b.Status())
	})

	t.Run("not awaiting payment", func(t *testing.T) {
		b := newRequest(t)

		assert.ErrorIs(t, b.AutoCancel(day(10)), booking.ErrNotAwaitingPayment)
	})
}

func TestStatusSets(t *testing.T) {
	assert.ElementsMatch(t,
		[]booking.Status{booking.StatusRequested, booking.StatusConfirmedUnpaid, booking.StatusPaidConfirmed},
		booking.LiveStatuses())

	for _, s := range booking.LiveStatuses() {
		assert.True(t, s.IsLive(), s)
		assert.False(t, s.IsTerminal(), s)
		assert.True(t, s.IsValid(), s)
	}

	terminals := []booking.Status{
		booking.StatusCanceledByOwner,
		booking.StatusCanceledByRenter,
		booking.StatusCanceledUnpaidTimeout,
	}
	for _, s := range terminals {
		assert.False(t, s.IsLive(), s)
		assert.True(t, s.IsTerminal(), s)
		assert.True(t, s.IsValid(), s)
	}

	assert.False(t, booking.Status("unknown").IsValid())
}
