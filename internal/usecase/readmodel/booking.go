package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// BookingRM is the flattened booking row handed to handlers and sweeps,
// joined with the item's display fields.
type BookingRM struct {
	ID                   uuid.UUID  `json:"id"`
	ItemID               int64      `json:"item_id"`
	ItemName             string     `json:"item_name"`
	DepositRequired      bool       `json:"deposit_required"`
	RenterID             int64      `json:"renter_id"`
	OwnerID              int64      `json:"owner_id"`
	StartDate            time.Time  `json:"start_date"`
	EndDate              time.Time  `json:"end_date"`
	State                string     `json:"state"`
	PaidConfirmedAt      *time.Time `json:"paid_confirmed_at,omitempty"`
	RefundConfirmedAt    *time.Time `json:"refund_confirmed_at,omitempty"`
	LastRefundReminderAt *time.Time `json:"last_refund_reminder_at,omitempty"`
	CanceledReason       *string    `json:"canceled_reason,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

type NotificationTaskRM struct {
	ID           uuid.UUID  `json:"id"`
	BookingID    uuid.UUID  `json:"booking_id"`
	Kind         string     `json:"kind"`
	ScheduledFor time.Time  `json:"scheduled_for"`
	Sent         bool       `json:"sent"`
	SentAt       *time.Time `json:"sent_at,omitempty"`
}

// DueReminderRM joins a due task with just enough booking context to build
// the reminder text and decide staleness.
type DueReminderRM struct {
	TaskID       uuid.UUID
	BookingID    uuid.UUID
	Kind         string
	ScheduledFor time.Time
	BookingState string
	RenterID     int64
	ItemName     string
	StartDate    time.Time
	EndDate      time.Time
}

type ItemRM struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	OwnerHandle     string `json:"owner_handle"`
	PriceRaw        string `json:"price_raw"`
	Area            string `json:"area"`
	DepositRequired bool   `json:"deposit_required"`
	PhotoURL        string `json:"photo_url,omitempty"`
}

type UserRM struct {
	ID          int64  `json:"id"`
	Username    string `json:"username,omitempty"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	OwnerHandle string `json:"owner_handle,omitempty"`
}
