package booking

import "time"

type Status string

const (
	StatusRequested             Status = "requested"
	StatusConfirmedUnpaid       Status = "owner_confirmed_unpaid"
	StatusPaidConfirmed         Status = "paid_confirmed"
	StatusCanceledByOwner       Status = "canceled_by_owner"
	StatusCanceledByRenter      Status = "canceled_by_renter"
	StatusCanceledUnpaidTimeout Status = "canceled_unpaid_timeout"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusRequested, StatusConfirmedUnpaid, StatusPaidConfirmed,
		StatusCanceledByOwner, StatusCanceledByRenter, StatusCanceledUnpaidTimeout:
		return true
	default:
		return false
	}
}

// IsLive reports whether the booking still claims its dates. Only live
// bookings participate in the overlap invariant.
func (s Status) IsLive() bool {
	switch s {
	case StatusRequested, StatusConfirmedUnpaid, StatusPaidConfirmed:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	switch s {
	case StatusCanceledByOwner, StatusCanceledByRenter, StatusCanceledUnpaidTimeout:
		return true
	default:
		return false
	}
}

// LiveStatuses is the set counted by the overlap checker, in stable order
// for SQL parameters.
func LiveStatuses() []Status {
	return []Status{StatusRequested, StatusConfirmedUnpaid, StatusPaidConfirmed}
}

// ReminderKind identifies one of the pre-start payment reminders scheduled
// when the owner confirms a booking.
type ReminderKind string

const (
	ReminderMinus24h ReminderKind = "minus_24h"
	ReminderMinus12h ReminderKind = "minus_12h"
	ReminderMinus2h  ReminderKind = "minus_2h"
)

func (k ReminderKind) String() string { return string(k) }

// Offset is how long before the booking's start instant the reminder fires.
func (k ReminderKind) Offset() time.Duration {
	switch k {
	case ReminderMinus24h:
		return 24 * time.Hour
	case ReminderMinus12h:
		return 12 * time.Hour
	case ReminderMinus2h:
		return 2 * time.Hour
	default:
		return 0
	}
}

func (k ReminderKind) Hours() int {
	return int(k.Offset() / time.Hour)
}

func ReminderKinds() []ReminderKind {
	return []ReminderKind{ReminderMinus24h, ReminderMinus12h, ReminderMinus2h}
}
