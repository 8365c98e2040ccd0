package readmodel

import "github.com/google/uuid"

// DayCellRM is one rendered day of a month grid.
type DayCellRM struct {
	Day   int    `json:"day"`
	Date  string `json:"date"`
	State string `json:"state"`
}

// CalendarSessionRM is the view of a selection session after any
// interaction: which month is shown, which step the picker is in and the
// classification of every day.
type CalendarSessionRM struct {
	SessionID  uuid.UUID   `json:"session_id"`
	ItemID     int64       `json:"item_id"`
	Step       string      `json:"step"`
	Year       int         `json:"year"`
	Month      int         `json:"month"`
	MonthLabel string      `json:"month_label"`
	StartDate  string      `json:"start_date,omitempty"`
	Days       []DayCellRM `json:"days"`
}

// SelectionRM is the outcome of tapping one day. Exactly one of Booking
// (range completed, booking created) or Session (still picking, or the tap
// was rejected) is set; Rejected names the reason when the tap bounced.
type SelectionRM struct {
	Session  *CalendarSessionRM `json:"session,omitempty"`
	Booking  *BookingRM         `json:"booking,omitempty"`
	Rejected string             `json:"rejected,omitempty"`
}
