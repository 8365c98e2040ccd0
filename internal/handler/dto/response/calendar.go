package response

import (
	"rentloop/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type DayCellResponse struct {
	Day   int    `json:"day"`
	Date  string `json:"date"`
	State string `json:"state"`
}

type CalendarSessionResponse struct {
	SessionID  uuid.UUID         `json:"sessionId"`
	ItemID     int64             `json:"itemId"`
	Step       string            `json:"step"`
	Year       int               `json:"year"`
	Month      int               `json:"month"`
	MonthLabel string            `json:"monthLabel"`
	StartDate  string            `json:"startDate,omitempty"`
	Days       []DayCellResponse `json:"days"`
}

func FromCalendarSessionRM(rm *readmodel.CalendarSessionRM) *CalendarSessionResponse {
	var resp CalendarSessionResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

// SelectionResponse mirrors one tap outcome: a created booking, the next
// session view, or the session view plus a rejection reason.
type SelectionResponse struct {
	Session  *CalendarSessionResponse `json:"session,omitempty"`
	Booking  *BookingResponse         `json:"booking,omitempty"`
	Rejected string                   `json:"rejected,omitempty"`
}

func FromSelectionRM(rm *readmodel.SelectionRM) *SelectionResponse {
	resp := &SelectionResponse{Rejected: rm.Rejected}
	if rm.Session != nil {
		resp.Session = FromCalendarSessionRM(rm.Session)
	}
	if rm.Booking != nil {
		resp.Booking = FromBookingRM(rm.Booking)
	}
	return resp
}

type BlockedDatesResponse struct {
	ItemID  int64    `json:"itemId"`
	Year    int      `json:"year"`
	Month   int      `json:"month"`
	Blocked []string `json:"blocked"`
}
