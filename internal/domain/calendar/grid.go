package calendar

import (
	"time"

	"rentloop/internal/domain/booking"
)

// DayState classifies a single day of a rendered month. The transport draws
// whatever widget it likes; this classification is the whole contract.
type DayState string

const (
	DaySelectable  DayState = "selectable"
	DayToday       DayState = "today" // selectable, highlighted as the current day
	DayUnavailable DayState = "unavailable"
)

type DayCell struct {
	Day   int
	Date  booking.Date
	State DayState
}

// MonthGrid classifies every day of the session's viewed month: past days,
// blocked days, and days before a chosen start are unavailable; the rest
// are selectable, with today singled out.
func (s *Session) MonthGrid(today booking.Date, blocked map[booking.Date]struct{}) []DayCell {
	first, last := booking.MonthBounds(s.viewYear, s.viewMonth)
	cells := make([]DayCell, 0, last.Day())
	for d := first; !d.After(last); d = d.AddDays(1) {
		state := DayUnavailable
		if s.selectable(d, today, blocked) {
			state = DaySelectable
			if d.Equal(today) {
				state = DayToday
			}
		}
		cells = append(cells, DayCell{Day: d.Day(), Date: d, State: state})
	}
	return cells
}

// MonthLabel is a convenience for transports that caption the grid.
func (s *Session) MonthLabel() string {
	return time.Date(s.viewYear, s.viewMonth, 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
}
