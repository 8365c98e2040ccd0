package calendar

import (
	"errors"
	"strings"
	"time"

	"rentloop/internal/domain/booking"
)

var ErrUnparsableRange = errors.New("cannot parse date range")

// ParseRange is the degraded text fallback for clients without the
// interactive picker: two "DD.MM" tokens separated by an en dash or a
// hyphen, year defaulting to the current one. A single token books one
// day. A reversed range is swapped rather than rejected.
func ParseRange(text string, today booking.Date) (booking.DateRange, error) {
	text = strings.TrimSpace(text)

	var rawStart, rawEnd string
	switch {
	case strings.Contains(text, "–"):
		parts := strings.SplitN(text, "–", 2)
		rawStart, rawEnd = parts[0], parts[1]
	case strings.Contains(text, "-"):
		parts := strings.SplitN(text, "-", 2)
		rawStart, rawEnd = parts[0], parts[1]
	default:
		rawStart, rawEnd = text, text
	}

	start, err := parseDayMonth(rawStart, today.Year())
	if err != nil {
		return booking.DateRange{}, ErrUnparsableRange
	}
	end, err := parseDayMonth(rawEnd, today.Year())
	if err != nil {
		return booking.DateRange{}, ErrUnparsableRange
	}

	if end.Before(start) {
		start, end = end, start
	}
	return booking.NewDateRange(start, end)
}

func parseDayMonth(s string, year int) (booking.Date, error) {
	t, err := time.Parse("2.1", strings.TrimSpace(s))
	if err != nil {
		return booking.Date{}, err
	}
	return booking.NewDate(year, t.Month(), t.Day()), nil
}
