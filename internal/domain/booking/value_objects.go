package booking

import (
	"errors"
	"fmt"
	"time"
)

// Date is a whole calendar day with no time-of-day component. All bookings
// work on inclusive day ranges; instants only matter when a reminder
// timetable is computed from a Date in an explicit zone.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates an instant to its calendar day in the instant's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

func (d Date) Year() int         { return d.t.Year() }
func (d Date) Month() time.Month { return d.t.Month() }
func (d Date) Day() int          { return d.t.Day() }

func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }

func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

func (d Date) IsZero() bool { return d.t.IsZero() }

func (d Date) String() string {
	return d.t.Format("2006-01-02")
}

// Time returns the date's value as a UTC-midnight instant, the form the
// DATE column round-trips through pgx.
func (d Date) Time() time.Time { return d.t }

// StartInstant is local midnight of the date in loc, as a UTC instant.
// This is the single place naive dates become absolute time.
func (d Date) StartInstant(loc *time.Location) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc).UTC()
}

var ErrEndBeforeStart = errors.New("end date is before start date")

// DateRange is an inclusive [start, end] span of whole days.
type DateRange struct {
	start Date
	end   Date
}

func NewDateRange(start, end Date) (DateRange, error) {
	if end.Before(start) {
		return DateRange{}, ErrEndBeforeStart
	}
	return DateRange{start: start, end: end}, nil
}

func (r DateRange) Start() Date { return r.start }
func (r DateRange) End() Date   { return r.end }

func (r DateRange) Days() int {
	return int(r.end.t.Sub(r.start.t).Hours()/24) + 1
}

func (r DateRange) Contains(d Date) bool {
	return !d.Before(r.start) && !d.After(r.end)
}

// Overlaps reports whether two inclusive ranges intersect. Ranges that
// merely touch on a boundary day conflict: a day is an exclusive-use unit.
// The three clauses cover "other starts inside r", "other ends inside r"
// and "other encloses r"; together they capture every intersection.
func (r DateRange) Overlaps(other DateRange) bool {
	switch {
	case !r.start.After(other.start) && !r.end.Before(other.start):
		return true
	case !r.start.After(other.end) && !r.end.Before(other.end):
		return true
	case !other.start.After(r.start) && !other.end.Before(r.end):
		return true
	}
	return false
}

func (r DateRange) String() string {
	return r.start.String() + ".." + r.end.String()
}
