package calendar

import (
	"time"

	"rentloop/internal/domain/booking"

	"github.com/google/uuid"
)

type Step string

const (
	StepAwaitingStart Step = "awaiting_start"
	StepAwaitingEnd   Step = "awaiting_end"
)

// RejectReason explains why a tapped day did not advance the session.
type RejectReason string

const (
	ReasonUnavailable    RejectReason = "unavailable"
	ReasonEndBeforeStart RejectReason = "end_before_start"
)

// Session is the ephemeral two-step date picker for one user and one item.
// It is never shared between accesses and holds no locks; losing it is a
// recoverable "context lost", not an error state.
type Session struct {
	id          uuid.UUID
	itemID      int64
	userID      int64
	selfBooking bool
	step        Step
	viewYear    int
	viewMonth   time.Month
	startDate   *booking.Date
}

// Open starts a session in awaiting_start, viewing today's month.
func Open(itemID, userID int64, selfBooking bool, today booking.Date) *Session {
	return &Session{
		id:          uuid.New(),
		itemID:      itemID,
		userID:      userID,
		selfBooking: selfBooking,
		step:        StepAwaitingStart,
		viewYear:    today.Year(),
		viewMonth:   today.Month(),
	}
}

// Navigate shifts the viewed month, wrapping year boundaries. The step and
// any chosen start date survive navigation.
func (s *Session) Navigate(deltaMonths int) {
	m := int(s.viewMonth) + deltaMonths
	y := s.viewYear
	for m > 12 {
		m -= 12
		y++
	}
	for m < 1 {
		m += 12
		y--
	}
	s.viewYear = y
	s.viewMonth = time.Month(m)
}

// SelectionResult is what one Select call produced. Exactly one of the
// three outcomes is set.
type SelectionResult struct {
	AdvancedToEnd bool
	Completed     *booking.DateRange
	Rejected      RejectReason
}

// Select applies one tapped date. blocked is the set of taken days for the
// viewed item (any month; only membership is consulted).
func (s *Session) Select(date booking.Date, today booking.Date, blocked map[booking.Date]struct{}) SelectionResult {
	if s.step == StepAwaitingEnd && s.startDate != nil && date.Before(*s.startDate) {
		return SelectionResult{Rejected: ReasonEndBeforeStart}
	}
	if !s.selectable(date, today, blocked) {
		return SelectionResult{Rejected: ReasonUnavailable}
	}

	if s.step == StepAwaitingStart {
		d := date
		s.startDate = &d
		s.step = StepAwaitingEnd
		return SelectionResult{AdvancedToEnd: true}
	}

	r, err := booking.NewDateRange(*s.startDate, date)
	if err != nil {
		// Guarded above; kept as a belt against a corrupted session.
		return SelectionResult{Rejected: ReasonEndBeforeStart}
	}
	return SelectionResult{Completed: &r}
}

func (s *Session) selectable(date, today booking.Date, blocked map[booking.Date]struct{}) bool {
	if date.Before(today) {
		return false
	}
	if _, taken := blocked[date]; taken {
		return false
	}
	if s.step == StepAwaitingEnd && s.startDate != nil && date.Before(*s.startDate) {
		return false
	}
	return true
}

func (s *Session) ID() uuid.UUID             { return s.id }
func (s *Session) ItemID() int64             { return s.itemID }
func (s *Session) UserID() int64             { return s.userID }
func (s *Session) IsSelfBooking() bool       { return s.selfBooking }
func (s *Session) Step() Step                { return s.step }
func (s *Session) ViewYear() int             { return s.viewYear }
func (s *Session) ViewMonth() time.Month     { return s.viewMonth }
func (s *Session) StartDate() *booking.Date  { return s.startDate }
