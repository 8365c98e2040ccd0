package usecase

import (
	"context"
	"time"

	"rentloop/internal/domain/booking"
	"rentloop/internal/domain/calendar"
	"rentloop/internal/infra"
	"rentloop/internal/pkg/clock"
	"rentloop/internal/pkg/errs"
	"rentloop/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CalendarUseCase runs the two-step date picker. Sessions are ephemeral
// and advisory: nothing is reserved until the completed range goes through
// CreateBooking with its transactional conflict check.
type CalendarUseCase interface {
	OpenSession(ctx context.Context, userID, itemID int64) (*readmodel.CalendarSessionRM, error)
	Navigate(ctx context.Context, sessionID uuid.UUID, userID int64, deltaMonths int) (*readmodel.CalendarSessionRM, error)
	SelectDate(ctx context.Context, sessionID uuid.UUID, userID int64, date booking.Date) (*readmodel.SelectionRM, error)
	ParseAndBook(ctx context.Context, userID, itemID int64, text string) (*readmodel.BookingRM, error)
}

type calendarUseCaseImpl struct {
	store       SessionStore
	bookingRepo BookingRepository
	itemRepo    ItemRepository
	userRepo    UserRepository
	bookings    BookingUseCase
	db          *pgxpool.Pool
	clock       clock.Clock
	loc         *time.Location
}

func NewCalendarUseCase(
	store SessionStore,
	bookingRepo BookingRepository,
	itemRepo ItemRepository,
	userRepo UserRepository,
	bookings BookingUseCase,
	pool *pgxpool.Pool,
	clk clock.Clock,
	loc *time.Location,
) CalendarUseCase {
	return &calendarUseCaseImpl{
		store:       store,
		bookingRepo: bookingRepo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		bookings:    bookings,
		db:          pool,
		clock:       clk,
		loc:         loc,
	}
}

func (u *calendarUseCaseImpl) OpenSession(ctx context.Context, userID, itemID int64) (*readmodel.CalendarSessionRM, error) {
	itm, err := u.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrItemNotFound
		}
		return nil, errs.Wrap(err, "failed to find item")
	}

	self := false
	if caller, err := u.userRepo.FindByID(ctx, userID); err == nil {
		self = itm.OwnedBy(caller.OwnerHandle) || itm.OwnedBy(caller.Username)
	}

	sess := calendar.Open(itemID, userID, self, u.today())
	u.store.Save(sess)
	return u.render(ctx, sess)
}

func (u *calendarUseCaseImpl) Navigate(ctx context.Context, sessionID uuid.UUID, userID int64, deltaMonths int) (*readmodel.CalendarSessionRM, error) {
	sess, err := u.loadOwned(sessionID, userID)
	if err != nil {
		return nil, err
	}
	sess.Navigate(deltaMonths)
	u.store.Save(sess)
	return u.render(ctx, sess)
}

// SelectDate applies one tapped day. A completed range immediately goes
// through the booking path; the session is gone afterwards whether the
// booking succeeded or hit a conflict.
func (u *calendarUseCaseImpl) SelectDate(ctx context.Context, sessionID uuid.UUID, userID int64, date booking.Date) (*readmodel.SelectionRM, error) {
	sess, err := u.loadOwned(sessionID, userID)
	if err != nil {
		return nil, err
	}

	blocked, err := u.blockedFor(ctx, sess.ItemID(), date.Year(), date.Month())
	if err != nil {
		return nil, err
	}

	result := sess.Select(date, u.today(), blocked)
	switch {
	case result.Completed != nil:
		u.store.Delete(sess.ID())
		rm, err := u.bookings.CreateBooking(ctx, userID, sess.ItemID(), *result.Completed)
		if err != nil {
			return nil, err
		}
		return &readmodel.SelectionRM{Booking: rm}, nil

	case result.AdvancedToEnd:
		u.store.Save(sess)
		view, err := u.render(ctx, sess)
		if err != nil {
			return nil, err
		}
		return &readmodel.SelectionRM{Session: view}, nil

	default:
		view, err := u.render(ctx, sess)
		if err != nil {
			return nil, err
		}
		return &readmodel.SelectionRM{Session: view, Rejected: string(result.Rejected)}, nil
	}
}

// ParseAndBook is the text fallback: "12.06-14.06" style input books
// directly, skipping the interactive session.
func (u *calendarUseCaseImpl) ParseAndBook(ctx context.Context, userID, itemID int64, text string) (*readmodel.BookingRM, error) {
	dates, err := calendar.ParseRange(text, u.today())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidDateRange)
	}
	if dates.Start().Before(u.today()) {
		return nil, errs.ErrDateUnavailable
	}
	return u.bookings.CreateBooking(ctx, userID, itemID, dates)
}

func (u *calendarUseCaseImpl) loadOwned(sessionID uuid.UUID, userID int64) (*calendar.Session, error) {
	sess, err := u.store.Find(sessionID)
	if err != nil {
		return nil, err
	}
	if sess.UserID() != userID {
		return nil, errs.ErrNotAllowed
	}
	return sess, nil
}

func (u *calendarUseCaseImpl) today() booking.Date {
	return booking.DateOf(u.clock.Now().In(u.loc))
}

func (u *calendarUseCaseImpl) blockedFor(ctx context.Context, itemID int64, year int, month time.Month) (map[booking.Date]struct{}, error) {
	first, last := booking.MonthBounds(year, month)
	ranges, err := u.bookingRepo.FindLiveRangesByItem(ctx, u.db, itemID, first, last)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return booking.BlockedDates(ranges, year, month), nil
}

func (u *calendarUseCaseImpl) render(ctx context.Context, sess *calendar.Session) (*readmodel.CalendarSessionRM, error) {
	blocked, err := u.blockedFor(ctx, sess.ItemID(), sess.ViewYear(), sess.ViewMonth())
	if err != nil {
		return nil, err
	}

	cells := sess.MonthGrid(u.today(), blocked)
	days := make([]readmodel.DayCellRM, 0, len(cells))
	for _, c := range cells {
		days = append(days, readmodel.DayCellRM{
			Day:   c.Day,
			Date:  c.Date.String(),
			State: string(c.State),
		})
	}

	view := &readmodel.CalendarSessionRM{
		SessionID:  sess.ID(),
		ItemID:     sess.ItemID(),
		Step:       string(sess.Step()),
		Year:       sess.ViewYear(),
		Month:      int(sess.ViewMonth()),
		MonthLabel: sess.MonthLabel(),
		Days:       days,
	}
	if sd := sess.StartDate(); sd != nil {
		view.StartDate = sd.String()
	}
	return view, nil
}
