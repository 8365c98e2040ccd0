//go:build unit

package usecase

import (
	"context"
	"time"

	"rentloop/internal/domain/booking"
	"rentloop/internal/domain/calendar"
	"rentloop/internal/domain/item"
	"rentloop/internal/domain/user"
	"rentloop/internal/infra"
	"rentloop/internal/infra/db"
	"rentloop/internal/pkg/errs"
	"rentloop/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// Hand-rolled fakes for the repo ports. The paths under test never touch
// the transactional pool, so the DBTX arguments are ignored.

type fakeBookingRepo struct {
	rms           map[uuid.UUID]*readmodel.BookingRM
	liveRanges    []booking.DateRange
	unpaidStarted []*readmodel.BookingRM
	refundOwed    []*readmodel.BookingRM

	created []*booking.Booking
	touched []uuid.UUID

	touchErr error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{rms: make(map[uuid.UUID]*readmodel.BookingRM)}
}

func (f *fakeBookingRepo) addRM(rm *readmodel.BookingRM) {
	f.rms[rm.ID] = rm
}

func (f *fakeBookingRepo) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	f.created = append(f.created, b)
	return nil
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*booking.Booking, error) {
	return nil, infra.WrapRepoErr("not found", nil, infra.KindNotFound)
}

func (f *fakeBookingRepo) FindRM(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error) {
	rm, ok := f.rms[id]
	if !ok {
		return nil, infra.WrapRepoErr("not found", nil, infra.KindNotFound)
	}
	return rm, nil
}

func (f *fakeBookingRepo) FindLiveRangesByItem(ctx context.Context, dbtx db.DBTX, itemID int64, from, to booking.Date) ([]booking.DateRange, error) {
	return f.liveRanges, nil
}

func (f *fakeBookingRepo) UpdateTransition(ctx context.Context, dbtx db.DBTX, b *booking.Booking, expected []booking.Status) error {
	return nil
}

func (f *fakeBookingRepo) TouchRefundReminder(ctx context.Context, dbtx db.DBTX, id uuid.UUID, at time.Time) error {
	if f.touchErr != nil {
		return f.touchErr
	}
	f.touched = append(f.touched, id)
	return nil
}

func (f *fakeBookingRepo) FindByRenter(ctx context.Context, renterID int64) ([]*readmodel.BookingRM, error) {
	return nil, nil
}

func (f *fakeBookingRepo) FindByOwner(ctx context.Context, ownerID int64) ([]*readmodel.BookingRM, error) {
	return nil, nil
}

func (f *fakeBookingRepo) FindByItem(ctx context.Context, itemID int64) ([]*readmodel.BookingRM, error) {
	return nil, nil
}

func (f *fakeBookingRepo) FindUnpaidStarted(ctx context.Context, today booking.Date) ([]*readmodel.BookingRM, error) {
	return f.unpaidStarted, nil
}

func (f *fakeBookingRepo) FindRefundOwed(ctx context.Context) ([]*readmodel.BookingRM, error) {
	return f.refundOwed, nil
}

type createdTask struct {
	bookingID    uuid.UUID
	kind         booking.ReminderKind
	scheduledFor time.Time
}

type fakeNotificationRepo struct {
	due     []*readmodel.DueReminderRM
	created []createdTask
	sent    []uuid.UUID

	markSentErr error
}

func (f *fakeNotificationRepo) CreateTask(ctx context.Context, tx db.DBTX, bookingID uuid.UUID, kind booking.ReminderKind, scheduledFor time.Time) error {
	f.created = append(f.created, createdTask{bookingID: bookingID, kind: kind, scheduledFor: scheduledFor})
	return nil
}

func (f *fakeNotificationRepo) FindDue(ctx context.Context, now time.Time) ([]*readmodel.DueReminderRM, error) {
	return f.due, nil
}

func (f *fakeNotificationRepo) MarkSent(ctx context.Context, taskID uuid.UUID, sentAt time.Time) error {
	if f.markSentErr != nil {
		return f.markSentErr
	}
	f.sent = append(f.sent, taskID)
	return nil
}

func (f *fakeNotificationRepo) FindByBooking(ctx context.Context, bookingID uuid.UUID) ([]*readmodel.NotificationTaskRM, error) {
	return nil, nil
}

type sentMessage struct {
	userID int64
	text   string
}

type fakeNotifier struct {
	sent    []sentMessage
	failFor map[int64]bool
}

func (f *fakeNotifier) Notify(ctx context.Context, userID int64, text string) error {
	if f.failFor[userID] {
		return errs.Mark(errs.New("gateway unreachable"), errs.ErrDeliveryFailed)
	}
	f.sent = append(f.sent, sentMessage{userID: userID, text: text})
	return nil
}

func (f *fakeNotifier) textsFor(userID int64) []string {
	var out []string
	for _, m := range f.sent {
		if m.userID == userID {
			out = append(out, m.text)
		}
	}
	return out
}

type fakeItemRepo struct {
	items map[int64]*item.Item
}

func (f *fakeItemRepo) FindByID(ctx context.Context, id int64) (*item.Item, error) {
	itm, ok := f.items[id]
	if !ok {
		return nil, infra.WrapRepoErr("not found", nil, infra.KindNotFound)
	}
	return itm, nil
}

type fakeUserRepo struct {
	users map[int64]*readmodel.UserRM
}

func (f *fakeUserRepo) Upsert(ctx context.Context, u *user.User) error {
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id int64) (*readmodel.UserRM, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, infra.WrapRepoErr("not found", nil, infra.KindNotFound)
	}
	return u, nil
}

func (f *fakeUserRepo) FindByOwnerHandle(ctx context.Context, handle string) (*readmodel.UserRM, error) {
	for _, u := range f.users {
		if u.OwnerHandle == handle {
			return u, nil
		}
	}
	return nil, nil
}

type createBookingCall struct {
	renterID int64
	itemID   int64
	dates    booking.DateRange
}

// fakeBookingUseCase stands in for the transactional booking path when the
// calendar flow is under test.
type fakeBookingUseCase struct {
	calls     []createBookingCall
	result    *readmodel.BookingRM
	createErr error
}

func (f *fakeBookingUseCase) CreateBooking(ctx context.Context, renterID, itemID int64, dates booking.DateRange) (*readmodel.BookingRM, error) {
	f.calls = append(f.calls, createBookingCall{renterID: renterID, itemID: itemID, dates: dates})
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.result, nil
}

func (f *fakeBookingUseCase) Confirm(ctx context.Context, bookingID uuid.UUID, actorID int64) (*readmodel.BookingRM, error) {
	return nil, nil
}

func (f *fakeBookingUseCase) Decline(ctx context.Context, bookingID uuid.UUID, actorID int64) (*readmodel.BookingRM, error) {
	return nil, nil
}

func (f *fakeBookingUseCase) MarkPaid(ctx context.Context, bookingID uuid.UUID, actorID int64) (*readmodel.BookingRM, error) {
	return nil, nil
}

func (f *fakeBookingUseCase) CancelUnpaid(ctx context.Context, bookingID uuid.UUID, actorID int64) (*readmodel.BookingRM, error) {
	return nil, nil
}

func (f *fakeBookingUseCase) CancelByRenter(ctx context.Context, bookingID uuid.UUID, actorID int64) (*readmodel.BookingRM, error) {
	return nil, nil
}

func (f *fakeBookingUseCase) ConfirmRefund(ctx context.Context, bookingID uuid.UUID, actorID int64) (*readmodel.BookingRM, error) {
	return nil, nil
}

func (f *fakeBookingUseCase) NotifyPaid(ctx context.Context, bookingID uuid.UUID, actorID int64) error {
	return nil
}

type fakeSessionStore struct {
	sessions map[uuid.UUID]*calendar.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[uuid.UUID]*calendar.Session)}
}

func (f *fakeSessionStore) Save(sess *calendar.Session) {
	f.sessions[sess.ID()] = sess
}

func (f *fakeSessionStore) Find(id uuid.UUID) (*calendar.Session, error) {
	sess, ok := f.sessions[id]
	if !ok {
		return nil, errs.Mark(errs.New("session missing or expired"), errs.ErrSessionNotFound)
	}
	return sess, nil
}

func (f *fakeSessionStore) Delete(id uuid.UUID) {
	delete(f.sessions, id)
}
