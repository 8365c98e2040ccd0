package usecase

import (
	"context"
	"time"

	"rentloop/internal/domain/booking"
	"rentloop/internal/domain/calendar"
	"rentloop/internal/domain/item"
	"rentloop/internal/domain/user"
	"rentloop/internal/infra/db"
	"rentloop/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*booking.Booking, error)
	FindRM(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error)
	FindLiveRangesByItem(ctx context.Context, dbtx db.DBTX, itemID int64, from, to booking.Date) ([]booking.DateRange, error)
	UpdateTransition(ctx context.Context, dbtx db.DBTX, b *booking.Booking, expected []booking.Status) error
	TouchRefundReminder(ctx context.Context, dbtx db.DBTX, id uuid.UUID, at time.Time) error
	FindByRenter(ctx context.Context, renterID int64) ([]*readmodel.BookingRM, error)
	FindByOwner(ctx context.Context, ownerID int64) ([]*readmodel.BookingRM, error)
	FindByItem(ctx context.Context, itemID int64) ([]*readmodel.BookingRM, error)
	FindUnpaidStarted(ctx context.Context, today booking.Date) ([]*readmodel.BookingRM, error)
	FindRefundOwed(ctx context.Context) ([]*readmodel.BookingRM, error)
}

type ItemRepository interface {
	FindByID(ctx context.Context, id int64) (*item.Item, error)
}

type UserRepository interface {
	Upsert(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id int64) (*readmodel.UserRM, error)
	FindByOwnerHandle(ctx context.Context, handle string) (*readmodel.UserRM, error)
}

type NotificationRepository interface {
	CreateTask(ctx context.Context, tx db.DBTX, bookingID uuid.UUID, kind booking.ReminderKind, scheduledFor time.Time) error
	FindDue(ctx context.Context, now time.Time) ([]*readmodel.DueReminderRM, error)
	MarkSent(ctx context.Context, taskID uuid.UUID, sentAt time.Time) error
	FindByBooking(ctx context.Context, bookingID uuid.UUID) ([]*readmodel.NotificationTaskRM, error)
}

// Notifier delivers a text to one user through whatever chat gateway is
// configured. Delivery failures are reported, never fatal.
type Notifier interface {
	Notify(ctx context.Context, userID int64, text string) error
}

// SessionStore holds in-flight calendar sessions. Find after expiry
// returns ErrSessionNotFound.
type SessionStore interface {
	Save(sess *calendar.Session)
	Find(id uuid.UUID) (*calendar.Session, error)
	Delete(id uuid.UUID)
}
