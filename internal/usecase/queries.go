package usecase

import (
	"context"
	"time"

	"rentloop/internal/domain/booking"
	"rentloop/internal/infra"
	"rentloop/internal/pkg/errs"
	"rentloop/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// QueryUseCase is the read side: listings and availability lookups with no
// transition semantics.
type QueryUseCase interface {
	GetBooking(ctx context.Context, id uuid.UUID, actorID int64) (*readmodel.BookingRM, error)
	ListByRenter(ctx context.Context, renterID int64) ([]*readmodel.BookingRM, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*readmodel.BookingRM, error)
	ListByItem(ctx context.Context, itemID, actorID int64) ([]*readmodel.BookingRM, error)
	GetItem(ctx context.Context, id int64) (*readmodel.ItemRM, error)
	BookingTasks(ctx context.Context, bookingID uuid.UUID, actorID int64) ([]*readmodel.NotificationTaskRM, error)
	BlockedDates(ctx context.Context, itemID int64, year int, month time.Month) ([]string, error)
}

type queryUseCaseImpl struct {
	bookingRepo      BookingRepository
	itemRepo         ItemRepository
	userRepo         UserRepository
	notificationRepo NotificationRepository
	db               *pgxpool.Pool
}

func NewQueryUseCase(
	bookingRepo BookingRepository,
	itemRepo ItemRepository,
	userRepo UserRepository,
	notificationRepo NotificationRepository,
	pool *pgxpool.Pool,
) QueryUseCase {
	return &queryUseCaseImpl{
		bookingRepo:      bookingRepo,
		itemRepo:         itemRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		db:               pool,
	}
}

// GetBooking returns the booking to either of its parties, nobody else.
func (u *queryUseCaseImpl) GetBooking(ctx context.Context, id uuid.UUID, actorID int64) (*readmodel.BookingRM, error) {
	rm, err := u.bookingRepo.FindRM(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}
	if rm.RenterID != actorID && rm.OwnerID != actorID {
		return nil, errs.ErrNotAllowed
	}
	return rm, nil
}

func (u *queryUseCaseImpl) ListByRenter(ctx context.Context, renterID int64) ([]*readmodel.BookingRM, error) {
	rms, err := u.bookingRepo.FindByRenter(ctx, renterID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list renter bookings")
	}
	return rms, nil
}

func (u *queryUseCaseImpl) ListByOwner(ctx context.Context, ownerID int64) ([]*readmodel.BookingRM, error) {
	rms, err := u.bookingRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list owner bookings")
	}
	return rms, nil
}

// ListByItem is the owner reviewing one item's full history, terminal
// states included.
func (u *queryUseCaseImpl) ListByItem(ctx context.Context, itemID, actorID int64) ([]*readmodel.BookingRM, error) {
	itm, err := u.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrItemNotFound
		}
		return nil, errs.Wrap(err, "failed to find item")
	}

	actor, err := u.userRepo.FindByID(ctx, actorID)
	if err != nil {
		return nil, errs.ErrNotAllowed
	}
	if !itm.OwnedBy(actor.OwnerHandle) && !itm.OwnedBy(actor.Username) {
		return nil, errs.ErrNotAllowed
	}

	rms, err := u.bookingRepo.FindByItem(ctx, itemID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list item bookings")
	}
	return rms, nil
}

func (u *queryUseCaseImpl) GetItem(ctx context.Context, id int64) (*readmodel.ItemRM, error) {
	itm, err := u.itemRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrItemNotFound
		}
		return nil, errs.Wrap(err, "failed to find item")
	}
	return &readmodel.ItemRM{
		ID:              itm.ID(),
		Name:            itm.Name(),
		OwnerHandle:     itm.OwnerHandle(),
		PriceRaw:        itm.PriceRaw(),
		Area:            itm.Area(),
		DepositRequired: itm.DepositRequired(),
		PhotoURL:        itm.PhotoURL(),
	}, nil
}

func (u *queryUseCaseImpl) BookingTasks(ctx context.Context, bookingID uuid.UUID, actorID int64) ([]*readmodel.NotificationTaskRM, error) {
	if _, err := u.GetBooking(ctx, bookingID, actorID); err != nil {
		return nil, err
	}
	tasks, err := u.notificationRepo.FindByBooking(ctx, bookingID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list notification tasks")
	}
	return tasks, nil
}

// BlockedDates is the public availability view of one month: the taken
// days as ISO dates, in order.
func (u *queryUseCaseImpl) BlockedDates(ctx context.Context, itemID int64, year int, month time.Month) ([]string, error) {
	if _, err := u.itemRepo.FindByID(ctx, itemID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrItemNotFound
		}
		return nil, errs.Wrap(err, "failed to find item")
	}

	first, last := booking.MonthBounds(year, month)
	ranges, err := u.bookingRepo.FindLiveRangesByItem(ctx, u.db, itemID, first, last)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load live ranges")
	}

	blocked := booking.BlockedDates(ranges, year, month)
	out := make([]string, 0, len(blocked))
	for d := first; !d.After(last); d = d.AddDays(1) {
		if _, taken := blocked[d]; taken {
			out = append(out, d.String())
		}
	}
	return out, nil
}
