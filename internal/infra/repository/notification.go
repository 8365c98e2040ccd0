package repository

import (
	"context"
	"time"

	"rentloop/internal/domain/booking"
	"rentloop/internal/infra"
	"rentloop/internal/infra/db"
	"rentloop/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(dbtx db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: dbtx}
}

// CreateTask inserts one reminder task. The unique (booking_id, kind)
// index plus ON CONFLICT DO NOTHING makes scheduling idempotent under
// repeated confirmation.
func (r *NotificationRepository) CreateTask(ctx context.Context, tx db.DBTX, bookingID uuid.UUID, kind booking.ReminderKind, scheduledFor time.Time) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO notification_tasks (id, booking_id, kind, scheduled_for)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (booking_id, kind) DO NOTHING`,
		uuid.New(), bookingID, kind.String(), scheduledFor,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification task", err)
	}
	return nil
}

// FindDue returns unsent tasks whose scheduled time has passed, joined
// with the booking context the reminder sweep needs.
func (r *NotificationRepository) FindDue(ctx context.Context, now time.Time) ([]*readmodel.DueReminderRM, error) {
	rows, err := r.db.Query(ctx, `
		SELECT n.id, n.booking_id, n.kind, n.scheduled_for,
		       b.state, b.renter_id, i.name, b.start_date, b.end_date
		FROM notification_tasks n
		JOIN bookings b ON b.id = n.booking_id
		JOIN items i ON i.id = b.item_id
		WHERE n.sent = FALSE AND n.scheduled_for <= $1
		ORDER BY n.scheduled_for ASC`,
		now,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query due notification tasks", err)
	}
	defer rows.Close()

	var result []*readmodel.DueReminderRM
	for rows.Next() {
		var rm readmodel.DueReminderRM
		if err := rows.Scan(
			&rm.TaskID, &rm.BookingID, &rm.Kind, &rm.ScheduledFor,
			&rm.BookingState, &rm.RenterID, &rm.ItemName, &rm.StartDate, &rm.EndDate,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan due notification task", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read due notification tasks", err)
	}
	return result, nil
}

// MarkSent flips the one-way sent flag. Tasks are immutable afterwards.
func (r *NotificationRepository) MarkSent(ctx context.Context, taskID uuid.UUID, sentAt time.Time) error {
	_, err := r.db.Exec(ctx,
		`UPDATE notification_tasks SET sent = TRUE, sent_at = $2 WHERE id = $1 AND sent = FALSE`,
		taskID, sentAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification task sent", err)
	}
	return nil
}

func (r *NotificationRepository) FindByBooking(ctx context.Context, bookingID uuid.UUID) ([]*readmodel.NotificationTaskRM, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, booking_id, kind, scheduled_for, sent, sent_at
		FROM notification_tasks
		WHERE booking_id = $1
		ORDER BY scheduled_for ASC`,
		bookingID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query notification tasks", err)
	}
	defer rows.Close()

	var result []*readmodel.NotificationTaskRM
	for rows.Next() {
		var rm readmodel.NotificationTaskRM
		if err := rows.Scan(&rm.ID, &rm.BookingID, &rm.Kind, &rm.ScheduledFor, &rm.Sent, &rm.SentAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification task", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read notification tasks", err)
	}
	return result, nil
}
