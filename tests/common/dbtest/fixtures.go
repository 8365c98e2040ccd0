//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"rentloop/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, id int64, username, ownerHandle string) int64 {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx,
		"INSERT INTO users (id, username, owner_handle) VALUES ($1, $2, NULLIF($3, '')) ON CONFLICT (id) DO UPDATE SET username = EXCLUDED.username, owner_handle = EXCLUDED.owner_handle",
		id, username, ownerHandle)
	require.NoError(t, err)

	return id
}

func CreateTestItem(t *testing.T, db DBLike, id int64, name, ownerHandle string, depositRequired bool) int64 {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx,
		"INSERT INTO items (id, name, owner_handle, price_raw, area, deposit_required) VALUES ($1, $2, $3, '5 EUR/day', 'Gracia', $4) ON CONFLICT (id) DO NOTHING",
		id, name, ownerHandle, depositRequired)
	require.NoError(t, err)

	return id
}

func CreateTestBooking(t *testing.T, db DBLike, itemID, renterID, ownerID int64, start, end booking.Date, state booking.Status) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	ctx := context.Background()

	var paidAt *time.Time
	if state == booking.StatusPaidConfirmed {
		now := time.Now().UTC()
		paidAt = &now
	}

	_, err := db.Exec(ctx,
		"INSERT INTO bookings (id, item_id, renter_id, owner_id, start_date, end_date, state, paid_confirmed_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)",
		bookingID, itemID, renterID, ownerID, start.Time(), end.Time(), state.String(), paidAt)
	require.NoError(t, err)

	return bookingID
}

func CreateTestReminderTask(t *testing.T, db DBLike, bookingID uuid.UUID, kind booking.ReminderKind, scheduledFor time.Time) uuid.UUID {
	t.Helper()

	taskID := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx,
		"INSERT INTO notification_tasks (id, booking_id, kind, scheduled_for) VALUES ($1, $2, $3, $4)",
		taskID, bookingID, kind.String(), scheduledFor)
	require.NoError(t, err)

	return taskID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between subtests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}
	return nil
}
