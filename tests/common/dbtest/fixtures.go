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

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestSalon(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	salonID := uuid.New()
	_, err := db.Exec(context.Background(), "INSERT INTO salons (id, name) VALUES ($1, $2)", salonID, name)
	require.NoError(t, err)

	return salonID
}

func CreateTestStaff(t *testing.T, db DBLike, salonID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	staffID := uuid.New()
	_, err := db.Exec(context.Background(), "INSERT INTO staff (id, salon_id, name) VALUES ($1, $2, $3)", staffID, salonID, name)
	require.NoError(t, err)

	return staffID
}

func CreateTestBooking(t *testing.T, db DBLike, customerID, salonID uuid.UUID, staffID *uuid.UUID, status string, completedAt *time.Time) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO bookings (id, customer_id, salon_id, staff_id, status, completed_at) VALUES ($1, $2, $3, $4, $5, $6)",
		bookingID, customerID, salonID, staffID, status, completedAt)
	require.NoError(t, err)

	return bookingID
}

// CreateCompletedBooking is the common case: a visit that finished an hour ago.
func CreateCompletedBooking(t *testing.T, db DBLike, customerID, salonID uuid.UUID, staffID *uuid.UUID) uuid.UUID {
	t.Helper()

	completedAt := time.Now().Add(-1 * time.Hour)
	return CreateTestBooking(t, db, customerID, salonID, staffID, "completed", &completedAt)
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
