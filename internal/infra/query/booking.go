package query

import (
	"context"

	"salonbook/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingRow struct {
	ID          uuid.UUID
	CustomerID  uuid.UUID
	SalonID     uuid.UUID
	StaffID     pgtype.UUID
	Status      string
	CompletedAt pgtype.Timestamptz
}

const getBookingByID = `
SELECT id, customer_id, salon_id, staff_id, status, completed_at
FROM bookings
WHERE id = $1
`

func (q *Queries) GetBookingByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (BookingRow, error) {
	var b BookingRow
	err := dbtx.QueryRow(ctx, getBookingByID, id).Scan(
		&b.ID,
		&b.CustomerID,
		&b.SalonID,
		&b.StaffID,
		&b.Status,
		&b.CompletedAt,
	)
	return b, err
}
