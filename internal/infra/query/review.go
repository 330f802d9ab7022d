package query

import (
	"context"

	"salonbook/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReviewRow struct {
	ID           uuid.UUID
	BookingID    uuid.UUID
	CustomerID   uuid.UUID
	SalonID      uuid.UUID
	StaffID      pgtype.UUID
	Rating       int32
	Comment      string
	Images       []string
	Status       string
	RejectReason pgtype.Text
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

type CreateReviewParams struct {
	ID         uuid.UUID
	BookingID  uuid.UUID
	CustomerID uuid.UUID
	SalonID    uuid.UUID
	StaffID    pgtype.UUID
	Rating     int32
	Comment    string
	Images     []string
	Status     string
	CreatedAt  pgtype.Timestamptz
	UpdatedAt  pgtype.Timestamptz
}

const createReview = `
INSERT INTO reviews (id, booking_id, customer_id, salon_id, staff_id, rating, comment, images, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id
`

func (q *Queries) CreateReview(ctx context.Context, dbtx db.DBTX, arg CreateReviewParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, createReview,
		arg.ID,
		arg.BookingID,
		arg.CustomerID,
		arg.SalonID,
		arg.StaffID,
		arg.Rating,
		arg.Comment,
		arg.Images,
		arg.Status,
		arg.CreatedAt,
		arg.UpdatedAt,
	).Scan(&id)
	return id, err
}

type UpdateReviewContentParams struct {
	ID        uuid.UUID
	Rating    int32
	Comment   string
	Status    string
	UpdatedAt pgtype.Timestamptz
}

// Editing always clears the moderation verdict together with the content.
const updateReviewContent = `
UPDATE reviews
SET rating = $2, comment = $3, status = $4, reject_reason = NULL, updated_at = $5
WHERE id = $1
`

func (q *Queries) UpdateReviewContent(ctx context.Context, dbtx db.DBTX, arg UpdateReviewContentParams) error {
	_, err := dbtx.Exec(ctx, updateReviewContent,
		arg.ID,
		arg.Rating,
		arg.Comment,
		arg.Status,
		arg.UpdatedAt,
	)
	return err
}

type UpdateReviewStatusParams struct {
	ID           uuid.UUID
	FromStatus   string
	ToStatus     string
	RejectReason pgtype.Text
	UpdatedAt    pgtype.Timestamptz
}

// The from-status guard makes concurrent moderation decisions race-safe:
// the loser of the race matches zero rows.
const updateReviewStatus = `
UPDATE reviews
SET status = $3, reject_reason = $4, updated_at = $5
WHERE id = $1 AND status = $2
`

func (q *Queries) UpdateReviewStatus(ctx context.Context, dbtx db.DBTX, arg UpdateReviewStatusParams) (int64, error) {
	tag, err := dbtx.Exec(ctx, updateReviewStatus,
		arg.ID,
		arg.FromStatus,
		arg.ToStatus,
		arg.RejectReason,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteReview = `
DELETE FROM reviews WHERE id = $1
`

func (q *Queries) DeleteReview(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	_, err := dbtx.Exec(ctx, deleteReview, id)
	return err
}

const getReviewByID = `
SELECT id, booking_id, customer_id, salon_id, staff_id, rating, comment, images, status, reject_reason, created_at, updated_at
FROM reviews
WHERE id = $1
`

func (q *Queries) GetReviewByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (ReviewRow, error) {
	var r ReviewRow
	err := dbtx.QueryRow(ctx, getReviewByID, id).Scan(
		&r.ID,
		&r.BookingID,
		&r.CustomerID,
		&r.SalonID,
		&r.StaffID,
		&r.Rating,
		&r.Comment,
		&r.Images,
		&r.Status,
		&r.RejectReason,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	return r, err
}

const reviewExistsForBooking = `
SELECT EXISTS(SELECT 1 FROM reviews WHERE booking_id = $1)
`

func (q *Queries) ReviewExistsForBooking(ctx context.Context, dbtx db.DBTX, bookingID uuid.UUID) (bool, error) {
	var exists bool
	err := dbtx.QueryRow(ctx, reviewExistsForBooking, bookingID).Scan(&exists)
	return exists, err
}
