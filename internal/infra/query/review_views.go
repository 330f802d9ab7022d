package query

import (
	"context"

	"salonbook/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type GetReviewViewByIDRow struct {
	ID           uuid.UUID
	BookingID    uuid.UUID
	CustomerID   uuid.UUID
	SalonID      uuid.UUID
	SalonName    string
	StaffID      pgtype.UUID
	Rating       int32
	Comment      string
	Images       []string
	Status       string
	RejectReason pgtype.Text
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

const getReviewViewByID = `
SELECT r.id, r.booking_id, r.customer_id, r.salon_id, s.name AS salon_name,
       r.staff_id, r.rating, r.comment, r.images, r.status, r.reject_reason,
       r.created_at, r.updated_at
FROM reviews r
JOIN salons s ON s.id = r.salon_id
WHERE r.id = $1
`

func (q *Queries) GetReviewViewByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (GetReviewViewByIDRow, error) {
	var r GetReviewViewByIDRow
	err := dbtx.QueryRow(ctx, getReviewViewByID, id).Scan(
		&r.ID,
		&r.BookingID,
		&r.CustomerID,
		&r.SalonID,
		&r.SalonName,
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

type SalonReviewRow struct {
	ID        uuid.UUID
	StaffID   pgtype.UUID
	Rating    int32
	Comment   string
	Images    []string
	CreatedAt pgtype.Timestamptz
}

type GetReviewsBySalonFirstPageParams struct {
	SalonID   uuid.UUID
	MinRating pgtype.Int4
	MaxRating pgtype.Int4
	Limit     int32
}

// Public listings only ever see published rows; newest first with an id
// tie-break so keyset pagination is total-ordered.
const getReviewsBySalonFirstPage = `
SELECT r.id, r.staff_id, r.rating, r.comment, r.images, r.created_at
FROM reviews r
WHERE r.salon_id = $1
  AND r.status = 'published'
  AND ($2::int4 IS NULL OR r.rating >= $2)
  AND ($3::int4 IS NULL OR r.rating <= $3)
ORDER BY r.created_at DESC, r.id DESC
LIMIT $4
`

func (q *Queries) GetReviewsBySalonFirstPage(ctx context.Context, dbtx db.DBTX, arg GetReviewsBySalonFirstPageParams) ([]SalonReviewRow, error) {
	rows, err := dbtx.Query(ctx, getReviewsBySalonFirstPage, arg.SalonID, arg.MinRating, arg.MaxRating, arg.Limit)
	if err != nil {
		return nil, err
	}
	return scanSalonReviewRows(rows)
}

type GetReviewsBySalonKeysetParams struct {
	SalonID   uuid.UUID
	MinRating pgtype.Int4
	MaxRating pgtype.Int4
	CreatedAt pgtype.Timestamptz
	ID        uuid.UUID
	Limit     int32
}

const getReviewsBySalonKeyset = `
SELECT r.id, r.staff_id, r.rating, r.comment, r.images, r.created_at
FROM reviews r
WHERE r.salon_id = $1
  AND r.status = 'published'
  AND ($2::int4 IS NULL OR r.rating >= $2)
  AND ($3::int4 IS NULL OR r.rating <= $3)
  AND (r.created_at, r.id) < ($4, $5)
ORDER BY r.created_at DESC, r.id DESC
LIMIT $6
`

func (q *Queries) GetReviewsBySalonKeyset(ctx context.Context, dbtx db.DBTX, arg GetReviewsBySalonKeysetParams) ([]SalonReviewRow, error) {
	rows, err := dbtx.Query(ctx, getReviewsBySalonKeyset, arg.SalonID, arg.MinRating, arg.MaxRating, arg.CreatedAt, arg.ID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return scanSalonReviewRows(rows)
}

func scanSalonReviewRows(rows pgx.Rows) ([]SalonReviewRow, error) {
	defer rows.Close()
	var items []SalonReviewRow
	for rows.Next() {
		var r SalonReviewRow
		if err := rows.Scan(&r.ID, &r.StaffID, &r.Rating, &r.Comment, &r.Images, &r.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

type CustomerReviewRow struct {
	ID           uuid.UUID
	SalonID      uuid.UUID
	SalonName    string
	BookingID    uuid.UUID
	Rating       int32
	Comment      string
	Images       []string
	Status       string
	RejectReason pgtype.Text
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

type GetReviewsByCustomerFirstPageParams struct {
	CustomerID uuid.UUID
	Limit      int32
}

const getReviewsByCustomerFirstPage = `
SELECT r.id, r.salon_id, s.name AS salon_name, r.booking_id, r.rating, r.comment,
       r.images, r.status, r.reject_reason, r.created_at, r.updated_at
FROM reviews r
JOIN salons s ON s.id = r.salon_id
WHERE r.customer_id = $1
ORDER BY r.created_at DESC, r.id DESC
LIMIT $2
`

func (q *Queries) GetReviewsByCustomerFirstPage(ctx context.Context, dbtx db.DBTX, arg GetReviewsByCustomerFirstPageParams) ([]CustomerReviewRow, error) {
	rows, err := dbtx.Query(ctx, getReviewsByCustomerFirstPage, arg.CustomerID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return scanCustomerReviewRows(rows)
}

type GetReviewsByCustomerKeysetParams struct {
	CustomerID uuid.UUID
	CreatedAt  pgtype.Timestamptz
	ID         uuid.UUID
	Limit      int32
}

const getReviewsByCustomerKeyset = `
SELECT r.id, r.salon_id, s.name AS salon_name, r.booking_id, r.rating, r.comment,
       r.images, r.status, r.reject_reason, r.created_at, r.updated_at
FROM reviews r
JOIN salons s ON s.id = r.salon_id
WHERE r.customer_id = $1
  AND (r.created_at, r.id) < ($2, $3)
ORDER BY r.created_at DESC, r.id DESC
LIMIT $4
`

func (q *Queries) GetReviewsByCustomerKeyset(ctx context.Context, dbtx db.DBTX, arg GetReviewsByCustomerKeysetParams) ([]CustomerReviewRow, error) {
	rows, err := dbtx.Query(ctx, getReviewsByCustomerKeyset, arg.CustomerID, arg.CreatedAt, arg.ID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return scanCustomerReviewRows(rows)
}

func scanCustomerReviewRows(rows pgx.Rows) ([]CustomerReviewRow, error) {
	defer rows.Close()
	var items []CustomerReviewRow
	for rows.Next() {
		var r CustomerReviewRow
		if err := rows.Scan(&r.ID, &r.SalonID, &r.SalonName, &r.BookingID, &r.Rating, &r.Comment,
			&r.Images, &r.Status, &r.RejectReason, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

type PendingReviewRow struct {
	ID            uuid.UUID
	SalonID       uuid.UUID
	SalonName     string
	CustomerID    uuid.UUID
	CustomerEmail string
	BookingID     uuid.UUID
	Rating        int32
	Comment       string
	Images        []string
	CreatedAt     pgtype.Timestamptz
}

type GetPendingReviewsFirstPageParams struct {
	SalonID       pgtype.UUID
	SubmittedFrom pgtype.Timestamptz
	SubmittedTo   pgtype.Timestamptz
	Limit         int32
}

// The moderation queue drains oldest first.
const getPendingReviewsFirstPage = `
SELECT r.id, r.salon_id, s.name AS salon_name, r.customer_id, u.email AS customer_email,
       r.booking_id, r.rating, r.comment, r.images, r.created_at
FROM reviews r
JOIN salons s ON s.id = r.salon_id
JOIN users u ON u.id = r.customer_id
WHERE r.status = 'pending'
  AND ($1::uuid IS NULL OR r.salon_id = $1)
  AND ($2::timestamptz IS NULL OR r.created_at >= $2)
  AND ($3::timestamptz IS NULL OR r.created_at <= $3)
ORDER BY r.created_at ASC, r.id ASC
LIMIT $4
`

func (q *Queries) GetPendingReviewsFirstPage(ctx context.Context, dbtx db.DBTX, arg GetPendingReviewsFirstPageParams) ([]PendingReviewRow, error) {
	rows, err := dbtx.Query(ctx, getPendingReviewsFirstPage, arg.SalonID, arg.SubmittedFrom, arg.SubmittedTo, arg.Limit)
	if err != nil {
		return nil, err
	}
	return scanPendingReviewRows(rows)
}

type GetPendingReviewsKeysetParams struct {
	SalonID       pgtype.UUID
	SubmittedFrom pgtype.Timestamptz
	SubmittedTo   pgtype.Timestamptz
	CreatedAt     pgtype.Timestamptz
	ID            uuid.UUID
	Limit         int32
}

const getPendingReviewsKeyset = `
SELECT r.id, r.salon_id, s.name AS salon_name, r.customer_id, u.email AS customer_email,
       r.booking_id, r.rating, r.comment, r.images, r.created_at
FROM reviews r
JOIN salons s ON s.id = r.salon_id
JOIN users u ON u.id = r.customer_id
WHERE r.status = 'pending'
  AND ($1::uuid IS NULL OR r.salon_id = $1)
  AND ($2::timestamptz IS NULL OR r.created_at >= $2)
  AND ($3::timestamptz IS NULL OR r.created_at <= $3)
  AND (r.created_at, r.id) > ($4, $5)
ORDER BY r.created_at ASC, r.id ASC
LIMIT $6
`

func (q *Queries) GetPendingReviewsKeyset(ctx context.Context, dbtx db.DBTX, arg GetPendingReviewsKeysetParams) ([]PendingReviewRow, error) {
	rows, err := dbtx.Query(ctx, getPendingReviewsKeyset, arg.SalonID, arg.SubmittedFrom, arg.SubmittedTo, arg.CreatedAt, arg.ID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return scanPendingReviewRows(rows)
}

func scanPendingReviewRows(rows pgx.Rows) ([]PendingReviewRow, error) {
	defer rows.Close()
	var items []PendingReviewRow
	for rows.Next() {
		var r PendingReviewRow
		if err := rows.Scan(&r.ID, &r.SalonID, &r.SalonName, &r.CustomerID, &r.CustomerEmail,
			&r.BookingID, &r.Rating, &r.Comment, &r.Images, &r.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}
