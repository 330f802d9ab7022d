package query

import (
	"context"

	"salonbook/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// Recomputes take a row lock on the aggregate owner first, so concurrent
// recomputes for the same salon or staff member serialize and the last
// writer always derives from the full committed review set.

const lockSalonForRatingRecalc = `
SELECT id FROM salons WHERE id = $1 FOR UPDATE
`

const recalcSalonRatingStats = `
UPDATE salons
SET average_rating = COALESCE((
        SELECT ROUND(AVG(r.rating)::numeric, 2)
        FROM reviews r
        WHERE r.salon_id = salons.id AND r.status = 'published'
    ), 0),
    total_reviews = (
        SELECT COUNT(*)
        FROM reviews r
        WHERE r.salon_id = salons.id AND r.status = 'published'
    ),
    updated_at = now()
WHERE id = $1
`

func (q *Queries) RecalcSalonRatingStats(ctx context.Context, dbtx db.DBTX, salonID uuid.UUID) error {
	if _, err := dbtx.Exec(ctx, lockSalonForRatingRecalc, salonID); err != nil {
		return err
	}
	_, err := dbtx.Exec(ctx, recalcSalonRatingStats, salonID)
	return err
}

const lockStaffForRatingRecalc = `
SELECT id FROM staff WHERE id = $1 FOR UPDATE
`

const recalcStaffRatingStats = `
UPDATE staff
SET average_rating = COALESCE((
        SELECT ROUND(AVG(r.rating)::numeric, 2)
        FROM reviews r
        WHERE r.staff_id = staff.id AND r.status = 'published'
    ), 0),
    total_reviews = (
        SELECT COUNT(*)
        FROM reviews r
        WHERE r.staff_id = staff.id AND r.status = 'published'
    ),
    updated_at = now()
WHERE id = $1
`

func (q *Queries) RecalcStaffRatingStats(ctx context.Context, dbtx db.DBTX, staffID uuid.UUID) error {
	if _, err := dbtx.Exec(ctx, lockStaffForRatingRecalc, staffID); err != nil {
		return err
	}
	_, err := dbtx.Exec(ctx, recalcStaffRatingStats, staffID)
	return err
}

type RatingStatsRow struct {
	ID            uuid.UUID
	Name          string
	AverageRating pgtype.Numeric
	TotalReviews  int32
	Count1        int64
	Count2        int64
	Count3        int64
	Count4        int64
	Count5        int64
}

// The average and total come from the stored aggregate; the histogram is
// derived live from published rows.
const getSalonRatingStats = `
SELECT s.id, s.name, s.average_rating, s.total_reviews,
       COUNT(*) FILTER (WHERE r.rating = 1) AS count_1,
       COUNT(*) FILTER (WHERE r.rating = 2) AS count_2,
       COUNT(*) FILTER (WHERE r.rating = 3) AS count_3,
       COUNT(*) FILTER (WHERE r.rating = 4) AS count_4,
       COUNT(*) FILTER (WHERE r.rating = 5) AS count_5
FROM salons s
LEFT JOIN reviews r ON r.salon_id = s.id AND r.status = 'published'
WHERE s.id = $1
GROUP BY s.id
`

func (q *Queries) GetSalonRatingStats(ctx context.Context, dbtx db.DBTX, salonID uuid.UUID) (RatingStatsRow, error) {
	var r RatingStatsRow
	err := dbtx.QueryRow(ctx, getSalonRatingStats, salonID).Scan(
		&r.ID,
		&r.Name,
		&r.AverageRating,
		&r.TotalReviews,
		&r.Count1,
		&r.Count2,
		&r.Count3,
		&r.Count4,
		&r.Count5,
	)
	return r, err
}

const getStaffRatingStats = `
SELECT st.id, st.name, st.average_rating, st.total_reviews,
       COUNT(*) FILTER (WHERE r.rating = 1) AS count_1,
       COUNT(*) FILTER (WHERE r.rating = 2) AS count_2,
       COUNT(*) FILTER (WHERE r.rating = 3) AS count_3,
       COUNT(*) FILTER (WHERE r.rating = 4) AS count_4,
       COUNT(*) FILTER (WHERE r.rating = 5) AS count_5
FROM staff st
LEFT JOIN reviews r ON r.staff_id = st.id AND r.status = 'published'
WHERE st.id = $1
GROUP BY st.id
`

func (q *Queries) GetStaffRatingStats(ctx context.Context, dbtx db.DBTX, staffID uuid.UUID) (RatingStatsRow, error) {
	var r RatingStatsRow
	err := dbtx.QueryRow(ctx, getStaffRatingStats, staffID).Scan(
		&r.ID,
		&r.Name,
		&r.AverageRating,
		&r.TotalReviews,
		&r.Count1,
		&r.Count2,
		&r.Count3,
		&r.Count4,
		&r.Count5,
	)
	return r, err
}
