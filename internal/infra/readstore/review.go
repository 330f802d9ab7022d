package readstore

import (
	"context"
	"time"

	"salonbook/internal/domain/review"
	"salonbook/internal/infra"
	"salonbook/internal/infra/db"
	"salonbook/internal/infra/query"
	"salonbook/internal/pkg/pgconv"
	"salonbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReviewViewQueries interface {
	GetReviewViewByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (query.GetReviewViewByIDRow, error)
	GetReviewsBySalonFirstPage(ctx context.Context, dbtx db.DBTX, arg query.GetReviewsBySalonFirstPageParams) ([]query.SalonReviewRow, error)
	GetReviewsBySalonKeyset(ctx context.Context, dbtx db.DBTX, arg query.GetReviewsBySalonKeysetParams) ([]query.SalonReviewRow, error)
	GetReviewsByCustomerFirstPage(ctx context.Context, dbtx db.DBTX, arg query.GetReviewsByCustomerFirstPageParams) ([]query.CustomerReviewRow, error)
	GetReviewsByCustomerKeyset(ctx context.Context, dbtx db.DBTX, arg query.GetReviewsByCustomerKeysetParams) ([]query.CustomerReviewRow, error)
	GetSalonRatingStats(ctx context.Context, dbtx db.DBTX, salonID uuid.UUID) (query.RatingStatsRow, error)
	GetStaffRatingStats(ctx context.Context, dbtx db.DBTX, staffID uuid.UUID) (query.RatingStatsRow, error)
}

type ReviewReadStore struct {
	queries ReviewViewQueries
	db      db.DBTX
}

func NewReviewReadStore(queries ReviewViewQueries, dbtx db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{
		queries: queries,
		db:      dbtx,
	}
}

func (r *ReviewReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	row, err := r.queries.GetReviewViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get review view by id", err)
	}
	return &queries.ReviewView{
		ID:           row.ID,
		BookingID:    row.BookingID,
		CustomerID:   row.CustomerID,
		SalonID:      row.SalonID,
		SalonName:    row.SalonName,
		StaffID:      pgconv.UUIDPtrFromPgtype(row.StaffID),
		Rating:       row.Rating,
		Comment:      row.Comment,
		Images:       row.Images,
		Status:       row.Status,
		StatusLabel:  review.Status(row.Status).Label(),
		RejectReason: pgconv.StringPtrFromPgtype(row.RejectReason),
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *ReviewReadStore) FindBySalonFirstPage(ctx context.Context, salonID uuid.UUID, limit int32, minRating, maxRating *int) ([]*queries.SalonReviewItem, error) {
	params := query.GetReviewsBySalonFirstPageParams{
		SalonID:   salonID,
		MinRating: toPgInt4(minRating),
		MaxRating: toPgInt4(maxRating),
		Limit:     limit,
	}
	rows, err := r.queries.GetReviewsBySalonFirstPage(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reviews first page by salon", err)
	}
	return mapSalonReviewRows(rows), nil
}

func (r *ReviewReadStore) FindBySalonKeyset(ctx context.Context, salonID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32, minRating, maxRating *int) ([]*queries.SalonReviewItem, error) {
	params := query.GetReviewsBySalonKeysetParams{
		SalonID:   salonID,
		MinRating: toPgInt4(minRating),
		MaxRating: toPgInt4(maxRating),
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Limit:     limit,
	}
	rows, err := r.queries.GetReviewsBySalonKeyset(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reviews keyset by salon", err)
	}
	return mapSalonReviewRows(rows), nil
}

func (r *ReviewReadStore) FindByCustomerFirstPage(ctx context.Context, customerID uuid.UUID, limit int32) ([]*queries.OwnReviewItem, error) {
	params := query.GetReviewsByCustomerFirstPageParams{CustomerID: customerID, Limit: limit}
	rows, err := r.queries.GetReviewsByCustomerFirstPage(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reviews first page by customer", err)
	}
	return mapCustomerReviewRows(rows), nil
}

func (r *ReviewReadStore) FindByCustomerKeyset(ctx context.Context, customerID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.OwnReviewItem, error) {
	params := query.GetReviewsByCustomerKeysetParams{
		CustomerID: customerID,
		CreatedAt:  pgconv.TimeToPgtype(lastCreatedAt),
		ID:         lastID,
		Limit:      limit,
	}
	rows, err := r.queries.GetReviewsByCustomerKeyset(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reviews keyset by customer", err)
	}
	return mapCustomerReviewRows(rows), nil
}

func (r *ReviewReadStore) GetSalonRatingStats(ctx context.Context, salonID uuid.UUID) (*queries.SalonRatingStats, error) {
	row, err := r.queries.GetSalonRatingStats(ctx, r.db, salonID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("salon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get salon rating stats", err)
	}

	avg, err := pgconv.Float64FromNumeric(row.AverageRating)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid average rating value", err)
	}

	return &queries.SalonRatingStats{
		SalonID:       row.ID,
		SalonName:     row.Name,
		AverageRating: avg,
		TotalReviews:  row.TotalReviews,
		Rating1Count:  int32(row.Count1),
		Rating2Count:  int32(row.Count2),
		Rating3Count:  int32(row.Count3),
		Rating4Count:  int32(row.Count4),
		Rating5Count:  int32(row.Count5),
	}, nil
}

func (r *ReviewReadStore) GetStaffRatingStats(ctx context.Context, staffID uuid.UUID) (*queries.StaffRatingStats, error) {
	row, err := r.queries.GetStaffRatingStats(ctx, r.db, staffID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("staff not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get staff rating stats", err)
	}

	avg, err := pgconv.Float64FromNumeric(row.AverageRating)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid average rating value", err)
	}

	return &queries.StaffRatingStats{
		StaffID:       row.ID,
		StaffName:     row.Name,
		AverageRating: avg,
		TotalReviews:  row.TotalReviews,
		Rating1Count:  int32(row.Count1),
		Rating2Count:  int32(row.Count2),
		Rating3Count:  int32(row.Count3),
		Rating4Count:  int32(row.Count4),
		Rating5Count:  int32(row.Count5),
	}, nil
}

func mapSalonReviewRows(rows []query.SalonReviewRow) []*queries.SalonReviewItem {
	items := make([]*queries.SalonReviewItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &queries.SalonReviewItem{
			ID:        row.ID,
			StaffID:   pgconv.UUIDPtrFromPgtype(row.StaffID),
			Rating:    row.Rating,
			Comment:   row.Comment,
			Images:    row.Images,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return items
}

func mapCustomerReviewRows(rows []query.CustomerReviewRow) []*queries.OwnReviewItem {
	items := make([]*queries.OwnReviewItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &queries.OwnReviewItem{
			ID:           row.ID,
			SalonID:      row.SalonID,
			SalonName:    row.SalonName,
			BookingID:    row.BookingID,
			Rating:       row.Rating,
			Comment:      row.Comment,
			Images:       row.Images,
			Status:       row.Status,
			StatusLabel:  review.Status(row.Status).Label(),
			RejectReason: pgconv.StringPtrFromPgtype(row.RejectReason),
			CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
		})
	}
	return items
}

func toPgInt4(v *int) pgtype.Int4 {
	if v == nil {
		return pgtype.Int4{Valid: false}
	}
	return pgtype.Int4{Int32: int32(*v), Valid: true}
}
