package readstore

import (
	"context"
	"time"

	"salonbook/internal/infra"
	"salonbook/internal/infra/db"
	"salonbook/internal/infra/query"
	"salonbook/internal/pkg/pgconv"
	"salonbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type ModerationViewQueries interface {
	GetPendingReviewsFirstPage(ctx context.Context, dbtx db.DBTX, arg query.GetPendingReviewsFirstPageParams) ([]query.PendingReviewRow, error)
	GetPendingReviewsKeyset(ctx context.Context, dbtx db.DBTX, arg query.GetPendingReviewsKeysetParams) ([]query.PendingReviewRow, error)
}

type ModerationReadStore struct {
	queries ModerationViewQueries
	db      db.DBTX
}

func NewModerationReadStore(queries ModerationViewQueries, dbtx db.DBTX) *ModerationReadStore {
	return &ModerationReadStore{
		queries: queries,
		db:      dbtx,
	}
}

func (r *ModerationReadStore) FindPendingFirstPage(ctx context.Context, filters queries.PendingFilters, limit int32) ([]*queries.PendingReviewItem, error) {
	params := query.GetPendingReviewsFirstPageParams{
		SalonID:       pgconv.UUIDPtrToPgtype(filters.SalonID),
		SubmittedFrom: pgconv.TimePtrToPgtype(filters.SubmittedFrom),
		SubmittedTo:   pgconv.TimePtrToPgtype(filters.SubmittedTo),
		Limit:         limit,
	}
	rows, err := r.queries.GetPendingReviewsFirstPage(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get pending reviews first page", err)
	}
	return mapPendingReviewRows(rows), nil
}

func (r *ModerationReadStore) FindPendingKeyset(ctx context.Context, filters queries.PendingFilters, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.PendingReviewItem, error) {
	params := query.GetPendingReviewsKeysetParams{
		SalonID:       pgconv.UUIDPtrToPgtype(filters.SalonID),
		SubmittedFrom: pgconv.TimePtrToPgtype(filters.SubmittedFrom),
		SubmittedTo:   pgconv.TimePtrToPgtype(filters.SubmittedTo),
		CreatedAt:     pgconv.TimeToPgtype(lastCreatedAt),
		ID:            lastID,
		Limit:         limit,
	}
	rows, err := r.queries.GetPendingReviewsKeyset(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get pending reviews keyset", err)
	}
	return mapPendingReviewRows(rows), nil
}

func mapPendingReviewRows(rows []query.PendingReviewRow) []*queries.PendingReviewItem {
	items := make([]*queries.PendingReviewItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &queries.PendingReviewItem{
			ID:            row.ID,
			SalonID:       row.SalonID,
			SalonName:     row.SalonName,
			CustomerID:    row.CustomerID,
			CustomerEmail: row.CustomerEmail,
			BookingID:     row.BookingID,
			Rating:        row.Rating,
			Comment:       row.Comment,
			Images:        row.Images,
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return items
}
