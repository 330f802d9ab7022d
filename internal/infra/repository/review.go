package repository

import (
	"context"
	"time"

	"salonbook/internal/domain/review"
	"salonbook/internal/infra"
	"salonbook/internal/infra/db"
	"salonbook/internal/infra/query"
	"salonbook/internal/infra/repository/converter"
	"salonbook/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReviewWriteQueries interface {
	CreateReview(ctx context.Context, dbtx db.DBTX, arg query.CreateReviewParams) (uuid.UUID, error)
	UpdateReviewContent(ctx context.Context, dbtx db.DBTX, arg query.UpdateReviewContentParams) error
	UpdateReviewStatus(ctx context.Context, dbtx db.DBTX, arg query.UpdateReviewStatusParams) (int64, error)
	DeleteReview(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type ReviewRepository struct {
	queries ReviewWriteQueries
}

func NewReviewRepository(queries ReviewWriteQueries) *ReviewRepository {
	return &ReviewRepository{queries: queries}
}

func (r *ReviewRepository) Create(ctx context.Context, tx db.DBTX, rev *review.Review) (uuid.UUID, error) {
	params := converter.ReviewToCreateParams(rev)
	id, err := r.queries.CreateReview(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create review", err)
	}
	return id, nil
}

func (r *ReviewRepository) UpdateContent(ctx context.Context, tx db.DBTX, rev *review.Review) error {
	params := converter.ReviewToUpdateContentParams(rev)
	if err := r.queries.UpdateReviewContent(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to update review content", err)
	}
	return nil
}

func (r *ReviewRepository) TransitionStatus(ctx context.Context, tx db.DBTX, reviewID uuid.UUID, from, to review.Status, rejectReason *string, now time.Time) (bool, error) {
	params := query.UpdateReviewStatusParams{
		ID:           reviewID,
		FromStatus:   string(from),
		ToStatus:     string(to),
		RejectReason: pgconv.StringPtrToPgtype(rejectReason),
		UpdatedAt:    pgconv.TimeToPgtype(now),
	}
	affected, err := r.queries.UpdateReviewStatus(ctx, tx, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to transition review status", err)
	}
	return affected > 0, nil
}

func (r *ReviewRepository) Delete(ctx context.Context, tx db.DBTX, reviewID uuid.UUID) error {
	if err := r.queries.DeleteReview(ctx, tx, reviewID); err != nil {
		return infra.WrapRepoErr("failed to delete review", err)
	}
	return nil
}
