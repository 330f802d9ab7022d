package repository

import (
	"context"

	"salonbook/internal/infra"
	"salonbook/internal/infra/db"

	"github.com/google/uuid"
)

type RatingStatsQueries interface {
	RecalcSalonRatingStats(ctx context.Context, dbtx db.DBTX, salonID uuid.UUID) error
	RecalcStaffRatingStats(ctx context.Context, dbtx db.DBTX, staffID uuid.UUID) error
}

type RatingStatsRepository struct {
	queries RatingStatsQueries
}

func NewRatingStatsRepository(queries RatingStatsQueries) *RatingStatsRepository {
	return &RatingStatsRepository{queries: queries}
}

func (r *RatingStatsRepository) RecalcSalonRatingStats(ctx context.Context, tx db.DBTX, salonID uuid.UUID) error {
	if err := r.queries.RecalcSalonRatingStats(ctx, tx, salonID); err != nil {
		return infra.WrapRepoErr("failed to recalc salon rating stats", err)
	}
	return nil
}

func (r *RatingStatsRepository) RecalcStaffRatingStats(ctx context.Context, tx db.DBTX, staffID uuid.UUID) error {
	if err := r.queries.RecalcStaffRatingStats(ctx, tx, staffID); err != nil {
		return infra.WrapRepoErr("failed to recalc staff rating stats", err)
	}
	return nil
}
