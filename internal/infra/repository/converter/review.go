package converter

import (
	"salonbook/internal/domain/review"
	"salonbook/internal/infra/query"
	"salonbook/internal/pkg/pgconv"
)

func ReviewToCreateParams(rev *review.Review) query.CreateReviewParams {
	return query.CreateReviewParams{
		ID:         rev.ID(),
		BookingID:  rev.BookingID(),
		CustomerID: rev.CustomerID(),
		SalonID:    rev.SalonID(),
		StaffID:    pgconv.UUIDPtrToPgtype(rev.StaffID()),
		Rating:     int32(rev.Rating().Value()),
		Comment:    rev.Comment().String(),
		Images:     rev.Images().Values(),
		Status:     string(rev.Status()),
		CreatedAt:  pgconv.TimeToPgtype(rev.CreatedAt()),
		UpdatedAt:  pgconv.TimeToPgtype(rev.UpdatedAt()),
	}
}

func ReviewToUpdateContentParams(rev *review.Review) query.UpdateReviewContentParams {
	return query.UpdateReviewContentParams{
		ID:        rev.ID(),
		Rating:    int32(rev.Rating().Value()),
		Comment:   rev.Comment().String(),
		Status:    string(rev.Status()),
		UpdatedAt: pgconv.TimeToPgtype(rev.UpdatedAt()),
	}
}
