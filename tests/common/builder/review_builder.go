//go:build unit || e2e

package builder

import (
	"time"

	domreview "salonbook/internal/domain/review"
	reqdto "salonbook/internal/handler/dto/request"
	"salonbook/internal/usecase/commands"
	"salonbook/internal/usecase/queries"
	"salonbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	ID           uuid.UUID
	BookingID    uuid.UUID
	CustomerID   uuid.UUID
	SalonID      uuid.UUID
	SalonName    string
	StaffID      *uuid.UUID
	Rating       int
	Comment      string
	Images       []string
	Status       domreview.Status
	RejectReason *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	now := time.Now()
	return &ReviewBuilder{
		ID:         uuid.New(),
		BookingID:  uuid.New(),
		CustomerID: uuid.New(),
		SalonID:    uuid.New(),
		SalonName:  "Test Salon",
		Rating:     5,
		Comment:    "Excellent service, would come back!",
		Images:     []string{"reviews/img-1.jpg"},
		Status:     domreview.StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	rating, err := domreview.NewRating(r.Rating)
	if err != nil {
		return nil, err
	}
	comment, err := domreview.NewComment(r.Comment)
	if err != nil {
		return nil, err
	}
	images, err := domreview.NewImages(r.Images)
	if err != nil {
		return nil, err
	}
	return domreview.NewReview(r.BookingID, r.CustomerID, r.SalonID, r.StaffID, rating, comment, images, r.CreatedAt), nil
}

func (r *ReviewBuilder) BuildSnapshot() *shared.ReviewSnapshot {
	return &shared.ReviewSnapshot{
		ID:           r.ID,
		BookingID:    r.BookingID,
		CustomerID:   r.CustomerID,
		SalonID:      r.SalonID,
		StaffID:      r.StaffID,
		Rating:       r.Rating,
		Comment:      r.Comment,
		Images:       r.Images,
		Status:       r.Status,
		RejectReason: r.RejectReason,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func (r *ReviewBuilder) BuildView() *queries.ReviewView {
	return &queries.ReviewView{
		ID:           r.ID,
		BookingID:    r.BookingID,
		CustomerID:   r.CustomerID,
		SalonID:      r.SalonID,
		SalonName:    r.SalonName,
		StaffID:      r.StaffID,
		Rating:       int32(r.Rating),
		Comment:      r.Comment,
		Images:       r.Images,
		Status:       r.Status.String(),
		StatusLabel:  r.Status.Label(),
		RejectReason: r.RejectReason,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func (r *ReviewBuilder) BuildSalonItem() *queries.SalonReviewItem {
	return &queries.SalonReviewItem{
		ID:        r.ID,
		StaffID:   r.StaffID,
		Rating:    int32(r.Rating),
		Comment:   r.Comment,
		Images:    r.Images,
		CreatedAt: r.CreatedAt,
	}
}

func (r *ReviewBuilder) BuildOwnItem() *queries.OwnReviewItem {
	return &queries.OwnReviewItem{
		ID:           r.ID,
		SalonID:      r.SalonID,
		SalonName:    r.SalonName,
		BookingID:    r.BookingID,
		Rating:       int32(r.Rating),
		Comment:      r.Comment,
		Images:       r.Images,
		Status:       r.Status.String(),
		StatusLabel:  r.Status.Label(),
		RejectReason: r.RejectReason,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func (r *ReviewBuilder) BuildPendingItem() *queries.PendingReviewItem {
	return &queries.PendingReviewItem{
		ID:            r.ID,
		SalonID:       r.SalonID,
		SalonName:     r.SalonName,
		CustomerID:    r.CustomerID,
		CustomerEmail: "reviewer@example.com",
		BookingID:     r.BookingID,
		Rating:        int32(r.Rating),
		Comment:       r.Comment,
		Images:        r.Images,
		CreatedAt:     r.CreatedAt,
	}
}

func (r *ReviewBuilder) BuildCreateCommand() commands.CreateReviewRequest {
	return commands.CreateReviewRequest{
		BookingID: r.BookingID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		Images:    r.Images,
	}
}

func (r *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		BookingID: r.BookingID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		Images:    r.Images,
	}
}

func (r *ReviewBuilder) BuildUpdateRequestDTO() reqdto.UpdateReviewRequest {
	rating := r.Rating
	comment := r.Comment
	return reqdto.UpdateReviewRequest{
		Rating:  &rating,
		Comment: &comment,
	}
}

func (r *ReviewBuilder) BuildSalonRatingStats() *queries.SalonRatingStats {
	return &queries.SalonRatingStats{
		SalonID:       r.SalonID,
		SalonName:     r.SalonName,
		AverageRating: 4.2,
		TotalReviews:  10,
		Rating1Count:  1,
		Rating2Count:  1,
		Rating3Count:  2,
		Rating4Count:  3,
		Rating5Count:  3,
	}
}

func (r *ReviewBuilder) BuildStaffRatingStats(staffID uuid.UUID) *queries.StaffRatingStats {
	return &queries.StaffRatingStats{
		StaffID:       staffID,
		StaffName:     "Test Stylist",
		AverageRating: 4.5,
		TotalReviews:  4,
		Rating4Count:  2,
		Rating5Count:  2,
	}
}

// Fluent builder methods
func (r *ReviewBuilder) WithID(id uuid.UUID) *ReviewBuilder {
	r.ID = id
	return r
}

func (r *ReviewBuilder) WithBookingID(bookingID uuid.UUID) *ReviewBuilder {
	r.BookingID = bookingID
	return r
}

func (r *ReviewBuilder) WithCustomerID(customerID uuid.UUID) *ReviewBuilder {
	r.CustomerID = customerID
	return r
}

func (r *ReviewBuilder) WithSalonID(salonID uuid.UUID) *ReviewBuilder {
	r.SalonID = salonID
	return r
}

func (r *ReviewBuilder) WithStaffID(staffID uuid.UUID) *ReviewBuilder {
	r.StaffID = &staffID
	return r
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = comment
	return r
}

func (r *ReviewBuilder) WithImages(images []string) *ReviewBuilder {
	r.Images = images
	return r
}

func (r *ReviewBuilder) WithStatus(status domreview.Status) *ReviewBuilder {
	r.Status = status
	return r
}

func (r *ReviewBuilder) WithRejectReason(reason string) *ReviewBuilder {
	r.RejectReason = &reason
	return r
}

func (r *ReviewBuilder) WithCreatedAt(createdAt time.Time) *ReviewBuilder {
	r.CreatedAt = createdAt
	return r
}

func (r *ReviewBuilder) AsPublished() *ReviewBuilder {
	r.Status = domreview.StatusPublished
	return r
}

func (r *ReviewBuilder) AsRejected(reason string) *ReviewBuilder {
	r.Status = domreview.StatusRejected
	r.RejectReason = &reason
	return r
}
