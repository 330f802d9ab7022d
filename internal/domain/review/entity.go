package review

import (
	"time"

	"github.com/google/uuid"
)

// Review is one customer's feedback on one completed booking. A booking
// carries at most one review for its whole lifetime; the store enforces
// this with a unique index on the booking reference.
type Review struct {
	id           uuid.UUID
	bookingID    uuid.UUID
	customerID   uuid.UUID
	salonID      uuid.UUID
	staffID      *uuid.UUID
	rating       Rating
	comment      Comment
	images       Images
	status       Status
	rejectReason *string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewReview creates a freshly submitted review. It always starts in
// StatusPending, so it contributes nothing to the aggregate until a
// moderator approves it.
func NewReview(bookingID, customerID, salonID uuid.UUID, staffID *uuid.UUID, rating Rating, comment Comment, images Images, now time.Time) *Review {
	return &Review{
		id:         uuid.New(),
		bookingID:  bookingID,
		customerID: customerID,
		salonID:    salonID,
		staffID:    staffID,
		rating:     rating,
		comment:    comment,
		images:     images,
		status:     StatusPending,
		createdAt:  now,
		updatedAt:  now,
	}
}

// ReconstructReview rebuilds an aggregate from persisted state.
func ReconstructReview(id, bookingID, customerID, salonID uuid.UUID, staffID *uuid.UUID, rating Rating, comment Comment, images Images, status Status, rejectReason *string, createdAt, updatedAt time.Time) *Review {
	return &Review{
		id:           id,
		bookingID:    bookingID,
		customerID:   customerID,
		salonID:      salonID,
		staffID:      staffID,
		rating:       rating,
		comment:      comment,
		images:       images,
		status:       status,
		rejectReason: rejectReason,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Edit replaces content and resets moderation from any state. The review
// drops out of the counted set immediately so a stale rating is never
// served between the edit and re-approval.
func (r *Review) Edit(rating Rating, comment Comment, now time.Time) {
	r.rating = rating
	r.comment = comment
	r.status = StatusPending
	r.rejectReason = nil
	r.updatedAt = now
}

// Approve publishes a pending review.
func (r *Review) Approve(now time.Time) error {
	if r.status != StatusPending {
		return ErrInvalidTransition
	}
	r.status = StatusPublished
	r.rejectReason = nil
	r.updatedAt = now
	return nil
}

// Reject hides a pending review from the public and records why.
func (r *Review) Reject(reason *string, now time.Time) error {
	if r.status != StatusPending {
		return ErrInvalidTransition
	}
	r.status = StatusRejected
	r.rejectReason = reason
	r.updatedAt = now
	return nil
}

func (r *Review) Counted() bool { return r.status.Counted() }

func (r *Review) ID() uuid.UUID         { return r.id }
func (r *Review) BookingID() uuid.UUID  { return r.bookingID }
func (r *Review) CustomerID() uuid.UUID { return r.customerID }
func (r *Review) SalonID() uuid.UUID    { return r.salonID }
func (r *Review) StaffID() *uuid.UUID   { return r.staffID }
func (r *Review) Rating() Rating        { return r.rating }
func (r *Review) Comment() Comment      { return r.comment }
func (r *Review) Images() Images        { return r.images }
func (r *Review) Status() Status        { return r.status }
func (r *Review) RejectReason() *string { return r.rejectReason }
func (r *Review) CreatedAt() time.Time  { return r.createdAt }
func (r *Review) UpdatedAt() time.Time  { return r.updatedAt }
