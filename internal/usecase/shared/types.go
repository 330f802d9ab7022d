package shared

import (
	"time"

	"salonbook/internal/domain/review"

	"github.com/google/uuid"
)

// Booking status values exposed by the booking collaborator. The review
// core only cares about the terminal completed state.
const BookingStatusCompleted = "completed"

// Minimal snapshot of a booking for command-side validation.
type BookingSnapshot struct {
	ID          uuid.UUID
	CustomerID  uuid.UUID
	SalonID     uuid.UUID
	StaffID     *uuid.UUID
	Status      string
	CompletedAt *time.Time
}

type ReviewSnapshot struct {
	ID           uuid.UUID
	BookingID    uuid.UUID
	CustomerID   uuid.UUID
	SalonID      uuid.UUID
	StaffID      *uuid.UUID
	Rating       int
	Comment      string
	Images       []string
	Status       review.Status
	RejectReason *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
