//go:build unit || e2e

package builder

import (
	"time"

	"salonbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID          uuid.UUID
	CustomerID  uuid.UUID
	SalonID     uuid.UUID
	StaffID     *uuid.UUID
	Status      string
	CompletedAt *time.Time
}

func NewBookingBuilder() *BookingBuilder {
	completed := time.Now().Add(-24 * time.Hour)
	return &BookingBuilder{
		ID:          uuid.New(),
		CustomerID:  uuid.New(),
		SalonID:     uuid.New(),
		Status:      shared.BookingStatusCompleted,
		CompletedAt: &completed,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:          b.ID,
		CustomerID:  b.CustomerID,
		SalonID:     b.SalonID,
		StaffID:     b.StaffID,
		Status:      b.Status,
		CompletedAt: b.CompletedAt,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithCustomerID(customerID uuid.UUID) *BookingBuilder {
	b.CustomerID = customerID
	return b
}

func (b *BookingBuilder) WithSalonID(salonID uuid.UUID) *BookingBuilder {
	b.SalonID = salonID
	return b
}

func (b *BookingBuilder) WithStaffID(staffID uuid.UUID) *BookingBuilder {
	b.StaffID = &staffID
	return b
}

func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) AsNotCompleted() *BookingBuilder {
	b.Status = "confirmed"
	b.CompletedAt = nil
	return b
}
