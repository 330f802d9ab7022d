package usecase

import (
	"context"

	"salonbook/internal/infra"
	"salonbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type EligibilityReason string

const (
	ReasonBookingNotFound     EligibilityReason = "booking_not_found"
	ReasonNotBookingOwner     EligibilityReason = "not_booking_owner"
	ReasonBookingNotCompleted EligibilityReason = "booking_not_completed"
	ReasonAlreadyReviewed     EligibilityReason = "already_reviewed"
)

type EligibilityResult struct {
	Eligible bool
	Reason   EligibilityReason
}

// EligibilityChecker is the single predicate deciding whether a caller may
// review a booking. The create command (hard gate) and the UI hint endpoint
// (soft check) both go through it so the two surfaces can never diverge.
//
// It fails closed: any condition that cannot be confirmed makes the booking
// ineligible.
type EligibilityChecker struct{}

func NewEligibilityChecker() *EligibilityChecker {
	return &EligibilityChecker{}
}

// Check evaluates the predicate against the given read source. Passing
// tx.Reads() runs it inside the caller's transaction; passing
// uow.CommandReads() runs it standalone.
func (c *EligibilityChecker) Check(ctx context.Context, reads shared.CommandReads, bookingID, callerID uuid.UUID) (*shared.BookingSnapshot, EligibilityResult, error) {
	booking, err := reads.BookingByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, EligibilityResult{Eligible: false, Reason: ReasonBookingNotFound}, nil
		}
		return nil, EligibilityResult{}, err
	}

	if booking.CustomerID != callerID {
		return booking, EligibilityResult{Eligible: false, Reason: ReasonNotBookingOwner}, nil
	}

	if booking.Status != shared.BookingStatusCompleted {
		return booking, EligibilityResult{Eligible: false, Reason: ReasonBookingNotCompleted}, nil
	}

	exists, err := reads.ReviewExistsForBooking(ctx, bookingID)
	if err != nil {
		return booking, EligibilityResult{}, err
	}
	if exists {
		return booking, EligibilityResult{Eligible: false, Reason: ReasonAlreadyReviewed}, nil
	}

	return booking, EligibilityResult{Eligible: true}, nil
}
