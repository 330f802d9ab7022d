package commands

import (
	"context"

	domreview "salonbook/internal/domain/review"
	"salonbook/internal/domain/user"
	"salonbook/internal/infra"
	"salonbook/internal/pkg/clock"
	"salonbook/internal/pkg/errs"
	"salonbook/internal/pkg/patch"
	"salonbook/internal/usecase"
	"salonbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidReviewInput  = errs.New("invalid review input")
	ErrBookingNotEligible  = errs.New("booking not eligible for review")
	ErrDuplicateReview     = errs.New("duplicate review for booking")
	ErrReviewNotFoundWrite = errs.New("review not found")
	ErrReviewNotOwned      = errs.New("review not owned by user")
)

type CreateReviewResult struct {
	ReviewID uuid.UUID
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, req CreateReviewRequest, customerID uuid.UUID) (*CreateReviewResult, error)
	UpdateReview(ctx context.Context, reviewID uuid.UUID, req UpdateReviewRequest, actorID uuid.UUID) error
	DeleteReview(ctx context.Context, reviewID uuid.UUID, actorID uuid.UUID, actorRole user.Role) error
}

type reviewCommandsImpl struct {
	uow         shared.UnitOfWork
	clock       clock.Clock
	eligibility *usecase.EligibilityChecker
	cache       shared.RatingCacheInvalidator
}

func NewReviewCommands(uow shared.UnitOfWork, clk clock.Clock, eligibility *usecase.EligibilityChecker, cache shared.RatingCacheInvalidator) ReviewCommands {
	return &reviewCommandsImpl{
		uow:         uow,
		clock:       clk,
		eligibility: eligibility,
		cache:       cache,
	}
}

type CreateReviewRequest struct {
	BookingID uuid.UUID
	Rating    int
	Comment   string
	Images    []string
}

type UpdateReviewRequest struct {
	Rating  *int
	Comment *string
}

func (uc *reviewCommandsImpl) CreateReview(ctx context.Context, req CreateReviewRequest, customerID uuid.UUID) (*CreateReviewResult, error) {
	rating, err := domreview.NewRating(req.Rating)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidReviewInput)
	}
	comment, err := domreview.NewComment(req.Comment)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidReviewInput)
	}
	images, err := domreview.NewImages(req.Images)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidReviewInput)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Re-checked inside the transaction so the gate and the insert see
		// the same snapshot.
		booking, result, derr := uc.eligibility.Check(ctx, tx.Reads(), req.BookingID, customerID)
		if derr != nil {
			return derr
		}
		if !result.Eligible {
			// An existing review is a duplicate, not a gate failure; the
			// unique index on booking_id backstops the racing case below.
			if result.Reason == usecase.ReasonAlreadyReviewed {
				return errs.Mark(errs.New(string(result.Reason)), ErrDuplicateReview)
			}
			return errs.Mark(errs.New(string(result.Reason)), ErrBookingNotEligible)
		}

		rev := domreview.NewReview(req.BookingID, customerID, booking.SalonID, booking.StaffID, rating, comment, images, uc.clock.Now())
		id, derr := tx.Reviews().Create(ctx, tx.DB(), rev)
		if derr != nil {
			// Unique index on booking_id closes the check-then-insert race.
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.Mark(derr, ErrDuplicateReview)
			}
			return derr
		}
		createdID = id
		// A new review starts pending and contributes nothing yet, so the
		// aggregates stay untouched here.
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateReviewResult{ReviewID: createdID}, nil
}

func (uc *reviewCommandsImpl) UpdateReview(ctx context.Context, reviewID uuid.UUID, req UpdateReviewRequest, actorID uuid.UUID) error {
	var wasCounted bool
	var salonID uuid.UUID
	var staffID *uuid.UUID

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ReviewByID(ctx, reviewID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrReviewNotFoundWrite
			}
			return derr
		}
		if snap.CustomerID != actorID {
			return ErrReviewNotOwned
		}

		rating, verr := domreview.NewRating(patch.Coalesce(req.Rating, snap.Rating))
		if verr != nil {
			return errs.Mark(verr, ErrInvalidReviewInput)
		}
		comment, verr := domreview.NewComment(patch.Coalesce(req.Comment, snap.Comment))
		if verr != nil {
			return errs.Mark(verr, ErrInvalidReviewInput)
		}

		agg := reconstructFromSnapshot(snap)
		agg.Edit(rating, comment, uc.clock.Now())
		if derr = tx.Reviews().UpdateContent(ctx, tx.DB(), agg); derr != nil {
			return derr
		}

		wasCounted = snap.Status.Counted()
		salonID, staffID = snap.SalonID, snap.StaffID
		if wasCounted {
			// The edited review leaves the published set, so the aggregates
			// shrink in the same transaction.
			return recalcRatingStats(ctx, tx, salonID, staffID)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if wasCounted {
		invalidateRatingCache(ctx, uc.cache, salonID, staffID)
	}
	return nil
}

func (uc *reviewCommandsImpl) DeleteReview(ctx context.Context, reviewID uuid.UUID, actorID uuid.UUID, actorRole user.Role) error {
	var wasCounted bool
	var salonID uuid.UUID
	var staffID *uuid.UUID

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ReviewByID(ctx, reviewID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrReviewNotFoundWrite
			}
			return derr
		}
		if snap.CustomerID != actorID && !actorRole.CanModerate() {
			return ErrReviewNotOwned
		}

		if derr = tx.Reviews().Delete(ctx, tx.DB(), reviewID); derr != nil {
			return derr
		}

		wasCounted = snap.Status.Counted()
		salonID, staffID = snap.SalonID, snap.StaffID
		if wasCounted {
			return recalcRatingStats(ctx, tx, salonID, staffID)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if wasCounted {
		invalidateRatingCache(ctx, uc.cache, salonID, staffID)
	}
	return nil
}

func reconstructFromSnapshot(snap *shared.ReviewSnapshot) *domreview.Review {
	rating, _ := domreview.NewRating(snap.Rating)
	comment, _ := domreview.NewComment(snap.Comment)
	return domreview.ReconstructReview(
		snap.ID,
		snap.BookingID,
		snap.CustomerID,
		snap.SalonID,
		snap.StaffID,
		rating,
		comment,
		domreview.ReconstructImages(snap.Images),
		snap.Status,
		snap.RejectReason,
		snap.CreatedAt,
		snap.UpdatedAt,
	)
}

// recalcRatingStats rederives the salon aggregate and, when the review
// names a staff member, the staff aggregate in the same transaction.
func recalcRatingStats(ctx context.Context, tx shared.Tx, salonID uuid.UUID, staffID *uuid.UUID) error {
	if err := tx.RatingStats().RecalcSalonRatingStats(ctx, tx.DB(), salonID); err != nil {
		return err
	}
	if staffID != nil {
		return tx.RatingStats().RecalcStaffRatingStats(ctx, tx.DB(), *staffID)
	}
	return nil
}

func invalidateRatingCache(ctx context.Context, cache shared.RatingCacheInvalidator, salonID uuid.UUID, staffID *uuid.UUID) {
	cache.InvalidateSalon(ctx, salonID)
	if staffID != nil {
		cache.InvalidateStaff(ctx, *staffID)
	}
}
