package commands

import (
	"context"
	"encoding/json"
	"time"

	"salonbook/internal/domain/review"
	"salonbook/internal/infra"
	"salonbook/internal/pkg/clock"
	"salonbook/internal/pkg/errs"
	"salonbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrReviewNotPending = errs.New("review is not awaiting moderation")

const notificationKindEmail = "email"

type ModerationCommands interface {
	ApproveReview(ctx context.Context, reviewID uuid.UUID) error
	RejectReview(ctx context.Context, reviewID uuid.UUID, reason *string) error
}

type moderationCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	cache shared.RatingCacheInvalidator
}

func NewModerationCommands(uow shared.UnitOfWork, clk clock.Clock, cache shared.RatingCacheInvalidator) ModerationCommands {
	return &moderationCommandsImpl{
		uow:   uow,
		clock: clk,
		cache: cache,
	}
}

func (uc *moderationCommandsImpl) ApproveReview(ctx context.Context, reviewID uuid.UUID) error {
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

		now := uc.clock.Now()
		ok, derr := tx.Reviews().TransitionStatus(ctx, tx.DB(), reviewID, review.StatusPending, review.StatusPublished, nil, now)
		if derr != nil {
			return derr
		}
		if !ok {
			// Either never pending or a concurrent decision won.
			return ErrReviewNotPending
		}

		salonID, staffID = snap.SalonID, snap.StaffID
		// Publication adds the review to the counted set.
		if derr = recalcRatingStats(ctx, tx, salonID, staffID); derr != nil {
			return derr
		}

		return enqueueDecisionNotification(ctx, tx, snap, "review.approved", nil, now)
	})
	if err != nil {
		return err
	}

	invalidateRatingCache(ctx, uc.cache, salonID, staffID)
	return nil
}

func (uc *moderationCommandsImpl) RejectReview(ctx context.Context, reviewID uuid.UUID, reason *string) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ReviewByID(ctx, reviewID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrReviewNotFoundWrite
			}
			return derr
		}

		now := uc.clock.Now()
		ok, derr := tx.Reviews().TransitionStatus(ctx, tx.DB(), reviewID, review.StatusPending, review.StatusRejected, reason, now)
		if derr != nil {
			return derr
		}
		if !ok {
			return ErrReviewNotPending
		}

		// A pending review was never counted, so the aggregates are already
		// correct.
		return enqueueDecisionNotification(ctx, tx, snap, "review.rejected", reason, now)
	})
}

func enqueueDecisionNotification(ctx context.Context, tx shared.Tx, snap *shared.ReviewSnapshot, topic string, reason *string, now time.Time) error {
	payload, err := json.Marshal(reviewDecisionPayload{
		ReviewID:   snap.ID,
		BookingID:  snap.BookingID,
		CustomerID: snap.CustomerID,
		SalonID:    snap.SalonID,
		Reason:     reason,
	})
	if err != nil {
		return errs.Wrap(err, "failed to marshal decision payload")
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), notificationKindEmail, topic, payload, now)
}

type reviewDecisionPayload struct {
	ReviewID   uuid.UUID `json:"review_id"`
	BookingID  uuid.UUID `json:"booking_id"`
	CustomerID uuid.UUID `json:"customer_id"`
	SalonID    uuid.UUID `json:"salon_id"`
	Reason     *string   `json:"reason,omitempty"`
}
