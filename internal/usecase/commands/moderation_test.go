//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"testing"

	domreview "salonbook/internal/domain/review"
	"salonbook/internal/usecase/commands"
	"salonbook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type decisionPayload struct {
	ReviewID   uuid.UUID `json:"review_id"`
	BookingID  uuid.UUID `json:"booking_id"`
	CustomerID uuid.UUID `json:"customer_id"`
	SalonID    uuid.UUID `json:"salon_id"`
	Reason     *string   `json:"reason"`
}

func TestApproveReview(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes the review, recomputes aggregates and notifies", func(t *testing.T) {
		f := newCmdFixture()
		staffID := uuid.New()
		snap := builder.NewReviewBuilder().WithStaffID(staffID).BuildSnapshot()
		f.store.reviews[snap.ID] = snap

		err := f.moderationCommands().ApproveReview(ctx, snap.ID)

		require.NoError(t, err)
		require.Len(t, f.store.transitions, 1)
		tr := f.store.transitions[0]
		assert.Equal(t, snap.ID, tr.ReviewID)
		assert.Equal(t, domreview.StatusPending, tr.From)
		assert.Equal(t, domreview.StatusPublished, tr.To)
		assert.Nil(t, tr.RejectReason)
		assert.Equal(t, f.clk.Now(), tr.Now)

		assert.Equal(t, []uuid.UUID{snap.SalonID}, f.store.salonRecalcs)
		assert.Equal(t, []uuid.UUID{staffID}, f.store.staffRecalcs)
		assert.Equal(t, []uuid.UUID{snap.SalonID}, f.cache.salons)
		assert.Equal(t, []uuid.UUID{staffID}, f.cache.staffs)

		require.Len(t, f.store.jobs, 1)
		job := f.store.jobs[0]
		assert.Equal(t, "email", job.Kind)
		assert.Equal(t, "review.approved", job.Topic)
		var payload decisionPayload
		require.NoError(t, json.Unmarshal(job.Payload, &payload))
		assert.Equal(t, snap.ID, payload.ReviewID)
		assert.Equal(t, snap.CustomerID, payload.CustomerID)
		assert.Nil(t, payload.Reason)
	})

	t.Run("skips the staff aggregate when no staff is named", func(t *testing.T) {
		f := newCmdFixture()
		snap := builder.NewReviewBuilder().BuildSnapshot()
		f.store.reviews[snap.ID] = snap

		err := f.moderationCommands().ApproveReview(ctx, snap.ID)

		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{snap.SalonID}, f.store.salonRecalcs)
		assert.Empty(t, f.store.staffRecalcs)
		assert.Empty(t, f.cache.staffs)
	})

	t.Run("a lost race reports not pending", func(t *testing.T) {
		f := newCmdFixture()
		snap := builder.NewReviewBuilder().AsPublished().BuildSnapshot()
		f.store.reviews[snap.ID] = snap
		f.store.transitionOK = false

		err := f.moderationCommands().ApproveReview(ctx, snap.ID)

		assert.ErrorIs(t, err, commands.ErrReviewNotPending)
		assert.Empty(t, f.store.salonRecalcs)
		assert.Empty(t, f.store.jobs)
		assert.Empty(t, f.cache.salons)
	})

	t.Run("unknown review", func(t *testing.T) {
		f := newCmdFixture()

		err := f.moderationCommands().ApproveReview(ctx, uuid.New())

		assert.ErrorIs(t, err, commands.ErrReviewNotFoundWrite)
	})
}

func TestRejectReview(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects with a reason and notifies without recomputing", func(t *testing.T) {
		f := newCmdFixture()
		snap := builder.NewReviewBuilder().BuildSnapshot()
		f.store.reviews[snap.ID] = snap
		reason := "contains personal information"

		err := f.moderationCommands().RejectReview(ctx, snap.ID, &reason)

		require.NoError(t, err)
		require.Len(t, f.store.transitions, 1)
		tr := f.store.transitions[0]
		assert.Equal(t, domreview.StatusPending, tr.From)
		assert.Equal(t, domreview.StatusRejected, tr.To)
		require.NotNil(t, tr.RejectReason)
		assert.Equal(t, reason, *tr.RejectReason)

		// A pending review was never counted.
		assert.Empty(t, f.store.salonRecalcs)
		assert.Empty(t, f.cache.salons)

		require.Len(t, f.store.jobs, 1)
		job := f.store.jobs[0]
		assert.Equal(t, "review.rejected", job.Topic)
		var payload decisionPayload
		require.NoError(t, json.Unmarshal(job.Payload, &payload))
		require.NotNil(t, payload.Reason)
		assert.Equal(t, reason, *payload.Reason)
	})

	t.Run("rejects without a reason", func(t *testing.T) {
		f := newCmdFixture()
		snap := builder.NewReviewBuilder().BuildSnapshot()
		f.store.reviews[snap.ID] = snap

		err := f.moderationCommands().RejectReview(ctx, snap.ID, nil)

		require.NoError(t, err)
		require.Len(t, f.store.transitions, 1)
		assert.Nil(t, f.store.transitions[0].RejectReason)
	})

	t.Run("a lost race reports not pending", func(t *testing.T) {
		f := newCmdFixture()
		snap := builder.NewReviewBuilder().AsRejected("spam").BuildSnapshot()
		f.store.reviews[snap.ID] = snap
		f.store.transitionOK = false

		err := f.moderationCommands().RejectReview(ctx, snap.ID, nil)

		assert.ErrorIs(t, err, commands.ErrReviewNotPending)
		assert.Empty(t, f.store.jobs)
	})

	t.Run("unknown review", func(t *testing.T) {
		f := newCmdFixture()

		err := f.moderationCommands().RejectReview(ctx, uuid.New(), nil)

		assert.ErrorIs(t, err, commands.ErrReviewNotFoundWrite)
	})
}
