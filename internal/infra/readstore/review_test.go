//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"salonbook/internal/infra"
	"salonbook/internal/infra/db"
	"salonbook/internal/infra/query"
	"salonbook/internal/infra/readstore"
	readstoremock "salonbook/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

func newReadStore(t *testing.T) (*readstore.ReviewReadStore, *readstoremock.MockReviewViewQueries, db.DBTX) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockQueries := readstoremock.NewMockReviewViewQueries(ctrl)
	mockDB := &mockDBTX{}
	return readstore.NewReviewReadStore(mockQueries, mockDB), mockQueries, mockDB
}

func pgTime(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// =============================================================================
// FindByID Tests
// =============================================================================

func TestReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	reviewID := uuid.New()
	staffID := uuid.New()
	now := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)

	t.Run("success: pending review maps staff id and reject reason", func(t *testing.T) {
		store, mockQueries, mockDB := newReadStore(t)

		reason := "contains personal information"
		row := query.GetReviewViewByIDRow{
			ID:           reviewID,
			BookingID:    uuid.New(),
			CustomerID:   uuid.New(),
			SalonID:      uuid.New(),
			SalonName:    "Bloom Hair Studio",
			StaffID:      pgtype.UUID{Bytes: staffID, Valid: true},
			Rating:       4,
			Comment:      "Great cut, friendly staff.",
			Images:       []string{"reviews/img-1.jpg"},
			Status:       "rejected",
			RejectReason: pgtype.Text{String: reason, Valid: true},
			CreatedAt:    pgTime(now),
			UpdatedAt:    pgTime(now),
		}
		mockQueries.EXPECT().GetReviewViewByID(ctx, mockDB, reviewID).Return(row, nil)

		view, err := store.FindByID(ctx, reviewID)
		require.NoError(t, err)
		assert.Equal(t, reviewID, view.ID)
		require.NotNil(t, view.StaffID)
		assert.Equal(t, staffID, *view.StaffID)
		require.NotNil(t, view.RejectReason)
		assert.Equal(t, reason, *view.RejectReason)
		assert.Equal(t, "rejected", view.Status)
		assert.Equal(t, "Rejected", view.StatusLabel)
		assert.Equal(t, now, view.CreatedAt)
	})

	t.Run("success: null staff and reject reason map to nil", func(t *testing.T) {
		store, mockQueries, mockDB := newReadStore(t)

		row := query.GetReviewViewByIDRow{
			ID:        reviewID,
			Status:    "published",
			CreatedAt: pgTime(now),
			UpdatedAt: pgTime(now),
		}
		mockQueries.EXPECT().GetReviewViewByID(ctx, mockDB, reviewID).Return(row, nil)

		view, err := store.FindByID(ctx, reviewID)
		require.NoError(t, err)
		assert.Nil(t, view.StaffID)
		assert.Nil(t, view.RejectReason)
		assert.Equal(t, "Published", view.StatusLabel)
	})

	t.Run("error: review not found", func(t *testing.T) {
		store, mockQueries, mockDB := newReadStore(t)

		mockQueries.EXPECT().GetReviewViewByID(ctx, mockDB, reviewID).
			Return(query.GetReviewViewByIDRow{}, pgx.ErrNoRows)

		view, err := store.FindByID(ctx, reviewID)
		require.Error(t, err)
		assert.Nil(t, view)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: database error", func(t *testing.T) {
		store, mockQueries, mockDB := newReadStore(t)

		mockQueries.EXPECT().GetReviewViewByID(ctx, mockDB, reviewID).
			Return(query.GetReviewViewByIDRow{}, errDBConnectionLost)

		view, err := store.FindByID(ctx, reviewID)
		require.Error(t, err)
		assert.Nil(t, view)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// =============================================================================
// Salon Listing Tests
// =============================================================================

func TestReadStore_FindBySalonFirstPage(t *testing.T) {
	ctx := context.Background()
	salonID := uuid.New()
	now := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)

	t.Run("success: forwards rating filters and maps rows", func(t *testing.T) {
		store, mockQueries, mockDB := newReadStore(t)

		minRating := 3
		maxRating := 5
		rows := []query.SalonReviewRow{
			{ID: uuid.New(), Rating: 5, Comment: "Wonderful", CreatedAt: pgTime(now)},
			{ID: uuid.New(), Rating: 3, Comment: "Decent", CreatedAt: pgTime(now.Add(-time.Hour))},
		}
		mockQueries.EXPECT().
			GetReviewsBySalonFirstPage(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, arg query.GetReviewsBySalonFirstPageParams) ([]query.SalonReviewRow, error) {
				assert.Equal(t, salonID, arg.SalonID)
				require.True(t, arg.MinRating.Valid)
				assert.Equal(t, int32(3), arg.MinRating.Int32)
				require.True(t, arg.MaxRating.Valid)
				assert.Equal(t, int32(5), arg.MaxRating.Int32)
				assert.Equal(t, int32(21), arg.Limit)
				return rows, nil
			})

		items, err := store.FindBySalonFirstPage(ctx, salonID, 21, &minRating, &maxRating)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, rows[0].ID, items[0].ID)
		assert.Equal(t, now, items[0].CreatedAt)
		assert.Nil(t, items[0].StaffID)
	})

	t.Run("success: nil filters become null params", func(t *testing.T) {
		store, mockQueries, mockDB := newReadStore(t)

		mockQueries.EXPECT().
			GetReviewsBySalonFirstPage(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, arg query.GetReviewsBySalonFirstPageParams) ([]query.SalonReviewRow, error) {
				assert.False(t, arg.MinRating.Valid)
				assert.False(t, arg.MaxRating.Valid)
				return nil, nil
			})

		items, err := store.FindBySalonFirstPage(ctx, salonID, 21, nil, nil)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("success: keyset page carries the cursor position", func(t *testing.T) {
		store, mockQueries, mockDB := newReadStore(t)

		lastID := uuid.New()
		mockQueries.EXPECT().
			GetReviewsBySalonKeyset(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, arg query.GetReviewsBySalonKeysetParams) ([]query.SalonReviewRow, error) {
				assert.Equal(t, lastID, arg.ID)
				assert.Equal(t, now, arg.CreatedAt.Time)
				return nil, nil
			})

		_, err := store.FindBySalonKeyset(ctx, salonID, now, lastID, 21, nil, nil)
		require.NoError(t, err)
	})

	t.Run("error: database error", func(t *testing.T) {
		store, mockQueries, mockDB := newReadStore(t)

		mockQueries.EXPECT().GetReviewsBySalonFirstPage(ctx, mockDB, gomock.Any()).
			Return(nil, errDBConnectionLost)

		items, err := store.FindBySalonFirstPage(ctx, salonID, 21, nil, nil)
		require.Error(t, err)
		assert.Nil(t, items)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// =============================================================================
// Customer Listing Tests
// =============================================================================

func TestReadStore_FindByCustomerFirstPage(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()
	now := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)

	t.Run("success: maps status label and reject reason", func(t *testing.T) {
		store, mockQueries, mockDB := newReadStore(t)

		reason := "off topic"
		rows := []query.CustomerReviewRow{
			{
				ID:           uuid.New(),
				SalonID:      uuid.New(),
				SalonName:    "Bloom Hair Studio",
				BookingID:    uuid.New(),
				Rating:       2,
				Comment:      "Not what I asked for.",
				Status:       "rejected",
				RejectReason: pgtype.Text{String: reason, Valid: true},
				CreatedAt:    pgTime(now),
				UpdatedAt:    pgTime(now),
			},
		}
		mockQueries.EXPECT().
			GetReviewsByCustomerFirstPage(ctx, mockDB, query.GetReviewsByCustomerFirstPageParams{CustomerID: customerID, Limit: 21}).
			Return(rows, nil)

		items, err := store.FindByCustomerFirstPage(ctx, customerID, 21)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Rejected", items[0].StatusLabel)
		require.NotNil(t, items[0].RejectReason)
		assert.Equal(t, reason, *items[0].RejectReason)
	})

	t.Run("error: database error", func(t *testing.T) {
		store, mockQueries, mockDB := newReadStore(t)

		mockQueries.EXPECT().GetReviewsByCustomerFirstPage(ctx, mockDB, gomock.Any()).
			Return(nil, errDBConnectionLost)

		items, err := store.FindByCustomerFirstPage(ctx, customerID, 21)
		require.Error(t, err)
		assert.Nil(t, items)
	})
}

// =============================================================================
// Rating Stats Tests
// =============================================================================

func TestReadStore_GetSalonRatingStats(t *testing.T) {
	ctx := context.Background()
	salonID := uuid.New()

	t.Run("success: numeric average converts to float", func(t *testing.T) {
		store, mockQueries, mockDB := newReadStore(t)

		row := query.RatingStatsRow{
			ID:            salonID,
			Name:          "Bloom Hair Studio",
			AverageRating: pgtype.Numeric{Int: big.NewInt(42), Exp: -1, Valid: true},
			TotalReviews:  10,
			Count1:        1,
			Count2:        1,
			Count3:        2,
			Count4:        3,
			Count5:        3,
		}
		mockQueries.EXPECT().GetSalonRatingStats(ctx, mockDB, salonID).Return(row, nil)

		stats, err := store.GetSalonRatingStats(ctx, salonID)
		require.NoError(t, err)
		assert.Equal(t, salonID, stats.SalonID)
		assert.InDelta(t, 4.2, stats.AverageRating, 0.0001)
		assert.Equal(t, int32(10), stats.TotalReviews)
		assert.Equal(t, int32(3), stats.Rating5Count)
	})

	t.Run("success: salon with no reviews reports zero average", func(t *testing.T) {
		store, mockQueries, mockDB := newReadStore(t)

		row := query.RatingStatsRow{ID: salonID, Name: "Bloom Hair Studio"}
		mockQueries.EXPECT().GetSalonRatingStats(ctx, mockDB, salonID).Return(row, nil)

		stats, err := store.GetSalonRatingStats(ctx, salonID)
		require.NoError(t, err)
		assert.Zero(t, stats.AverageRating)
		assert.Zero(t, stats.TotalReviews)
	})

	t.Run("error: salon not found", func(t *testing.T) {
		store, mockQueries, mockDB := newReadStore(t)

		mockQueries.EXPECT().GetSalonRatingStats(ctx, mockDB, salonID).
			Return(query.RatingStatsRow{}, pgx.ErrNoRows)

		stats, err := store.GetSalonRatingStats(ctx, salonID)
		require.Error(t, err)
		assert.Nil(t, stats)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestReadStore_GetStaffRatingStats(t *testing.T) {
	ctx := context.Background()
	staffID := uuid.New()

	t.Run("success: staff stats map the histogram", func(t *testing.T) {
		store, mockQueries, mockDB := newReadStore(t)

		row := query.RatingStatsRow{
			ID:            staffID,
			Name:          "Aoi Tanaka",
			AverageRating: pgtype.Numeric{Int: big.NewInt(5), Valid: true},
			TotalReviews:  1,
			Count5:        1,
		}
		mockQueries.EXPECT().GetStaffRatingStats(ctx, mockDB, staffID).Return(row, nil)

		stats, err := store.GetStaffRatingStats(ctx, staffID)
		require.NoError(t, err)
		assert.Equal(t, "Aoi Tanaka", stats.StaffName)
		assert.InDelta(t, 5.0, stats.AverageRating, 0.0001)
		assert.Equal(t, int32(1), stats.Rating5Count)
	})

	t.Run("error: staff not found", func(t *testing.T) {
		store, mockQueries, mockDB := newReadStore(t)

		mockQueries.EXPECT().GetStaffRatingStats(ctx, mockDB, staffID).
			Return(query.RatingStatsRow{}, pgx.ErrNoRows)

		stats, err := store.GetStaffRatingStats(ctx, staffID)
		require.Error(t, err)
		assert.Nil(t, stats)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

// mockDBTX is a mock implementation of db.DBTX
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	panic("mockDBTX.Exec was called unexpectedly. Use query mock instead.")
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	panic("mockDBTX.Query was called unexpectedly. Use query mock instead.")
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use query mock instead.")
}
