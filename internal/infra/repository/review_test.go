//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"salonbook/internal/domain/review"
	"salonbook/internal/infra"
	"salonbook/internal/infra/db"
	"salonbook/internal/infra/query"
	"salonbook/internal/infra/repository"
	"salonbook/tests/common/builder"
	repositorymock "salonbook/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Review Tests
// =============================================================================

func TestReviewRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockReviewWriteQueries, *review.Review, db.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: review created successfully",
			setupMock: func(mock *repositorymock.MockReviewWriteQueries, rev *review.Review, tx db.DBTX) {
				mock.EXPECT().CreateReview(ctx, tx, gomock.Any()).Return(rev.ID(), nil)
			},
			expectedError: false,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockReviewWriteQueries, rev *review.Review, tx db.DBTX) {
				mock.EXPECT().CreateReview(ctx, tx, gomock.Any()).Return(uuid.Nil, errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: duplicate review for booking",
			setupMock: func(mock *repositorymock.MockReviewWriteQueries, rev *review.Review, tx db.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().CreateReview(ctx, tx, gomock.Any()).Return(uuid.Nil, dup)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
		{
			name: "error: booking no longer exists",
			setupMock: func(mock *repositorymock.MockReviewWriteQueries, rev *review.Review, tx db.DBTX) {
				fk := &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
				mock.EXPECT().CreateReview(ctx, tx, gomock.Any()).Return(uuid.Nil, fk)
			},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReviewWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReviewRepository(mockQueries)

			domainReview, err := builder.NewReviewBuilder().BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, domainReview, mockDB)

			reviewID, actualError := repo.Create(ctx, mockDB, domainReview)

			if tc.expectedError {
				require.Error(t, actualError)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				}
				assert.Equal(t, uuid.Nil, reviewID, "reviewID should be nil when error occurs")
			} else {
				assert.NoError(t, actualError)
				assert.Equal(t, domainReview.ID(), reviewID)
			}
		})
	}
}

// =============================================================================
// Update Content Tests
// =============================================================================

func TestReviewRepository_UpdateContent(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockReviewWriteQueries, *review.Review, db.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: review content updated",
			setupMock: func(mock *repositorymock.MockReviewWriteQueries, rev *review.Review, tx db.DBTX) {
				mock.EXPECT().UpdateReviewContent(ctx, tx, gomock.Any()).Return(nil)
			},
			expectedError: false,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockReviewWriteQueries, rev *review.Review, tx db.DBTX) {
				mock.EXPECT().UpdateReviewContent(ctx, tx, gomock.Any()).Return(errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReviewWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReviewRepository(mockQueries)

			domainReview, err := builder.NewReviewBuilder().BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, domainReview, mockDB)

			actualError := repo.UpdateContent(ctx, mockDB, domainReview)

			if tc.expectedError {
				require.Error(t, actualError)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				}
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// Transition Status Tests
// =============================================================================

func TestReviewRepository_TransitionStatus(t *testing.T) {
	ctx := context.Background()
	reviewID := uuid.New()
	now := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)
	reason := "contains personal information"

	t.Run("success: pending review published", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockReviewWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewReviewRepository(mockQueries)

		mockQueries.EXPECT().
			UpdateReviewStatus(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, arg query.UpdateReviewStatusParams) (int64, error) {
				assert.Equal(t, reviewID, arg.ID)
				assert.Equal(t, "pending", arg.FromStatus)
				assert.Equal(t, "published", arg.ToStatus)
				assert.False(t, arg.RejectReason.Valid, "publishing must not carry a reject reason")
				return int64(1), nil
			})

		applied, err := repo.TransitionStatus(ctx, mockDB, reviewID, review.StatusPending, review.StatusPublished, nil, now)
		require.NoError(t, err)
		assert.True(t, applied)
	})

	t.Run("success: rejection records the reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockReviewWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewReviewRepository(mockQueries)

		mockQueries.EXPECT().
			UpdateReviewStatus(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, arg query.UpdateReviewStatusParams) (int64, error) {
				assert.Equal(t, "rejected", arg.ToStatus)
				require.True(t, arg.RejectReason.Valid)
				assert.Equal(t, reason, arg.RejectReason.String)
				return int64(1), nil
			})

		applied, err := repo.TransitionStatus(ctx, mockDB, reviewID, review.StatusPending, review.StatusRejected, &reason, now)
		require.NoError(t, err)
		assert.True(t, applied)
	})

	t.Run("lost race: zero rows matched is not an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockReviewWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewReviewRepository(mockQueries)

		mockQueries.EXPECT().UpdateReviewStatus(ctx, mockDB, gomock.Any()).Return(int64(0), nil)

		applied, err := repo.TransitionStatus(ctx, mockDB, reviewID, review.StatusPending, review.StatusPublished, nil, now)
		require.NoError(t, err)
		assert.False(t, applied)
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockReviewWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewReviewRepository(mockQueries)

		mockQueries.EXPECT().UpdateReviewStatus(ctx, mockDB, gomock.Any()).Return(int64(0), errors.New("database connection error"))

		applied, err := repo.TransitionStatus(ctx, mockDB, reviewID, review.StatusPending, review.StatusPublished, nil, now)
		require.Error(t, err)
		assert.False(t, applied)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// =============================================================================
// Delete Review Tests
// =============================================================================

func TestReviewRepository_Delete(t *testing.T) {
	ctx := context.Background()
	reviewID := uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockReviewWriteQueries, uuid.UUID, db.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: review deleted successfully",
			setupMock: func(mock *repositorymock.MockReviewWriteQueries, id uuid.UUID, tx db.DBTX) {
				mock.EXPECT().DeleteReview(ctx, tx, id).Return(nil)
			},
			expectedError: false,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockReviewWriteQueries, id uuid.UUID, tx db.DBTX) {
				mock.EXPECT().DeleteReview(ctx, tx, id).Return(errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReviewWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReviewRepository(mockQueries)

			tc.setupMock(mockQueries, reviewID, mockDB)

			actualError := repo.Delete(ctx, mockDB, reviewID)

			if tc.expectedError {
				require.Error(t, actualError)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				}
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
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
