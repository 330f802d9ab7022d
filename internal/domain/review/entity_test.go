//go:build unit

package review_test

import (
	"strings"
	"testing"
	"time"

	"salonbook/internal/domain/review"
	"salonbook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReviewBuilder)
	errIs  error
}

func TestReview(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.False(t, actual.CreatedAt().IsZero())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
		assert.Equal(t, 5, actual.Rating().Value())
		assert.Equal(t, review.StatusPending, actual.Status())
		assert.False(t, actual.Counted())
		assert.Nil(t, actual.RejectReason())
	})

	t.Run("rating validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "below minimum rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(0) },
				errIs:  review.ErrInvalidRating,
			},
			{
				name:   "minimum valid rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(1) },
			},
			{
				name:   "maximum valid rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(5) },
			},
			{
				name:   "above maximum rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(6) },
				errIs:  review.ErrInvalidRating,
			},
			{
				name:   "negative rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(-1) },
				errIs:  review.ErrInvalidRating,
			},
		})
	})

	t.Run("comment validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name: "minimum length comment",
				mutate: func(b *builder.ReviewBuilder) {
					b.WithComment(strings.Repeat("a", review.MinCommentLength))
				},
			},
			{
				name: "maximum length comment",
				mutate: func(b *builder.ReviewBuilder) {
					b.WithComment(strings.Repeat("a", review.MaxCommentLength))
				},
			},
			{
				name:   "empty comment",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment("") },
				errIs:  review.ErrCommentTooShort,
			},
			{
				name:   "whitespace only comment",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment("          ") },
				errIs:  review.ErrCommentTooShort,
			},
			{
				name: "comment below minimum length",
				mutate: func(b *builder.ReviewBuilder) {
					b.WithComment(strings.Repeat("a", review.MinCommentLength-1))
				},
				errIs: review.ErrCommentTooShort,
			},
			{
				name: "comment exceeds maximum length",
				mutate: func(b *builder.ReviewBuilder) {
					b.WithComment(strings.Repeat("a", review.MaxCommentLength+1))
				},
				errIs: review.ErrCommentTooLong,
			},
			// Bounds are in characters: a max-length multibyte comment is
			// several times MaxCommentLength in bytes and must still pass.
			{
				name: "maximum length multibyte comment",
				mutate: func(b *builder.ReviewBuilder) {
					b.WithComment(strings.Repeat("美", review.MaxCommentLength))
				},
			},
			{
				name: "multibyte comment below minimum length",
				mutate: func(b *builder.ReviewBuilder) {
					b.WithComment(strings.Repeat("美", review.MinCommentLength-1))
				},
				errIs: review.ErrCommentTooShort,
			},
			{
				name: "multibyte comment exceeds maximum length",
				mutate: func(b *builder.ReviewBuilder) {
					b.WithComment(strings.Repeat("美", review.MaxCommentLength+1))
				},
				errIs: review.ErrCommentTooLong,
			},
		})
	})

	t.Run("image validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "no images",
				mutate: func(b *builder.ReviewBuilder) { b.WithImages(nil) },
			},
			{
				name: "maximum images",
				mutate: func(b *builder.ReviewBuilder) {
					refs := make([]string, review.MaxImages)
					for i := range refs {
						refs[i] = "reviews/img.jpg"
					}
					b.WithImages(refs)
				},
			},
			{
				name: "too many images",
				mutate: func(b *builder.ReviewBuilder) {
					refs := make([]string, review.MaxImages+1)
					for i := range refs {
						refs[i] = "reviews/img.jpg"
					}
					b.WithImages(refs)
				},
				errIs: review.ErrTooManyImages,
			},
			{
				name:   "empty image reference",
				mutate: func(b *builder.ReviewBuilder) { b.WithImages([]string{"   "}) },
				errIs:  review.ErrEmptyImageRef,
			},
		})
	})

	t.Run("comment trimming", func(t *testing.T) {
		actual, err := builder.NewReviewBuilder().
			WithComment("  Great cut, friendly staff.  ").
			BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "Great cut, friendly staff.", actual.Comment().String())
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		b := builder.NewReviewBuilder()
		review1, err1 := b.BuildDomain()
		review2, err2 := b.BuildDomain()

		require.NoError(t, err1)
		require.NoError(t, err2)

		assert.NotEqual(t, review1.ID(), review2.ID())
	})
}

func TestReview_Moderation(t *testing.T) {
	now := time.Now()

	t.Run("approve pending review", func(t *testing.T) {
		rev, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)

		later := now.Add(time.Hour)
		require.NoError(t, rev.Approve(later))

		assert.Equal(t, review.StatusPublished, rev.Status())
		assert.True(t, rev.Counted())
		assert.Equal(t, later, rev.UpdatedAt())
	})

	t.Run("reject pending review records reason", func(t *testing.T) {
		rev, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)

		reason := "contains personal information"
		require.NoError(t, rev.Reject(&reason, now))

		assert.Equal(t, review.StatusRejected, rev.Status())
		assert.False(t, rev.Counted())
		require.NotNil(t, rev.RejectReason())
		assert.Equal(t, reason, *rev.RejectReason())
	})

	t.Run("reject without reason", func(t *testing.T) {
		rev, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, rev.Reject(nil, now))
		assert.Nil(t, rev.RejectReason())
	})

	t.Run("approve published review fails", func(t *testing.T) {
		rev, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, rev.Approve(now))

		assert.ErrorIs(t, rev.Approve(now), review.ErrInvalidTransition)
	})

	t.Run("approve rejected review fails", func(t *testing.T) {
		rev, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, rev.Reject(nil, now))

		assert.ErrorIs(t, rev.Approve(now), review.ErrInvalidTransition)
	})

	t.Run("reject published review fails", func(t *testing.T) {
		rev, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, rev.Approve(now))

		assert.ErrorIs(t, rev.Reject(nil, now), review.ErrInvalidTransition)
	})
}

func TestReview_Edit(t *testing.T) {
	now := time.Now()

	newContent := func(t *testing.T) (review.Rating, review.Comment) {
		t.Helper()
		rating, err := review.NewRating(3)
		require.NoError(t, err)
		comment, err := review.NewComment("Changed my mind after a week.")
		require.NoError(t, err)
		return rating, comment
	}

	t.Run("editing published review resets to pending", func(t *testing.T) {
		rev, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, rev.Approve(now))
		require.True(t, rev.Counted())

		rating, comment := newContent(t)
		later := now.Add(time.Hour)
		rev.Edit(rating, comment, later)

		assert.Equal(t, review.StatusPending, rev.Status())
		assert.False(t, rev.Counted())
		assert.Equal(t, 3, rev.Rating().Value())
		assert.Equal(t, later, rev.UpdatedAt())
	})

	t.Run("editing rejected review clears the reason", func(t *testing.T) {
		rev, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)
		reason := "spam"
		require.NoError(t, rev.Reject(&reason, now))

		rating, comment := newContent(t)
		rev.Edit(rating, comment, now)

		assert.Equal(t, review.StatusPending, rev.Status())
		assert.Nil(t, rev.RejectReason())
	})
}

func TestStatus(t *testing.T) {
	t.Run("parse", func(t *testing.T) {
		for _, s := range []string{"pending", "published", "rejected"} {
			status, err := review.NewStatus(s)
			require.NoError(t, err)
			assert.Equal(t, s, status.String())
		}

		_, err := review.NewStatus("archived")
		assert.ErrorIs(t, err, review.ErrInvalidStatus)
	})

	t.Run("derived flags", func(t *testing.T) {
		assert.False(t, review.StatusPending.Counted())
		assert.True(t, review.StatusPublished.Counted())
		assert.False(t, review.StatusRejected.Counted())

		assert.True(t, review.StatusPending.Visible())
		assert.True(t, review.StatusPublished.Visible())
		assert.False(t, review.StatusRejected.Visible())
	})

	t.Run("labels", func(t *testing.T) {
		assert.Equal(t, "Under Review", review.StatusPending.Label())
		assert.Equal(t, "Published", review.StatusPublished.Label())
		assert.Equal(t, "Rejected", review.StatusRejected.Label())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewReviewBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
