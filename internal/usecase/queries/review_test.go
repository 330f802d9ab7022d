//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"salonbook/internal/domain/user"
	"salonbook/internal/infra"
	"salonbook/internal/infra/db"
	"salonbook/internal/usecase"
	"salonbook/internal/usecase/queries"
	"salonbook/internal/usecase/shared"
	"salonbook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubReadStore returns canned pages and records what the query layer
// asked for.
type stubReadStore struct {
	view    *queries.ReviewView
	viewErr error

	salonFirst  []*queries.SalonReviewItem
	salonKeyset []*queries.SalonReviewItem
	ownFirst    []*queries.OwnReviewItem
	ownKeyset   []*queries.OwnReviewItem

	salonStats      *queries.SalonRatingStats
	salonStatsErr   error
	salonStatsCalls int
	staffStats      *queries.StaffRatingStats
	staffStatsErr   error
	staffStatsCalls int

	gotLimit         int32
	gotMin, gotMax   *int
	gotLastCreatedAt time.Time
	gotLastID        uuid.UUID
}

func (s *stubReadStore) FindByID(_ context.Context, _ uuid.UUID) (*queries.ReviewView, error) {
	return s.view, s.viewErr
}

func (s *stubReadStore) FindBySalonFirstPage(_ context.Context, _ uuid.UUID, limit int32, minRating, maxRating *int) ([]*queries.SalonReviewItem, error) {
	s.gotLimit = limit
	s.gotMin, s.gotMax = minRating, maxRating
	return s.salonFirst, nil
}

func (s *stubReadStore) FindBySalonKeyset(_ context.Context, _ uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32, minRating, maxRating *int) ([]*queries.SalonReviewItem, error) {
	s.gotLimit = limit
	s.gotMin, s.gotMax = minRating, maxRating
	s.gotLastCreatedAt = lastCreatedAt
	s.gotLastID = lastID
	return s.salonKeyset, nil
}

func (s *stubReadStore) FindByCustomerFirstPage(_ context.Context, _ uuid.UUID, limit int32) ([]*queries.OwnReviewItem, error) {
	s.gotLimit = limit
	return s.ownFirst, nil
}

func (s *stubReadStore) FindByCustomerKeyset(_ context.Context, _ uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.OwnReviewItem, error) {
	s.gotLimit = limit
	s.gotLastCreatedAt = lastCreatedAt
	s.gotLastID = lastID
	return s.ownKeyset, nil
}

func (s *stubReadStore) GetSalonRatingStats(_ context.Context, _ uuid.UUID) (*queries.SalonRatingStats, error) {
	s.salonStatsCalls++
	return s.salonStats, s.salonStatsErr
}

func (s *stubReadStore) GetStaffRatingStats(_ context.Context, _ uuid.UUID) (*queries.StaffRatingStats, error) {
	s.staffStatsCalls++
	return s.staffStats, s.staffStatsErr
}

type stubStatsCache struct {
	salon map[uuid.UUID]*queries.SalonRatingStats
	staff map[uuid.UUID]*queries.StaffRatingStats

	getErr    error
	salonSets int
	staffSets int
}

func newStubStatsCache() *stubStatsCache {
	return &stubStatsCache{
		salon: make(map[uuid.UUID]*queries.SalonRatingStats),
		staff: make(map[uuid.UUID]*queries.StaffRatingStats),
	}
}

func (c *stubStatsCache) GetSalonStats(_ context.Context, salonID uuid.UUID) (*queries.SalonRatingStats, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.salon[salonID], nil
}

func (c *stubStatsCache) SetSalonStats(_ context.Context, stats *queries.SalonRatingStats) {
	c.salonSets++
	c.salon[stats.SalonID] = stats
}

func (c *stubStatsCache) GetStaffStats(_ context.Context, staffID uuid.UUID) (*queries.StaffRatingStats, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.staff[staffID], nil
}

func (c *stubStatsCache) SetStaffStats(_ context.Context, stats *queries.StaffRatingStats) {
	c.staffSets++
	c.staff[stats.StaffID] = stats
}

// stubReads serves the eligibility predicate outside a transaction.
type stubReads struct {
	booking  *shared.BookingSnapshot
	reviewed bool
}

func (r *stubReads) BookingByID(_ context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	if r.booking == nil || r.booking.ID != id {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return r.booking, nil
}

func (r *stubReads) ReviewByID(_ context.Context, _ uuid.UUID) (*shared.ReviewSnapshot, error) {
	return nil, infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
}

func (r *stubReads) ReviewExistsForBooking(_ context.Context, _ uuid.UUID) (bool, error) {
	return r.reviewed, nil
}

type stubUoW struct {
	reads *stubReads
}

func (u *stubUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return nil
}

func (u *stubUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *stubUoW) CommandReads() shared.CommandReads {
	return u.reads
}

func newReviewQueries(store *stubReadStore, cache *stubStatsCache, reads *stubReads) queries.ReviewQueries {
	if reads == nil {
		reads = &stubReads{}
	}
	return queries.NewReviewQueries(store, cache, usecase.NewEligibilityChecker(), &stubUoW{reads: reads})
}

func TestReviewQueries_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("published review is visible to anyone", func(t *testing.T) {
		view := builder.NewReviewBuilder().AsPublished().BuildView()
		q := newReviewQueries(&stubReadStore{view: view}, newStubStatsCache(), nil)

		got, err := q.GetByID(ctx, view.ID, uuid.Nil, user.Role(""))

		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("pending review is visible to its author", func(t *testing.T) {
		view := builder.NewReviewBuilder().BuildView()
		q := newReviewQueries(&stubReadStore{view: view}, newStubStatsCache(), nil)

		got, err := q.GetByID(ctx, view.ID, view.CustomerID, user.RoleCustomer)

		require.NoError(t, err)
		assert.Equal(t, "pending", got.Status)
	})

	t.Run("pending review is hidden from strangers as not found", func(t *testing.T) {
		view := builder.NewReviewBuilder().BuildView()
		q := newReviewQueries(&stubReadStore{view: view}, newStubStatsCache(), nil)

		_, err := q.GetByID(ctx, view.ID, uuid.New(), user.RoleCustomer)

		assert.ErrorIs(t, err, queries.ErrReviewNotFound)
	})

	t.Run("rejected review is visible to a moderator", func(t *testing.T) {
		view := builder.NewReviewBuilder().AsRejected("off topic").BuildView()
		q := newReviewQueries(&stubReadStore{view: view}, newStubStatsCache(), nil)

		got, err := q.GetByID(ctx, view.ID, uuid.New(), user.RoleModerator)

		require.NoError(t, err)
		assert.Equal(t, "rejected", got.Status)
	})

	t.Run("missing review", func(t *testing.T) {
		store := &stubReadStore{viewErr: infra.WrapRepoErr("review not found", nil, infra.KindNotFound)}
		q := newReviewQueries(store, newStubStatsCache(), nil)

		_, err := q.GetByID(ctx, uuid.New(), uuid.Nil, user.Role(""))

		assert.ErrorIs(t, err, queries.ErrReviewNotFound)
	})
}

func TestReviewQueries_ListBySalon(t *testing.T) {
	ctx := context.Background()
	salonID := uuid.New()

	t.Run("short page has no next cursor and forwards filters", func(t *testing.T) {
		minRating, maxRating := 3, 5
		store := &stubReadStore{salonFirst: []*queries.SalonReviewItem{
			builder.NewReviewBuilder().BuildSalonItem(),
		}}
		q := newReviewQueries(store, newStubStatsCache(), nil)

		rows, next, err := q.ListBySalon(ctx, salonID, queries.ReviewFilters{MinRating: &minRating, MaxRating: &maxRating}, nil, 20)

		require.NoError(t, err)
		assert.Len(t, rows, 1)
		assert.Nil(t, next)
		// One extra row is fetched to detect whether another page exists.
		assert.Equal(t, int32(21), store.gotLimit)
		assert.Equal(t, &minRating, store.gotMin)
		assert.Equal(t, &maxRating, store.gotMax)
	})

	t.Run("full page yields a cursor pointing at the last returned row", func(t *testing.T) {
		items := []*queries.SalonReviewItem{
			builder.NewReviewBuilder().BuildSalonItem(),
			builder.NewReviewBuilder().BuildSalonItem(),
			builder.NewReviewBuilder().BuildSalonItem(),
		}
		store := &stubReadStore{salonFirst: items}
		q := newReviewQueries(store, newStubStatsCache(), nil)

		rows, next, err := q.ListBySalon(ctx, salonID, queries.ReviewFilters{}, nil, 2)

		require.NoError(t, err)
		assert.Len(t, rows, 2)
		require.NotNil(t, next)

		gotAt, gotID, derr := queries.DecodeAfterCursor(next.After)
		require.NoError(t, derr)
		assert.Equal(t, items[1].ID, gotID)
		assert.Equal(t, items[1].CreatedAt.UnixMicro(), gotAt.UnixMicro())
	})

	t.Run("cursor page resumes from the decoded position", func(t *testing.T) {
		lastAt := time.Date(2026, 8, 10, 9, 30, 0, 0, time.UTC)
		lastID := uuid.New()
		store := &stubReadStore{salonKeyset: []*queries.SalonReviewItem{
			builder.NewReviewBuilder().BuildSalonItem(),
		}}
		q := newReviewQueries(store, newStubStatsCache(), nil)

		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(lastAt, lastID)}
		rows, next, err := q.ListBySalon(ctx, salonID, queries.ReviewFilters{}, cursor, 20)

		require.NoError(t, err)
		assert.Len(t, rows, 1)
		assert.Nil(t, next)
		assert.Equal(t, lastID, store.gotLastID)
		assert.Equal(t, lastAt.UnixMicro(), store.gotLastCreatedAt.UnixMicro())
	})

	t.Run("garbage cursor", func(t *testing.T) {
		q := newReviewQueries(&stubReadStore{}, newStubStatsCache(), nil)

		_, _, err := q.ListBySalon(ctx, salonID, queries.ReviewFilters{}, &queries.Cursor{After: "not-a-cursor"}, 20)

		assert.ErrorIs(t, err, queries.ErrInvalidCursor)
	})
}

func TestReviewQueries_ListByCustomer(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	t.Run("owner sees their own history", func(t *testing.T) {
		store := &stubReadStore{ownFirst: []*queries.OwnReviewItem{
			builder.NewReviewBuilder().WithCustomerID(customerID).BuildOwnItem(),
		}}
		q := newReviewQueries(store, newStubStatsCache(), nil)

		rows, _, err := q.ListByCustomer(ctx, customerID, customerID, user.RoleCustomer, nil, 20)

		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})

	t.Run("a moderator sees anyone's history", func(t *testing.T) {
		q := newReviewQueries(&stubReadStore{}, newStubStatsCache(), nil)

		_, _, err := q.ListByCustomer(ctx, customerID, uuid.New(), user.RoleModerator, nil, 20)

		require.NoError(t, err)
	})

	t.Run("a stranger customer is denied before any query runs", func(t *testing.T) {
		store := &stubReadStore{}
		q := newReviewQueries(store, newStubStatsCache(), nil)

		_, _, err := q.ListByCustomer(ctx, customerID, uuid.New(), user.RoleCustomer, nil, 20)

		assert.ErrorIs(t, err, queries.ErrReviewAccess)
		assert.Zero(t, store.gotLimit)
	})
}

func TestReviewQueries_RatingStats(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit never touches the store", func(t *testing.T) {
		stats := builder.NewReviewBuilder().BuildSalonRatingStats()
		cache := newStubStatsCache()
		cache.salon[stats.SalonID] = stats
		store := &stubReadStore{}
		q := newReviewQueries(store, cache, nil)

		got, err := q.GetSalonRatingStats(ctx, stats.SalonID)

		require.NoError(t, err)
		assert.Equal(t, stats, got)
		assert.Zero(t, store.salonStatsCalls)
	})

	t.Run("cache miss reads the store and populates the cache", func(t *testing.T) {
		stats := builder.NewReviewBuilder().BuildSalonRatingStats()
		cache := newStubStatsCache()
		store := &stubReadStore{salonStats: stats}
		q := newReviewQueries(store, cache, nil)

		got, err := q.GetSalonRatingStats(ctx, stats.SalonID)

		require.NoError(t, err)
		assert.Equal(t, stats, got)
		assert.Equal(t, 1, store.salonStatsCalls)
		assert.Equal(t, 1, cache.salonSets)
	})

	t.Run("cache failure degrades to the store", func(t *testing.T) {
		stats := builder.NewReviewBuilder().BuildSalonRatingStats()
		cache := newStubStatsCache()
		cache.getErr = infra.WrapRepoErr("redis down", nil, infra.KindDBFailure)
		store := &stubReadStore{salonStats: stats}
		q := newReviewQueries(store, cache, nil)

		got, err := q.GetSalonRatingStats(ctx, stats.SalonID)

		require.NoError(t, err)
		assert.Equal(t, stats, got)
		assert.Equal(t, 1, store.salonStatsCalls)
	})

	t.Run("unknown salon", func(t *testing.T) {
		store := &stubReadStore{salonStatsErr: infra.WrapRepoErr("salon not found", nil, infra.KindNotFound)}
		q := newReviewQueries(store, newStubStatsCache(), nil)

		_, err := q.GetSalonRatingStats(ctx, uuid.New())

		assert.ErrorIs(t, err, queries.ErrSalonNotFound)
	})

	t.Run("staff stats follow the same read-through path", func(t *testing.T) {
		staffID := uuid.New()
		stats := builder.NewReviewBuilder().BuildStaffRatingStats(staffID)
		cache := newStubStatsCache()
		store := &stubReadStore{staffStats: stats}
		q := newReviewQueries(store, cache, nil)

		got, err := q.GetStaffRatingStats(ctx, staffID)

		require.NoError(t, err)
		assert.Equal(t, stats, got)
		assert.Equal(t, 1, cache.staffSets)

		got, err = q.GetStaffRatingStats(ctx, staffID)
		require.NoError(t, err)
		assert.Equal(t, stats, got)
		assert.Equal(t, 1, store.staffStatsCalls)
	})

	t.Run("unknown staff", func(t *testing.T) {
		store := &stubReadStore{staffStatsErr: infra.WrapRepoErr("staff not found", nil, infra.KindNotFound)}
		q := newReviewQueries(store, newStubStatsCache(), nil)

		_, err := q.GetStaffRatingStats(ctx, uuid.New())

		assert.ErrorIs(t, err, queries.ErrStaffNotFound)
	})
}

func TestReviewQueries_CheckEligibility(t *testing.T) {
	ctx := context.Background()

	t.Run("completed unreviewed booking is eligible", func(t *testing.T) {
		booking := builder.NewBookingBuilder().BuildSnapshot()
		q := newReviewQueries(&stubReadStore{}, newStubStatsCache(), &stubReads{booking: booking})

		view, err := q.CheckEligibility(ctx, booking.ID, booking.CustomerID)

		require.NoError(t, err)
		assert.True(t, view.Eligible)
		assert.Empty(t, view.Reason)
	})

	t.Run("already reviewed booking reports its reason", func(t *testing.T) {
		booking := builder.NewBookingBuilder().BuildSnapshot()
		q := newReviewQueries(&stubReadStore{}, newStubStatsCache(), &stubReads{booking: booking, reviewed: true})

		view, err := q.CheckEligibility(ctx, booking.ID, booking.CustomerID)

		require.NoError(t, err)
		assert.False(t, view.Eligible)
		assert.Equal(t, "already_reviewed", view.Reason)
	})

	t.Run("unknown booking is ineligible rather than an error", func(t *testing.T) {
		q := newReviewQueries(&stubReadStore{}, newStubStatsCache(), &stubReads{})

		view, err := q.CheckEligibility(ctx, uuid.New(), uuid.New())

		require.NoError(t, err)
		assert.False(t, view.Eligible)
		assert.Equal(t, "booking_not_found", view.Reason)
	})
}
