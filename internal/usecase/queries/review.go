package queries

import (
	"context"
	"time"

	"salonbook/internal/domain/review"
	"salonbook/internal/domain/user"
	"salonbook/internal/infra"
	"salonbook/internal/pkg/errs"
	"salonbook/internal/usecase"
	"salonbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReviewNotFound = errs.New("review not found")
	ErrReviewAccess   = errs.New("review access denied")
	ErrSalonNotFound  = errs.New("salon not found")
	ErrStaffNotFound  = errs.New("staff not found")
	ErrInvalidCursor  = errs.New("invalid cursor")
)

type ReviewView struct {
	ID           uuid.UUID  `json:"id"`
	BookingID    uuid.UUID  `json:"booking_id"`
	CustomerID   uuid.UUID  `json:"customer_id"`
	SalonID      uuid.UUID  `json:"salon_id"`
	SalonName    string     `json:"salon_name"`
	StaffID      *uuid.UUID `json:"staff_id,omitempty"`
	Rating       int32      `json:"rating"`
	Comment      string     `json:"comment"`
	Images       []string   `json:"images"`
	Status       string     `json:"status"`
	StatusLabel  string     `json:"status_label"`
	RejectReason *string    `json:"reject_reason,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// SalonReviewItem is the public listing shape; it never carries moderation
// fields because only published rows reach it.
type SalonReviewItem struct {
	ID        uuid.UUID  `json:"id"`
	StaffID   *uuid.UUID `json:"staff_id,omitempty"`
	Rating    int32      `json:"rating"`
	Comment   string     `json:"comment"`
	Images    []string   `json:"images"`
	CreatedAt time.Time  `json:"created_at"`
}

// OwnReviewItem is the owner's history shape; it includes every state plus
// the human-readable label and the reject reason when present.
type OwnReviewItem struct {
	ID           uuid.UUID `json:"id"`
	SalonID      uuid.UUID `json:"salon_id"`
	SalonName    string    `json:"salon_name"`
	BookingID    uuid.UUID `json:"booking_id"`
	Rating       int32     `json:"rating"`
	Comment      string    `json:"comment"`
	Images       []string  `json:"images"`
	Status       string    `json:"status"`
	StatusLabel  string    `json:"status_label"`
	RejectReason *string   `json:"reject_reason,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type SalonRatingStats struct {
	SalonID       uuid.UUID `json:"salon_id"`
	SalonName     string    `json:"salon_name"`
	AverageRating float64   `json:"average_rating"`
	TotalReviews  int32     `json:"total_reviews"`
	Rating1Count  int32     `json:"rating_1_count"`
	Rating2Count  int32     `json:"rating_2_count"`
	Rating3Count  int32     `json:"rating_3_count"`
	Rating4Count  int32     `json:"rating_4_count"`
	Rating5Count  int32     `json:"rating_5_count"`
}

type StaffRatingStats struct {
	StaffID       uuid.UUID `json:"staff_id"`
	StaffName     string    `json:"staff_name"`
	AverageRating float64   `json:"average_rating"`
	TotalReviews  int32     `json:"total_reviews"`
	Rating1Count  int32     `json:"rating_1_count"`
	Rating2Count  int32     `json:"rating_2_count"`
	Rating3Count  int32     `json:"rating_3_count"`
	Rating4Count  int32     `json:"rating_4_count"`
	Rating5Count  int32     `json:"rating_5_count"`
}

type EligibilityView struct {
	BookingID uuid.UUID `json:"booking_id"`
	Eligible  bool      `json:"eligible"`
	Reason    string    `json:"reason,omitempty"`
}

type ReviewFilters struct {
	MinRating *int
	MaxRating *int
}

type ReviewReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	FindBySalonFirstPage(ctx context.Context, salonID uuid.UUID, limit int32, minRating, maxRating *int) ([]*SalonReviewItem, error)
	FindBySalonKeyset(ctx context.Context, salonID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32, minRating, maxRating *int) ([]*SalonReviewItem, error)
	FindByCustomerFirstPage(ctx context.Context, customerID uuid.UUID, limit int32) ([]*OwnReviewItem, error)
	FindByCustomerKeyset(ctx context.Context, customerID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*OwnReviewItem, error)
	GetSalonRatingStats(ctx context.Context, salonID uuid.UUID) (*SalonRatingStats, error)
	GetStaffRatingStats(ctx context.Context, staffID uuid.UUID) (*StaffRatingStats, error)
}

// RatingStatsCache is a read-through cache over the stored aggregates.
// A miss returns (nil, nil); cache failures degrade to the database.
type RatingStatsCache interface {
	GetSalonStats(ctx context.Context, salonID uuid.UUID) (*SalonRatingStats, error)
	SetSalonStats(ctx context.Context, stats *SalonRatingStats)
	GetStaffStats(ctx context.Context, staffID uuid.UUID) (*StaffRatingStats, error)
	SetStaffStats(ctx context.Context, stats *StaffRatingStats)
}

type ReviewQueries interface {
	GetByID(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole user.Role) (*ReviewView, error)
	ListBySalon(ctx context.Context, salonID uuid.UUID, filters ReviewFilters, cursor *Cursor, limit int) ([]*SalonReviewItem, *Cursor, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, actorID uuid.UUID, actorRole user.Role, cursor *Cursor, limit int) ([]*OwnReviewItem, *Cursor, error)
	GetSalonRatingStats(ctx context.Context, salonID uuid.UUID) (*SalonRatingStats, error)
	GetStaffRatingStats(ctx context.Context, staffID uuid.UUID) (*StaffRatingStats, error)
	CheckEligibility(ctx context.Context, bookingID, callerID uuid.UUID) (*EligibilityView, error)
}

type reviewQueriesImpl struct {
	repo        ReviewReadStore
	cache       RatingStatsCache
	eligibility *usecase.EligibilityChecker
	uow         shared.UnitOfWork
}

func NewReviewQueries(repo ReviewReadStore, cache RatingStatsCache, eligibility *usecase.EligibilityChecker, uow shared.UnitOfWork) ReviewQueries {
	return &reviewQueriesImpl{
		repo:        repo,
		cache:       cache,
		eligibility: eligibility,
		uow:         uow,
	}
}

// GetByID hides non-published reviews from everyone but the owner and
// moderators, and reports them as not found rather than forbidden so the
// review's existence is not leaked.
func (q *reviewQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole user.Role) (*ReviewView, error) {
	rv, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	if review.Status(rv.Status) != review.StatusPublished {
		if rv.CustomerID != actorID && !actorRole.CanModerate() {
			return nil, ErrReviewNotFound
		}
	}
	return rv, nil
}

func (q *reviewQueriesImpl) ListBySalon(ctx context.Context, salonID uuid.UUID, filters ReviewFilters, cursor *Cursor, limit int) ([]*SalonReviewItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*SalonReviewItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindBySalonFirstPage(ctx, salonID, int32(limit+1), filters.MinRating, filters.MaxRating)
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindBySalonKeyset(ctx, salonID, lastCreatedAt, lastID, int32(limit+1), filters.MinRating, filters.MaxRating)
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *reviewQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID, actorID uuid.UUID, actorRole user.Role, cursor *Cursor, limit int) ([]*OwnReviewItem, *Cursor, error) {
	if customerID != actorID && !actorRole.CanModerate() {
		return nil, nil, ErrReviewAccess
	}

	limit = ValidateLimit(limit)
	var rows []*OwnReviewItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindByCustomerFirstPage(ctx, customerID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindByCustomerKeyset(ctx, customerID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *reviewQueriesImpl) GetSalonRatingStats(ctx context.Context, salonID uuid.UUID) (*SalonRatingStats, error) {
	if cached, err := q.cache.GetSalonStats(ctx, salonID); err == nil && cached != nil {
		return cached, nil
	}

	stats, err := q.repo.GetSalonRatingStats(ctx, salonID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSalonNotFound
		}
		return nil, err
	}

	q.cache.SetSalonStats(ctx, stats)
	return stats, nil
}

func (q *reviewQueriesImpl) GetStaffRatingStats(ctx context.Context, staffID uuid.UUID) (*StaffRatingStats, error) {
	if cached, err := q.cache.GetStaffStats(ctx, staffID); err == nil && cached != nil {
		return cached, nil
	}

	stats, err := q.repo.GetStaffRatingStats(ctx, staffID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, err
	}

	q.cache.SetStaffStats(ctx, stats)
	return stats, nil
}

// CheckEligibility is advisory: the create command re-runs the same
// predicate inside its transaction before writing anything.
func (q *reviewQueriesImpl) CheckEligibility(ctx context.Context, bookingID, callerID uuid.UUID) (*EligibilityView, error) {
	_, result, err := q.eligibility.Check(ctx, q.uow.CommandReads(), bookingID, callerID)
	if err != nil {
		return nil, err
	}
	return &EligibilityView{
		BookingID: bookingID,
		Eligible:  result.Eligible,
		Reason:    string(result.Reason),
	}, nil
}
