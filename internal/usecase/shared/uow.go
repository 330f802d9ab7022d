package shared

import (
	"context"
	"time"

	"salonbook/internal/domain/review"
	"salonbook/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reviews() ReviewRepository
	RatingStats() RatingStatsRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	ReviewByID(ctx context.Context, id uuid.UUID) (*ReviewSnapshot, error)
	ReviewExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, tx db.DBTX, rev *review.Review) (uuid.UUID, error)
	// UpdateContent persists edited content together with the moderation reset.
	UpdateContent(ctx context.Context, tx db.DBTX, rev *review.Review) error
	// TransitionStatus performs a guarded state change; it reports false when
	// the review was not in the expected from-state (lost race or illegal call).
	TransitionStatus(ctx context.Context, tx db.DBTX, reviewID uuid.UUID, from, to review.Status, rejectReason *string, now time.Time) (bool, error)
	Delete(ctx context.Context, tx db.DBTX, reviewID uuid.UUID) error
}

type RatingStatsRepository interface {
	RecalcSalonRatingStats(ctx context.Context, tx db.DBTX, salonID uuid.UUID) error
	RecalcStaffRatingStats(ctx context.Context, tx db.DBTX, staffID uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}

// RatingCacheInvalidator drops cached aggregates after a committed recompute.
// Entries are removed, never updated in place, so a read always falls back to
// the freshly recomputed row in Postgres.
type RatingCacheInvalidator interface {
	InvalidateSalon(ctx context.Context, salonID uuid.UUID)
	InvalidateStaff(ctx context.Context, staffID uuid.UUID)
}
