package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PendingReviewItem is the moderation queue shape, oldest submission first.
type PendingReviewItem struct {
	ID            uuid.UUID `json:"id"`
	SalonID       uuid.UUID `json:"salon_id"`
	SalonName     string    `json:"salon_name"`
	CustomerID    uuid.UUID `json:"customer_id"`
	CustomerEmail string    `json:"customer_email"`
	BookingID     uuid.UUID `json:"booking_id"`
	Rating        int32     `json:"rating"`
	Comment       string    `json:"comment"`
	Images        []string  `json:"images"`
	CreatedAt     time.Time `json:"created_at"`
}

type PendingFilters struct {
	SalonID       *uuid.UUID
	SubmittedFrom *time.Time
	SubmittedTo   *time.Time
}

type ModerationReadStore interface {
	FindPendingFirstPage(ctx context.Context, filters PendingFilters, limit int32) ([]*PendingReviewItem, error)
	FindPendingKeyset(ctx context.Context, filters PendingFilters, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*PendingReviewItem, error)
}

type ModerationQueries interface {
	ListPending(ctx context.Context, filters PendingFilters, cursor *Cursor, limit int) ([]*PendingReviewItem, *Cursor, error)
}

type moderationQueriesImpl struct {
	repo ModerationReadStore
}

func NewModerationQueries(repo ModerationReadStore) ModerationQueries {
	return &moderationQueriesImpl{repo: repo}
}

func (q *moderationQueriesImpl) ListPending(ctx context.Context, filters PendingFilters, cursor *Cursor, limit int) ([]*PendingReviewItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*PendingReviewItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindPendingFirstPage(ctx, filters, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindPendingKeyset(ctx, filters, lastCreatedAt, lastID, int32(limit+1))
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
