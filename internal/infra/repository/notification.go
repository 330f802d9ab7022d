package repository

import (
	"context"
	"time"

	"salonbook/internal/infra"
	"salonbook/internal/infra/db"
	"salonbook/internal/infra/query"
	"salonbook/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type NotificationQueries interface {
	CreateNotificationJob(ctx context.Context, dbtx db.DBTX, arg query.CreateNotificationJobParams) error
}

// NotificationRepository writes outbox jobs in the same transaction as the
// state change that triggers them, so a notification is enqueued iff the
// decision committed.
type NotificationRepository struct {
	queries NotificationQueries
}

func NewNotificationRepository(queries NotificationQueries) *NotificationRepository {
	return &NotificationRepository{queries: queries}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	params := query.CreateNotificationJobParams{
		ID:      uuid.New(),
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   pgconv.TimeToPgtype(runAt),
	}
	if err := r.queries.CreateNotificationJob(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}
