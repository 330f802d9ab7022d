package query

import (
	"context"

	"salonbook/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CreateNotificationJobParams struct {
	ID      uuid.UUID
	Kind    string
	Topic   string
	Payload []byte
	RunAt   pgtype.Timestamptz
}

const createNotificationJob = `
INSERT INTO notification_jobs (id, kind, topic, payload, run_at, created_at)
VALUES ($1, $2, $3, $4, $5, now())
`

func (q *Queries) CreateNotificationJob(ctx context.Context, dbtx db.DBTX, arg CreateNotificationJobParams) error {
	_, err := dbtx.Exec(ctx, createNotificationJob,
		arg.ID,
		arg.Kind,
		arg.Topic,
		arg.Payload,
		arg.RunAt,
	)
	return err
}
