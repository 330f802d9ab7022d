package components

import (
	"salonbook/internal/infra/db"
	"salonbook/internal/infra/query"
	"salonbook/internal/infra/readstore"
	"salonbook/internal/infra/uow"
	"salonbook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		query.New,
		NewDBTX,
		uow.NewPostgresUoW,

		fx.Annotate(
			func(q *query.Queries, dbtx db.DBTX) *readstore.ReviewReadStore {
				return readstore.NewReviewReadStore(q, dbtx)
			},
			fx.As(new(queries.ReviewReadStore)),
		),
		fx.Annotate(
			func(q *query.Queries, dbtx db.DBTX) *readstore.ModerationReadStore {
				return readstore.NewModerationReadStore(q, dbtx)
			},
			fx.As(new(queries.ModerationReadStore)),
		),
		fx.Annotate(
			func(q *query.Queries, dbtx db.DBTX) *readstore.UserReadStore {
				return readstore.NewUserReadStore(q, dbtx)
			},
			fx.As(new(queries.UserReadStore)),
		),
	),
)

// NewDBTX exposes the pool as the query surface read stores run on outside
// of a transaction.
func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
