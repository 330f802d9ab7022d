package readstore

import (
	"context"

	"salonbook/internal/infra"
	"salonbook/internal/infra/db"
	"salonbook/internal/infra/query"
	"salonbook/internal/pkg/pgconv"
	"salonbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserViewQueries interface {
	GetUserByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (query.UserRow, error)
	GetUserByEmail(ctx context.Context, dbtx db.DBTX, email string) (query.UserRow, error)
}

type UserReadStore struct {
	queries UserViewQueries
	db      db.DBTX
}

func NewUserReadStore(queries UserViewQueries, dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      dbtx,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get user by id", err)
	}
	return toAuthorizedUserView(row), nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row, err := r.queries.GetUserByEmail(ctx, r.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to get user by email", err)
	}
	return toAuthorizedUserView(row), row.PasswordHash, nil
}

func toAuthorizedUserView(row query.UserRow) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       row.ID,
		Email:    row.Email,
		Role:     row.Role,
		IsActive: row.IsActive,
	}
}
