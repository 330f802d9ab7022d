package query

import (
	"context"

	"salonbook/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserRow struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
	LastLoginAt  pgtype.Timestamptz
}

const getUserByEmail = `
SELECT id, email, password_hash, role, is_active, last_login_at
FROM users
WHERE email = $1
`

func (q *Queries) GetUserByEmail(ctx context.Context, dbtx db.DBTX, email string) (UserRow, error) {
	var u UserRow
	err := dbtx.QueryRow(ctx, getUserByEmail, email).Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.IsActive,
		&u.LastLoginAt,
	)
	return u, err
}

const getUserByID = `
SELECT id, email, password_hash, role, is_active, last_login_at
FROM users
WHERE id = $1
`

func (q *Queries) GetUserByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (UserRow, error) {
	var u UserRow
	err := dbtx.QueryRow(ctx, getUserByID, id).Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.IsActive,
		&u.LastLoginAt,
	)
	return u, err
}

const updateUserLastLogin = `
UPDATE users SET last_login_at = now() WHERE id = $1
`

func (q *Queries) UpdateUserLastLogin(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	_, err := dbtx.Exec(ctx, updateUserLastLogin, id)
	return err
}
