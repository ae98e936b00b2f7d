package readstore

import (
	"context"

	"campreserve/internal/infra"
	"campreserve/internal/infra/db"
	"campreserve/internal/pkg/pgconv"
	"campreserve/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	const q = `SELECT id, email, role, pending_verify, last_login, created_at FROM users WHERE id = $1`

	var (
		view      queries.UserView
		lastLogin pgtype.Timestamptz
		createdAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, q, id).Scan(
		&view.ID, &view.Email, &view.Role, &view.PendingVerify, &lastLogin, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	view.LastLoginAt = pgconv.TimePtrFromPgtype(lastLogin)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}
