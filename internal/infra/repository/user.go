package repository

import (
	"context"

	"campreserve/internal/domain/user"
	"campreserve/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

// UpsertPlaceholder resolves an account by the placeholder's email, inserting
// it on first contact. The no-op DO UPDATE makes RETURNING yield the existing
// row's id, so concurrent callers converge on one account.
func (r *UserRepository) UpsertPlaceholder(ctx context.Context, placeholder *user.User) (uuid.UUID, error) {
	const q = `
		INSERT INTO users (id, email, password_hash, role, pending_verify)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, q,
		placeholder.ID(),
		placeholder.Email().Value(),
		placeholder.PasswordHash(),
		placeholder.Role().String(),
		placeholder.PendingVerify(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to upsert user by email", err)
	}
	return id, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	const q = `UPDATE users SET last_login = now(), updated_at = now() WHERE id = $1`

	if _, err := r.db.Exec(ctx, q, userID); err != nil {
		return wrapWriteErr("failed to update last login", err)
	}
	return nil
}
