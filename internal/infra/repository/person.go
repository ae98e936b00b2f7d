package repository

import (
	"context"

	"campreserve/internal/infra/db"

	"github.com/google/uuid"
)

type PersonRepository struct {
	db db.DBTX
}

func NewPersonRepository(dbtx db.DBTX) *PersonRepository {
	return &PersonRepository{db: dbtx}
}

// UpsertForUser resolves the user's person profile, keyed by the unique
// user_id constraint. A fresh name on an existing profile is kept, not
// overwritten, since the profile owner may have edited it.
func (r *PersonRepository) UpsertForUser(ctx context.Context, userID uuid.UUID, fullName string) (uuid.UUID, error) {
	const q = `
		INSERT INTO people (id, user_id, full_name)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, q, uuid.New(), userID, fullName).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to upsert person for user", err)
	}
	return id, nil
}
