package repository

import (
	"context"

	"campreserve/internal/infra/db"

	"github.com/google/uuid"
)

type TicketTypeRepository struct {
	db db.DBTX
}

func NewTicketTypeRepository(dbtx db.DBTX) *TicketTypeRepository {
	return &TicketTypeRepository{db: dbtx}
}

// UpsertSystem creates the event's zero-price system classification on first
// use and returns the existing row afterwards, keyed by (event_id, name).
func (r *TicketTypeRepository) UpsertSystem(ctx context.Context, eventID uuid.UUID, name string) (uuid.UUID, error) {
	const q = `
		INSERT INTO ticket_types (id, event_id, name, price_cents, role)
		VALUES ($1, $2, $3, 0, 'system')
		ON CONFLICT (event_id, name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, q, uuid.New(), eventID, name).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to upsert system ticket type", err)
	}
	return id, nil
}
