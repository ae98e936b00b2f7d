package repository

import (
	"context"

	"campreserve/internal/infra/db"

	"github.com/google/uuid"
)

type AttendanceRepository struct {
	db db.DBTX
}

func NewAttendanceRepository(dbtx db.DBTX) *AttendanceRepository {
	return &AttendanceRepository{db: dbtx}
}

func (r *AttendanceRepository) Create(ctx context.Context, personID, eventID, ticketTypeID uuid.UUID) (uuid.UUID, error) {
	const q = `
		INSERT INTO attendances (id, person_id, event_id, ticket_type_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, q, uuid.New(), personID, eventID, ticketTypeID).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create attendance", err)
	}
	return id, nil
}
