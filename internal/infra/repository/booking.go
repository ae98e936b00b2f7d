package repository

import (
	"context"

	"campreserve/internal/domain/booking"
	"campreserve/internal/infra"
	"campreserve/internal/infra/db"
	"campreserve/internal/pkg/dateutil"
	"campreserve/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	const q = `
		INSERT INTO campsite_bookings (id, campsite_id, order_id, order_item_id, check_in, check_out, adults, children)
		SELECT $1, $2, oi.order_id, $3, $4, $5, $6, $7
		FROM order_items oi WHERE oi.id = $3`

	tag, err := r.db.Exec(ctx, q,
		b.ID(), b.CampsiteID(), b.OrderItemID(),
		pgconv.DateToPgtype(b.Stay().CheckIn()), pgconv.DateToPgtype(b.Stay().CheckOut()),
		b.Guests().Adults(), b.Guests().Children())
	if err != nil {
		return wrapWriteErr("failed to create booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order item not found for booking", nil, infra.KindNotFound)
	}
	return nil
}

// CountOverlapping scans the campsite's bookings whose owning order is not
// cancelled and counts those overlapping the candidate under half-open
// semantics: existing.check_in < candidate.end AND existing.check_out >
// candidate.start, the SQL mirror of dateutil.Interval.Overlaps. Runs on the
// caller's transaction so the read and the subsequent insert are one atomic
// step under serializable isolation.
func (r *BookingRepository) CountOverlapping(ctx context.Context, campsiteID uuid.UUID, candidate dateutil.Interval, excludeOrderID *uuid.UUID) (int64, error) {
	const q = `
		SELECT count(*)
		FROM campsite_bookings b
		JOIN orders o ON o.id = b.order_id
		WHERE b.campsite_id = $1
		  AND o.payment_status <> 'cancelled'
		  AND b.check_in < $3
		  AND b.check_out > $2
		  AND ($4::uuid IS NULL OR b.order_id <> $4)`

	var count int64
	err := r.db.QueryRow(ctx, q, campsiteID,
		pgconv.DateToPgtype(candidate.Start), pgconv.DateToPgtype(candidate.End),
		excludeOrderID).Scan(&count)
	if err != nil {
		return 0, wrapWriteErr("failed to count overlapping bookings", err)
	}
	return count, nil
}

func (r *BookingRepository) UpdateStay(ctx context.Context, bookingID uuid.UUID, stay booking.Stay, guests booking.Guests) error {
	const q = `
		UPDATE campsite_bookings
		SET check_in = $2, check_out = $3, adults = $4, children = $5, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, bookingID,
		pgconv.DateToPgtype(stay.CheckIn()), pgconv.DateToPgtype(stay.CheckOut()),
		guests.Adults(), guests.Children())
	if err != nil {
		return wrapWriteErr("failed to update booking stay", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
