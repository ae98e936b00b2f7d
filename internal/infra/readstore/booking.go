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

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	const q = `
		SELECT b.id, b.order_id, b.campsite_id, c.label, a.event_id,
		       p.full_name, u.email,
		       b.check_in, b.check_out, b.adults, b.children,
		       oi.unit_price_cents, o.payment_status, o.source, b.created_at
		FROM campsite_bookings b
		JOIN campsites c ON c.id = b.campsite_id
		JOIN order_items oi ON oi.id = b.order_item_id
		JOIN attendances a ON a.id = oi.attendance_id
		JOIN people p ON p.id = a.person_id
		JOIN orders o ON o.id = b.order_id
		JOIN users u ON u.id = o.user_id
		WHERE b.id = $1`

	var (
		view              queries.BookingView
		checkIn, checkOut pgtype.Date
		createdAt         pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, q, id).Scan(
		&view.ID, &view.OrderID, &view.CampsiteID, &view.CampsiteLabel, &view.EventID,
		&view.OwnerName, &view.OwnerEmail,
		&checkIn, &checkOut, &view.Adults, &view.Children,
		&view.UnitPriceCents, &view.OrderStatus, &view.OrderSource, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	view.CheckIn = pgconv.DateFromPgtype(checkIn)
	view.CheckOut = pgconv.DateFromPgtype(checkOut)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}

func (r *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.BookingListItem, error) {
	const q = `
		SELECT b.id, b.order_id, c.label, b.check_in, b.check_out, o.payment_status, b.created_at
		FROM campsite_bookings b
		JOIN campsites c ON c.id = b.campsite_id
		JOIN orders o ON o.id = b.order_id
		WHERE o.user_id = $1
		ORDER BY b.check_in DESC, b.created_at DESC`

	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by user", err)
	}
	defer rows.Close()

	var items []*queries.BookingListItem
	for rows.Next() {
		var (
			item              queries.BookingListItem
			checkIn, checkOut pgtype.Date
			createdAt         pgtype.Timestamptz
		)
		err := rows.Scan(&item.ID, &item.OrderID, &item.CampsiteLabel,
			&checkIn, &checkOut, &item.OrderStatus, &createdAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		item.CheckIn = pgconv.DateFromPgtype(checkIn)
		item.CheckOut = pgconv.DateFromPgtype(checkOut)
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return items, nil
}
