// Package readstore holds the read-side stores: denormalized views for the
// query layer and minimal snapshots for command-side reads. All SQL here is
// read-only and runs on whatever DBTX the caller is bound to, so command
// snapshots see the surrounding transaction.
package readstore

import (
	"context"

	"campreserve/internal/domain/booking"
	"campreserve/internal/infra"
	"campreserve/internal/infra/db"
	"campreserve/internal/pkg/pgconv"
	"campreserve/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SnapshotReads struct {
	db db.DBTX
}

func NewSnapshotReads(dbtx db.DBTX) *SnapshotReads {
	return &SnapshotReads{db: dbtx}
}

func (s *SnapshotReads) CampsiteByID(ctx context.Context, id uuid.UUID) (*shared.CampsiteSnapshot, error) {
	const q = `
		SELECT id, campground_id, label, powered,
		       nightly_cents, full_stay_cents, extra_adult_nightly_cents, extra_adult_full_stay_cents
		FROM campsites WHERE id = $1`

	var (
		snap                             shared.CampsiteSnapshot
		fullStay, extraNightly, extraFul pgtype.Int8
	)
	err := s.db.QueryRow(ctx, q, id).Scan(
		&snap.ID, &snap.CampgroundID, &snap.Label, &snap.Powered,
		&snap.NightlyCents, &fullStay, &extraNightly, &extraFul)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("campsite not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find campsite", err)
	}
	snap.FullStayCents = pgconv.Int64PtrFromPgtype(fullStay)
	snap.ExtraAdultNightlyCents = pgconv.Int64PtrFromPgtype(extraNightly)
	snap.ExtraAdultFullStayCents = pgconv.Int64PtrFromPgtype(extraFul)
	return &snap, nil
}

func (s *SnapshotReads) EventByID(ctx context.Context, id uuid.UUID) (*shared.EventSnapshot, error) {
	const q = `SELECT id, name, start_date, end_date FROM events WHERE id = $1`

	var (
		snap       shared.EventSnapshot
		start, end pgtype.Date
	)
	err := s.db.QueryRow(ctx, q, id).Scan(&snap.ID, &snap.Name, &start, &end)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find event", err)
	}
	snap.Start = pgconv.DateFromPgtype(start)
	snap.End = pgconv.DateFromPgtype(end)
	return &snap, nil
}

func (s *SnapshotReads) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	const q = `
		SELECT b.id, b.order_id, b.order_item_id, b.campsite_id, a.event_id,
		       b.check_in, b.check_out, b.adults, b.children,
		       oi.unit_price_cents, oi.base_price_cents, o.payment_status
		FROM campsite_bookings b
		JOIN order_items oi ON oi.id = b.order_item_id
		JOIN attendances a ON a.id = oi.attendance_id
		JOIN orders o ON o.id = b.order_id
		WHERE b.id = $1`

	var (
		snap              shared.BookingSnapshot
		checkIn, checkOut pgtype.Date
		status            string
	)
	err := s.db.QueryRow(ctx, q, id).Scan(
		&snap.ID, &snap.OrderID, &snap.OrderItemID, &snap.CampsiteID, &snap.EventID,
		&checkIn, &checkOut, &snap.Adults, &snap.Children,
		&snap.UnitPriceCents, &snap.BasePriceCents, &status)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	snap.CheckIn = pgconv.DateFromPgtype(checkIn)
	snap.CheckOut = pgconv.DateFromPgtype(checkOut)
	snap.OrderStatus = booking.PaymentStatus(status)
	return &snap, nil
}

func (s *SnapshotReads) UserByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	const q = `SELECT id, email, password_hash, role, pending_verify FROM users WHERE email = $1`

	var snap shared.UserSnapshot
	err := s.db.QueryRow(ctx, q, email).Scan(
		&snap.ID, &snap.Email, &snap.PasswordHash, &snap.Role, &snap.PendingVerify)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return &snap, nil
}
