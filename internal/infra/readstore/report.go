package readstore

import (
	"context"

	"campreserve/internal/infra"
	"campreserve/internal/infra/db"
	"campreserve/internal/pkg/dateutil"
	"campreserve/internal/pkg/pgconv"
	"campreserve/internal/usecase/queries"
	"campreserve/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReportReadStore struct {
	db        db.DBTX
	snapshots *SnapshotReads
}

func NewReportReadStore(dbtx db.DBTX) *ReportReadStore {
	return &ReportReadStore{db: dbtx, snapshots: NewSnapshotReads(dbtx)}
}

func (r *ReportReadStore) EventByID(ctx context.Context, id uuid.UUID) (*shared.EventSnapshot, error) {
	return r.snapshots.EventByID(ctx, id)
}

// ListOccupancyRows returns the whole campsite inventory left-joined with
// the event's active bookings overlapping the window, one row per
// (campsite, booking) pair and a single all-null-booking row for free sites.
func (r *ReportReadStore) ListOccupancyRows(ctx context.Context, eventID uuid.UUID, window dateutil.Interval) ([]queries.OccupancyRow, error) {
	const q = `
		SELECT c.id, c.label, c.powered,
		       b.id, b.order_id, p.full_name, b.check_in, b.check_out
		FROM campsites c
		LEFT JOIN (
		    SELECT bk.id, bk.campsite_id, bk.order_id, bk.order_item_id, bk.check_in, bk.check_out
		    FROM campsite_bookings bk
		    JOIN orders o ON o.id = bk.order_id
		    JOIN order_items oi ON oi.id = bk.order_item_id
		    JOIN attendances a ON a.id = oi.attendance_id
		    WHERE a.event_id = $1
		      AND o.payment_status <> 'cancelled'
		      AND bk.check_in < $3
		      AND bk.check_out > $2
		) b ON b.campsite_id = c.id
		LEFT JOIN order_items oi ON oi.id = b.order_item_id
		LEFT JOIN attendances a ON a.id = oi.attendance_id
		LEFT JOIN people p ON p.id = a.person_id
		ORDER BY c.label, b.check_in`

	rows, err := r.db.Query(ctx, q, eventID,
		pgconv.DateToPgtype(window.Start), pgconv.DateToPgtype(window.End))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list occupancy rows", err)
	}
	defer rows.Close()

	var result []queries.OccupancyRow
	for rows.Next() {
		var (
			row                queries.OccupancyRow
			bookingID, orderID pgtype.UUID
			ownerName          pgtype.Text
			checkIn, checkOut  pgtype.Date
		)
		err := rows.Scan(&row.CampsiteID, &row.Label, &row.Powered,
			&bookingID, &orderID, &ownerName, &checkIn, &checkOut)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan occupancy row", err)
		}
		row.BookingID = pgconv.UUIDPtrFromPgtype(bookingID)
		row.OrderID = pgconv.UUIDPtrFromPgtype(orderID)
		row.OwnerName = pgconv.StringPtrFromPgtype(ownerName)
		row.CheckIn = pgconv.DatePtrFromPgtype(checkIn)
		row.CheckOut = pgconv.DatePtrFromPgtype(checkOut)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read occupancy rows", err)
	}
	return result, nil
}
