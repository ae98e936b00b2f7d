package readstore

import (
	"context"

	"campreserve/internal/infra"
	"campreserve/internal/infra/db"
	"campreserve/internal/pkg/dateutil"
	"campreserve/internal/pkg/pgconv"
	"campreserve/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AvailabilityReadStore struct {
	db db.DBTX
}

func NewAvailabilityReadStore(dbtx db.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{db: dbtx}
}

func (r *AvailabilityReadStore) ListSites(ctx context.Context, campgroundID uuid.UUID, window dateutil.Interval) ([]*queries.SiteAvailabilityView, error) {
	const existsQ = `SELECT EXISTS (SELECT 1 FROM campgrounds WHERE id = $1)`
	var exists bool
	if err := r.db.QueryRow(ctx, existsQ, campgroundID).Scan(&exists); err != nil {
		return nil, infra.WrapRepoErr("failed to check campground", err)
	}
	if !exists {
		return nil, infra.WrapRepoErr("campground not found", nil, infra.KindNotFound)
	}

	// The overlap predicate mirrors dateutil.Interval.Overlaps under
	// half-open semantics.
	const q = `
		SELECT c.id, c.label, c.powered,
		       c.nightly_cents, c.full_stay_cents,
		       c.extra_adult_nightly_cents, c.extra_adult_full_stay_cents,
		       EXISTS (
		           SELECT 1 FROM campsite_bookings b
		           JOIN orders o ON o.id = b.order_id
		           WHERE b.campsite_id = c.id
		             AND o.payment_status <> 'cancelled'
		             AND b.check_in < $3
		             AND b.check_out > $2
		       ) AS is_booked
		FROM campsites c
		WHERE c.campground_id = $1`

	rows, err := r.db.Query(ctx, q, campgroundID,
		pgconv.DateToPgtype(window.Start), pgconv.DateToPgtype(window.End))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list campsites", err)
	}
	defer rows.Close()

	var sites []*queries.SiteAvailabilityView
	for rows.Next() {
		var (
			site                              queries.SiteAvailabilityView
			fullStay, extraNightly, extraFull pgtype.Int8
		)
		err := rows.Scan(&site.CampsiteID, &site.Label, &site.Powered,
			&site.NightlyCents, &fullStay, &extraNightly, &extraFull, &site.IsBooked)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan campsite row", err)
		}
		site.FullStayCents = pgconv.Int64PtrFromPgtype(fullStay)
		site.ExtraAdultNightlyCents = pgconv.Int64PtrFromPgtype(extraNightly)
		site.ExtraAdultFullStayCents = pgconv.Int64PtrFromPgtype(extraFull)
		sites = append(sites, &site)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read campsite rows", err)
	}
	return sites, nil
}
