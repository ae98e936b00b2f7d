package queries

import (
	"context"
	"sort"

	"campreserve/internal/infra"
	"campreserve/internal/pkg/dateutil"
	"campreserve/internal/pkg/errs"
	"campreserve/internal/usecase/shared"

	"github.com/google/uuid"
)

type OccupancyStatus string

const (
	StatusFull      OccupancyStatus = "full"
	StatusPartial   OccupancyStatus = "partial"
	StatusAvailable OccupancyStatus = "available"
)

type SiteBooking struct {
	BookingID uuid.UUID
	OrderID   uuid.UUID
	OwnerName string
	CheckIn   dateutil.Date
	CheckOut  dateutil.Date
}

// SiteOccupancy is one campsite's row in the report. Nights has one cell per
// night of the extended window, in order; a cell is nil when the site is
// free that night.
type SiteOccupancy struct {
	CampsiteID   uuid.UUID
	Label        string
	Powered      bool
	Status       OccupancyStatus
	BookedNights int
	Bookings     []SiteBooking
	Nights       []*SiteBooking
}

type OccupancyReport struct {
	EventID     uuid.UUID
	Window      dateutil.Interval
	TotalNights int
	Sites       []SiteOccupancy
}

type ReportReadStore interface {
	EventByID(ctx context.Context, id uuid.UUID) (*shared.EventSnapshot, error)
	// ListOccupancyRows returns one row per (campsite, booking-in-window)
	// pair across the whole campground inventory, sites without bookings
	// included with nil booking fields. Cancelled orders are excluded.
	ListOccupancyRows(ctx context.Context, eventID uuid.UUID, window dateutil.Interval) ([]OccupancyRow, error)
}

type ReportQueries interface {
	OccupancyReport(ctx context.Context, eventID uuid.UUID) (*OccupancyReport, error)
}

type reportQueriesImpl struct {
	store ReportReadStore
}

func NewReportQueries(store ReportReadStore) ReportQueries {
	return &reportQueriesImpl{store: store}
}

func (q *reportQueriesImpl) OccupancyReport(ctx context.Context, eventID uuid.UUID) (*OccupancyReport, error) {
	ev, err := q.store.EventByID(ctx, eventID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrEventNotFound)
		}
		return nil, errs.Wrap(err, "failed to find event")
	}

	window := ev.ExtendedWindow()
	rows, err := q.store.ListOccupancyRows(ctx, eventID, window)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load occupancy rows")
	}

	return BuildOccupancyReport(eventID, window, rows), nil
}

// BuildOccupancyReport aggregates flat rows into the per-site occupancy
// grid. Pure and read-only: safe against a live snapshot without locking.
func BuildOccupancyReport(eventID uuid.UUID, window dateutil.Interval, rows []OccupancyRow) *OccupancyReport {
	totalNights := window.Nights()
	nights := window.Dates()

	bySite := make(map[uuid.UUID]*SiteOccupancy)
	var order []uuid.UUID

	for _, row := range rows {
		site, ok := bySite[row.CampsiteID]
		if !ok {
			site = &SiteOccupancy{
				CampsiteID: row.CampsiteID,
				Label:      row.Label,
				Powered:    row.Powered,
				Nights:     make([]*SiteBooking, len(nights)),
			}
			bySite[row.CampsiteID] = site
			order = append(order, row.CampsiteID)
		}

		if row.BookingID == nil {
			continue
		}

		sb := SiteBooking{
			BookingID: *row.BookingID,
			OrderID:   *row.OrderID,
			OwnerName: derefString(row.OwnerName),
			CheckIn:   *row.CheckIn,
			CheckOut:  *row.CheckOut,
		}
		site.Bookings = append(site.Bookings, sb)

		clamped := dateutil.NewInterval(sb.CheckIn, sb.CheckOut).Clamp(window)
		if clamped.IsEmpty() {
			continue
		}
		site.BookedNights += clamped.Nights()

		booked := site.Bookings[len(site.Bookings)-1]
		for i, night := range nights {
			if clamped.Contains(night) {
				site.Nights[i] = &booked
			}
		}
	}

	sites := make([]SiteOccupancy, 0, len(order))
	for _, id := range order {
		site := bySite[id]
		site.Status = classify(site.BookedNights, totalNights)
		sites = append(sites, *site)
	}

	sort.SliceStable(sites, func(i, j int) bool {
		return dateutil.NaturalCompare(sites[i].Label, sites[j].Label) < 0
	})

	return &OccupancyReport{
		EventID:     eventID,
		Window:      window,
		TotalNights: totalNights,
		Sites:       sites,
	}
}

func classify(bookedNights, totalNights int) OccupancyStatus {
	switch {
	case bookedNights >= totalNights:
		return StatusFull
	case bookedNights > 0:
		return StatusPartial
	default:
		return StatusAvailable
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
