package queries

import (
	"context"
	"sort"

	"campreserve/internal/infra"
	"campreserve/internal/pkg/dateutil"
	"campreserve/internal/pkg/errs"

	"github.com/google/uuid"
)

type AvailabilityReadStore interface {
	// ListSites returns every campsite in the campground with an IsBooked
	// flag computed against the window. Errors with KindNotFound when the
	// campground does not exist.
	ListSites(ctx context.Context, campgroundID uuid.UUID, window dateutil.Interval) ([]*SiteAvailabilityView, error)
}

type AvailabilityQueries interface {
	ListCampgroundAvailability(ctx context.Context, campgroundID uuid.UUID, from, to dateutil.Date) ([]*SiteAvailabilityView, error)
}

type availabilityQueriesImpl struct {
	store AvailabilityReadStore
}

func NewAvailabilityQueries(store AvailabilityReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{store: store}
}

func (q *availabilityQueriesImpl) ListCampgroundAvailability(ctx context.Context, campgroundID uuid.UUID, from, to dateutil.Date) ([]*SiteAvailabilityView, error) {
	window := dateutil.NewInterval(from, to)
	if window.IsEmpty() {
		return nil, errs.Mark(errs.New("empty availability window"), errs.ErrValidation)
	}

	sites, err := q.store.ListSites(ctx, campgroundID, window)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrCampgroundNotFound)
		}
		return nil, errs.Wrap(err, "failed to list campground availability")
	}

	sortSitesByLabel(sites)
	return sites, nil
}

func sortSitesByLabel(sites []*SiteAvailabilityView) {
	// Natural order so "Site 2" precedes "Site 10"
	sort.SliceStable(sites, func(i, j int) bool {
		return dateutil.NaturalCompare(sites[i].Label, sites[j].Label) < 0
	})
}
