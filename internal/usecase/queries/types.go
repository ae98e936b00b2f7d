package queries

import (
	"time"

	"campreserve/internal/pkg/dateutil"

	"github.com/google/uuid"
)

type BookingView struct {
	ID             uuid.UUID
	OrderID        uuid.UUID
	CampsiteID     uuid.UUID
	CampsiteLabel  string
	EventID        uuid.UUID
	OwnerName      string
	OwnerEmail     string
	CheckIn        dateutil.Date
	CheckOut       dateutil.Date
	Adults         int
	Children       int
	UnitPriceCents int64
	OrderStatus    string
	OrderSource    string
	CreatedAt      time.Time
}

type BookingListItem struct {
	ID            uuid.UUID
	OrderID       uuid.UUID
	CampsiteLabel string
	CheckIn       dateutil.Date
	CheckOut      dateutil.Date
	OrderStatus   string
	CreatedAt     time.Time
}

type UserView struct {
	ID            uuid.UUID
	Email         string
	Role          string
	PendingVerify bool
	LastLoginAt   *time.Time
	CreatedAt     time.Time
}

// SiteAvailabilityView is one campsite row in a campground availability
// listing: rates plus whether any active booking touches the requested
// window.
type SiteAvailabilityView struct {
	CampsiteID              uuid.UUID
	Label                   string
	Powered                 bool
	NightlyCents            int64
	FullStayCents           *int64
	ExtraAdultNightlyCents  *int64
	ExtraAdultFullStayCents *int64
	IsBooked                bool
}

// OccupancyRow is the flat read-model feeding the report aggregator: one row
// per (campsite, booking) pair, booking fields nil for sites with no
// bookings in the window.
type OccupancyRow struct {
	CampsiteID uuid.UUID
	Label      string
	Powered    bool
	BookingID  *uuid.UUID
	OrderID    *uuid.UUID
	OwnerName  *string
	CheckIn    *dateutil.Date
	CheckOut   *dateutil.Date
}
