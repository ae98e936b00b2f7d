package shared

import (
	"campreserve/internal/domain/booking"
	"campreserve/internal/domain/campsite"
	"campreserve/internal/domain/event"
	"campreserve/internal/pkg/dateutil"

	"github.com/google/uuid"
)

// Minimal snapshots for command-side reads.

type CampsiteSnapshot struct {
	ID                      uuid.UUID
	CampgroundID            uuid.UUID
	Label                   string
	Powered                 bool
	NightlyCents            int64
	FullStayCents           *int64
	ExtraAdultNightlyCents  *int64
	ExtraAdultFullStayCents *int64
}

func (s *CampsiteSnapshot) RateCard() campsite.RateCard {
	return campsite.RateCard{
		NightlyCents:            s.NightlyCents,
		FullStayCents:           s.FullStayCents,
		ExtraAdultNightlyCents:  s.ExtraAdultNightlyCents,
		ExtraAdultFullStayCents: s.ExtraAdultFullStayCents,
	}
}

type EventSnapshot struct {
	ID    uuid.UUID
	Name  string
	Start dateutil.Date
	End   dateutil.Date
}

// ExtendedWindow is the range a stay tied to this event may occupy.
func (s *EventSnapshot) ExtendedWindow() dateutil.Interval {
	return event.ExtendedWindow(s.Start, s.End)
}

type BookingSnapshot struct {
	ID             uuid.UUID
	OrderID        uuid.UUID
	OrderItemID    uuid.UUID
	CampsiteID     uuid.UUID
	EventID        uuid.UUID
	CheckIn        dateutil.Date
	CheckOut       dateutil.Date
	Adults         int
	Children       int
	UnitPriceCents int64
	BasePriceCents int64
	OrderStatus    booking.PaymentStatus
}

type UserSnapshot struct {
	ID            uuid.UUID
	Email         string
	PasswordHash  string
	Role          string
	PendingVerify bool
}
