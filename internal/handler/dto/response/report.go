package response

import (
	"campreserve/internal/usecase/queries"
)

type OccupancyBookingResponse struct {
	BookingID string `json:"booking_id"`
	OrderID   string `json:"order_id"`
	OwnerName string `json:"owner_name"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
}

type OccupancySiteResponse struct {
	CampsiteID   string                      `json:"campsite_id"`
	Label        string                      `json:"label"`
	Powered      bool                        `json:"powered"`
	Status       string                      `json:"status"`
	BookedNights int                         `json:"booked_nights"`
	Bookings     []*OccupancyBookingResponse `json:"bookings"`
	// Nights has one entry per night of the window; null means the site is
	// free that night.
	Nights []*OccupancyBookingResponse `json:"nights"`
}

type OccupancyReportResponse struct {
	EventID     string                   `json:"event_id"`
	WindowStart string                   `json:"window_start"`
	WindowEnd   string                   `json:"window_end"`
	TotalNights int                      `json:"total_nights"`
	Sites       []*OccupancySiteResponse `json:"sites"`
}

func FromOccupancyReport(r *queries.OccupancyReport) *OccupancyReportResponse {
	sites := make([]*OccupancySiteResponse, len(r.Sites))
	for i, s := range r.Sites {
		bookings := make([]*OccupancyBookingResponse, len(s.Bookings))
		for j, b := range s.Bookings {
			bookings[j] = fromSiteBooking(&b)
		}
		nights := make([]*OccupancyBookingResponse, len(s.Nights))
		for j, b := range s.Nights {
			if b != nil {
				nights[j] = fromSiteBooking(b)
			}
		}
		sites[i] = &OccupancySiteResponse{
			CampsiteID:   s.CampsiteID.String(),
			Label:        s.Label,
			Powered:      s.Powered,
			Status:       string(s.Status),
			BookedNights: s.BookedNights,
			Bookings:     bookings,
			Nights:       nights,
		}
	}
	return &OccupancyReportResponse{
		EventID:     r.EventID.String(),
		WindowStart: r.Window.Start.String(),
		WindowEnd:   r.Window.End.String(),
		TotalNights: r.TotalNights,
		Sites:       sites,
	}
}

func fromSiteBooking(b *queries.SiteBooking) *OccupancyBookingResponse {
	return &OccupancyBookingResponse{
		BookingID: b.BookingID.String(),
		OrderID:   b.OrderID.String(),
		OwnerName: b.OwnerName,
		CheckIn:   b.CheckIn.String(),
		CheckOut:  b.CheckOut.String(),
	}
}
