package response

import (
	"campreserve/internal/usecase/commands"
	"campreserve/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID             string `json:"id"`
	OrderID        string `json:"order_id"`
	CampsiteID     string `json:"campsite_id"`
	CampsiteLabel  string `json:"campsite_label"`
	EventID        string `json:"event_id"`
	OwnerName      string `json:"owner_name"`
	OwnerEmail     string `json:"owner_email"`
	CheckIn        string `json:"check_in"`
	CheckOut       string `json:"check_out"`
	Adults         int    `json:"adults"`
	Children       int    `json:"children"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	OrderStatus    string `json:"order_status"`
	OrderSource    string `json:"order_source"`
	CreatedAt      int64  `json:"created_at"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	resp := &BookingResponse{}
	// Same-named scalar fields copy over; identifiers and dates need their
	// string forms.
	_ = copier.Copy(resp, v)
	resp.ID = v.ID.String()
	resp.OrderID = v.OrderID.String()
	resp.CampsiteID = v.CampsiteID.String()
	resp.EventID = v.EventID.String()
	resp.CheckIn = v.CheckIn.String()
	resp.CheckOut = v.CheckOut.String()
	resp.CreatedAt = v.CreatedAt.Unix()
	return resp
}

type BookingListItemResponse struct {
	ID            string `json:"id"`
	OrderID       string `json:"order_id"`
	CampsiteLabel string `json:"campsite_label"`
	CheckIn       string `json:"check_in"`
	CheckOut      string `json:"check_out"`
	OrderStatus   string `json:"order_status"`
	CreatedAt     int64  `json:"created_at"`
}

func FromBookingList(items []*queries.BookingListItem) []*BookingListItemResponse {
	res := make([]*BookingListItemResponse, len(items))
	for i, it := range items {
		res[i] = &BookingListItemResponse{
			ID:            it.ID.String(),
			OrderID:       it.OrderID.String(),
			CampsiteLabel: it.CampsiteLabel,
			CheckIn:       it.CheckIn.String(),
			CheckOut:      it.CheckOut.String(),
			OrderStatus:   it.OrderStatus,
			CreatedAt:     it.CreatedAt.Unix(),
		}
	}
	return res
}

type BookingCreatedResponse struct {
	OrderID    string `json:"order_id"`
	BookingID  string `json:"booking_id"`
	TotalCents int64  `json:"total_cents"`
	Status     string `json:"status"`
}

func FromCreateBookingResult(r *commands.CreateBookingResult) *BookingCreatedResponse {
	return &BookingCreatedResponse{
		OrderID:    r.OrderID.String(),
		BookingID:  r.BookingID.String(),
		TotalCents: r.TotalCents,
		Status:     "created",
	}
}

type QuoteResponse struct {
	BaseCents  int64 `json:"base_cents"`
	ExtraCents int64 `json:"extra_cents"`
	TotalCents int64 `json:"total_cents"`
	Nights     int   `json:"nights"`
	FullStay   bool  `json:"full_stay"`
}

func FromQuoteResult(r *commands.QuoteResult) *QuoteResponse {
	resp := &QuoteResponse{}
	_ = copier.Copy(resp, r)
	return resp
}

type BookingUpdatedResponse struct {
	BookingID  string `json:"booking_id"`
	OrderID    string `json:"order_id"`
	TotalCents int64  `json:"total_cents"`
}

func FromUpdateBookingResult(r *commands.UpdateBookingResult) *BookingUpdatedResponse {
	return &BookingUpdatedResponse{
		BookingID:  r.BookingID.String(),
		OrderID:    r.OrderID.String(),
		TotalCents: r.TotalCents,
	}
}
