//go:build unit || e2e

package builder

import (
	"time"

	reqdto "campreserve/internal/handler/dto/request"
	"campreserve/internal/pkg/dateutil"
	"campreserve/internal/usecase/commands"
	"campreserve/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	BookingID         uuid.UUID
	OrderID           uuid.UUID
	CampsiteID        uuid.UUID
	CampsiteLabel     string
	EventID           uuid.UUID
	OwnerName         string
	OwnerEmail        string
	CheckIn           dateutil.Date
	CheckOut          dateutil.Date
	Adults            int
	Children          int
	UseFullStay       bool
	ExistingBookingID *uuid.UUID
	TotalCents        int64
	CreatedAt         time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		BookingID:     uuid.New(),
		OrderID:       uuid.New(),
		CampsiteID:    uuid.New(),
		CampsiteLabel: "Site 1",
		EventID:       uuid.New(),
		OwnerName:     "Jane Camper",
		OwnerEmail:    "jane@example.com",
		CheckIn:       dateutil.NewDate(2026, time.July, 10),
		CheckOut:      dateutil.NewDate(2026, time.July, 13),
		Adults:        2,
		Children:      1,
		TotalCents:    18000,
		CreatedAt:     time.Now(),
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		OwnerName:   b.OwnerName,
		Email:       b.OwnerEmail,
		CampsiteID:  b.CampsiteID,
		EventID:     b.EventID,
		CheckIn:     b.CheckIn.String(),
		CheckOut:    b.CheckOut.String(),
		Adults:      b.Adults,
		Children:    b.Children,
		UseFullStay: b.UseFullStay,
	}
}

func (b *BookingBuilder) BuildQuoteRequestDTO() reqdto.QuoteRequest {
	return reqdto.QuoteRequest{
		CampsiteID:        b.CampsiteID,
		CheckIn:           b.CheckIn.String(),
		CheckOut:          b.CheckOut.String(),
		Adults:            b.Adults,
		Children:          b.Children,
		UseFullStay:       b.UseFullStay,
		ExistingBookingID: b.ExistingBookingID,
	}
}

func (b *BookingBuilder) BuildUpdateRequestDTO() reqdto.UpdateBookingRequest {
	return reqdto.UpdateBookingRequest{
		CheckIn:     b.CheckIn.String(),
		CheckOut:    b.CheckOut.String(),
		Adults:      b.Adults,
		Children:    b.Children,
		UseFullStay: b.UseFullStay,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:             b.BookingID,
		OrderID:        b.OrderID,
		CampsiteID:     b.CampsiteID,
		CampsiteLabel:  b.CampsiteLabel,
		EventID:        b.EventID,
		OwnerName:      b.OwnerName,
		OwnerEmail:     b.OwnerEmail,
		CheckIn:        b.CheckIn,
		CheckOut:       b.CheckOut,
		Adults:         b.Adults,
		Children:       b.Children,
		UnitPriceCents: b.TotalCents,
		OrderStatus:    "pending",
		OrderSource:    "normal",
		CreatedAt:      b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:            b.BookingID,
		OrderID:       b.OrderID,
		CampsiteLabel: b.CampsiteLabel,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
		OrderStatus:   "pending",
		CreatedAt:     b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildCreateResult() *commands.CreateBookingResult {
	return &commands.CreateBookingResult{
		OrderID:    b.OrderID,
		BookingID:  b.BookingID,
		TotalCents: b.TotalCents,
	}
}

func (b *BookingBuilder) BuildUpdateResult() *commands.UpdateBookingResult {
	return &commands.UpdateBookingResult{
		BookingID:  b.BookingID,
		OrderID:    b.OrderID,
		TotalCents: b.TotalCents,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithCampsiteID(id uuid.UUID) *BookingBuilder {
	b.CampsiteID = id
	return b
}

func (b *BookingBuilder) WithEventID(id uuid.UUID) *BookingBuilder {
	b.EventID = id
	return b
}

func (b *BookingBuilder) WithOwner(name, email string) *BookingBuilder {
	b.OwnerName = name
	b.OwnerEmail = email
	return b
}

func (b *BookingBuilder) WithStay(checkIn, checkOut dateutil.Date) *BookingBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *BookingBuilder) WithGuests(adults, children int) *BookingBuilder {
	b.Adults = adults
	b.Children = children
	return b
}

func (b *BookingBuilder) WithFullStay() *BookingBuilder {
	b.UseFullStay = true
	return b
}

func (b *BookingBuilder) WithExistingBooking(id uuid.UUID) *BookingBuilder {
	b.ExistingBookingID = &id
	return b
}

func (b *BookingBuilder) WithTotalCents(cents int64) *BookingBuilder {
	b.TotalCents = cents
	return b
}
