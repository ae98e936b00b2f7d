package request

import (
	"campreserve/internal/pkg/dateutil"
	"campreserve/internal/usecase/commands"

	"github.com/google/uuid"
)

// Dates travel as "2006-01-02" strings; parsing them is the validation.

type CreateBookingRequest struct {
	OwnerName   string    `json:"owner_name" binding:"required"`
	Email       string    `json:"email" binding:"required,email"`
	CampsiteID  uuid.UUID `json:"campsite_id" binding:"required"`
	EventID     uuid.UUID `json:"event_id" binding:"required"`
	CheckIn     string    `json:"check_in" binding:"required"`
	CheckOut    string    `json:"check_out" binding:"required"`
	Adults      int       `json:"adults" binding:"omitempty,min=1"`
	Children    int       `json:"children" binding:"omitempty,min=0"`
	UseFullStay bool      `json:"use_full_stay"`
	AdminImport bool      `json:"admin_import"`
}

func (r *CreateBookingRequest) ToInput() (commands.CreateBookingInput, error) {
	checkIn, err := dateutil.ParseDate(r.CheckIn)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	checkOut, err := dateutil.ParseDate(r.CheckOut)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}

	adults := r.Adults
	if adults == 0 {
		adults = 1
	}

	return commands.CreateBookingInput{
		OwnerName:   r.OwnerName,
		OwnerEmail:  r.Email,
		CampsiteID:  r.CampsiteID,
		EventID:     r.EventID,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Adults:      adults,
		Children:    r.Children,
		UseFullStay: r.UseFullStay,
		AdminImport: r.AdminImport,
	}, nil
}

type QuoteRequest struct {
	CampsiteID        uuid.UUID  `json:"campsite_id" binding:"required"`
	CheckIn           string     `json:"check_in" binding:"required"`
	CheckOut          string     `json:"check_out" binding:"required"`
	Adults            int        `json:"adults" binding:"omitempty,min=1"`
	Children          int        `json:"children" binding:"omitempty,min=0"`
	UseFullStay       bool       `json:"use_full_stay"`
	ExistingBookingID *uuid.UUID `json:"existing_booking_id"`
}

func (r *QuoteRequest) ToInput() (commands.QuoteInput, error) {
	checkIn, err := dateutil.ParseDate(r.CheckIn)
	if err != nil {
		return commands.QuoteInput{}, err
	}
	checkOut, err := dateutil.ParseDate(r.CheckOut)
	if err != nil {
		return commands.QuoteInput{}, err
	}

	adults := r.Adults
	if adults == 0 {
		adults = 1
	}

	return commands.QuoteInput{
		CampsiteID:        r.CampsiteID,
		CheckIn:           checkIn,
		CheckOut:          checkOut,
		Adults:            adults,
		Children:          r.Children,
		UseFullStay:       r.UseFullStay,
		ExistingBookingID: r.ExistingBookingID,
	}, nil
}

type UpdateBookingRequest struct {
	CheckIn     string `json:"check_in" binding:"required"`
	CheckOut    string `json:"check_out" binding:"required"`
	Adults      int    `json:"adults" binding:"required,min=1"`
	Children    int    `json:"children" binding:"omitempty,min=0"`
	UseFullStay bool   `json:"use_full_stay"`
}

func (r *UpdateBookingRequest) ToInput() (commands.UpdateBookingInput, error) {
	checkIn, err := dateutil.ParseDate(r.CheckIn)
	if err != nil {
		return commands.UpdateBookingInput{}, err
	}
	checkOut, err := dateutil.ParseDate(r.CheckOut)
	if err != nil {
		return commands.UpdateBookingInput{}, err
	}

	return commands.UpdateBookingInput{
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Adults:      r.Adults,
		Children:    r.Children,
		UseFullStay: r.UseFullStay,
	}, nil
}
