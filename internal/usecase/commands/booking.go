package commands

import (
	"context"
	"log/slog"

	"campreserve/internal/domain/booking"
	"campreserve/internal/domain/user"
	"campreserve/internal/infra"
	"campreserve/internal/pkg/dateutil"
	"campreserve/internal/pkg/errs"
	"campreserve/internal/pkg/password"
	"campreserve/internal/usecase/shared"

	"github.com/google/uuid"
)

// Actor identifies the authenticated caller for authorization checks.
type Actor struct {
	UserID uuid.UUID
	Role   user.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == user.RoleAdmin
}

type CreateBookingInput struct {
	OwnerName   string
	OwnerEmail  string
	CampsiteID  uuid.UUID
	EventID     uuid.UUID
	CheckIn     dateutil.Date
	CheckOut    dateutil.Date
	Adults      int
	Children    int
	UseFullStay bool
	AdminImport bool
}

type CreateBookingResult struct {
	OrderID    uuid.UUID
	BookingID  uuid.UUID
	TotalCents int64
}

type QuoteInput struct {
	CampsiteID        uuid.UUID
	CheckIn           dateutil.Date
	CheckOut          dateutil.Date
	Adults            int
	Children          int
	UseFullStay       bool
	ExistingBookingID *uuid.UUID
}

type QuoteResult struct {
	BaseCents  int64
	ExtraCents int64
	TotalCents int64
	Nights     int
	FullStay   bool
}

type UpdateBookingInput struct {
	CheckIn     dateutil.Date
	CheckOut    dateutil.Date
	Adults      int
	Children    int
	UseFullStay bool
}

type UpdateBookingResult struct {
	BookingID  uuid.UUID
	OrderID    uuid.UUID
	TotalCents int64
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, actor Actor, in CreateBookingInput) (*CreateBookingResult, error)
	Quote(ctx context.Context, in QuoteInput) (*QuoteResult, error)
	UpdateBooking(ctx context.Context, actor Actor, bookingID uuid.UUID, in UpdateBookingInput) (*UpdateBookingResult, error)
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier Notifier
}

func NewBookingCommands(uow shared.UnitOfWork, notifier Notifier) BookingCommands {
	return &bookingCommandsImpl{
		uow:      uow,
		notifier: notifier,
	}
}

// CreateBooking runs the whole reservation flow as one serializable
// transaction: resolve-or-create the owner chain, check availability, price
// the stay, and persist order, line item and booking together. Validation
// and the admin gate run before any transaction is opened.
func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, actor Actor, in CreateBookingInput) (*CreateBookingResult, error) {
	if in.AdminImport && !actor.IsAdmin() {
		return nil, errs.Mark(errs.New("administrative booking requires admin role"), errs.ErrForbidden)
	}

	email, err := user.NewEmail(in.OwnerEmail)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	if in.OwnerName == "" {
		return nil, errs.Mark(errs.New("owner name is required"), errs.ErrValidation)
	}
	stay, err := booking.NewStay(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	guests, err := booking.NewGuests(in.Adults, in.Children)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	// bcrypt is slow; hash outside the serializable window
	placeholderHash, err := password.GeneratePlaceholder()
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate placeholder credential")
	}

	source := booking.SourceNormal
	if in.AdminImport {
		source = booking.SourceAdminImport
	}

	var (
		result        CreateBookingResult
		campsiteLabel string
	)
	err = c.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		campsiteSnap, err := tx.Reads().CampsiteByID(ctx, in.CampsiteID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrCampsiteNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		campsiteLabel = campsiteSnap.Label

		if _, err := tx.Reads().EventByID(ctx, in.EventID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrEventNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		userID, err := tx.Users().UpsertPlaceholder(ctx, user.NewPlaceholderUser(email, placeholderHash))
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		personID, err := tx.People().UpsertForUser(ctx, userID, in.OwnerName)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		ticketTypeID, err := tx.TicketTypes().UpsertSystem(ctx, in.EventID, booking.TicketTypeSystemName)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		attendanceID, err := tx.Attendances().Create(ctx, personID, in.EventID, ticketTypeID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		order := booking.NewOrder(userID, source)
		if err := tx.Orders().Create(ctx, order); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		conflicts, err := tx.Bookings().CountOverlapping(ctx, in.CampsiteID, stay.Interval(), nil)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if conflicts > 0 {
			return errs.Mark(errs.New("campsite already booked for the selected dates"), errs.ErrBookingConflict)
		}

		price := booking.CalculatePrice(booking.PriceInput{
			Nights:      stay.Nights(),
			Guests:      guests,
			Rates:       campsiteSnap.RateCard(),
			UseFullStay: in.UseFullStay,
		})

		item := booking.NewOrderItem(order.ID(), attendanceID, booking.ItemTypeCampsite, price.Total(), price.Base)
		if err := tx.Orders().CreateItem(ctx, item); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		b := booking.NewBooking(in.CampsiteID, item.ID(), stay, guests)
		if err := tx.Bookings().Create(ctx, b); err != nil {
			// Exclusion constraint backstop for a racing writer the count
			// did not see.
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, errs.ErrBookingConflict)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := tx.Orders().SetTotal(ctx, order.ID(), price.Total().Cents()); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		result = CreateBookingResult{
			OrderID:    order.ID(),
			BookingID:  b.ID(),
			TotalCents: price.Total().Cents(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.notifyCreated(ctx, email.Value(), in.OwnerName, campsiteLabel, stay, result)

	return &result, nil
}

func (c *bookingCommandsImpl) notifyCreated(ctx context.Context, ownerEmail, ownerName, campsiteLabel string, stay booking.Stay, result CreateBookingResult) {
	err := c.notifier.BookingCreated(ctx, BookingNotification{
		OrderID:       result.OrderID,
		BookingID:     result.BookingID,
		OwnerName:     ownerName,
		OwnerEmail:    ownerEmail,
		CampsiteLabel: campsiteLabel,
		CheckIn:       stay.CheckIn(),
		CheckOut:      stay.CheckOut(),
		TotalCents:    result.TotalCents,
	})
	if err != nil {
		slog.Warn("failed to enqueue booking notification",
			"booking_id", result.BookingID, "order_id", result.OrderID, "error", err.Error())
	}
}

// Quote prices a stay without writing anything. With ExistingBookingID set
// the stored base price is locked in and only the extras are recomputed,
// matching what an administrative edit would persist.
func (c *bookingCommandsImpl) Quote(ctx context.Context, in QuoteInput) (*QuoteResult, error) {
	stay, err := booking.NewStay(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	guests, err := booking.NewGuests(in.Adults, in.Children)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	reads := c.uow.CommandReads()
	campsiteSnap, err := reads.CampsiteByID(ctx, in.CampsiteID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrCampsiteNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	var lockedBase *int64
	if in.ExistingBookingID != nil {
		snap, err := reads.BookingByID(ctx, *in.ExistingBookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Mark(err, errs.ErrBookingNotFound)
			}
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		base := snap.BasePriceCents
		lockedBase = &base
	}

	priceInput := booking.PriceInput{
		Nights:          stay.Nights(),
		Guests:          guests,
		Rates:           campsiteSnap.RateCard(),
		UseFullStay:     in.UseFullStay,
		LockedBaseCents: lockedBase,
	}
	price := booking.CalculatePrice(priceInput)

	return &QuoteResult{
		BaseCents:  price.Base.Cents(),
		ExtraCents: price.Extra.Cents(),
		TotalCents: price.Total().Cents(),
		Nights:     stay.Nights(),
		FullStay:   priceInput.FullStayApplies(),
	}, nil
}

// UpdateBooking moves an existing booking to new dates and guest counts.
// The stored base price stays frozen; extras are re-priced from the current
// rate card. The conflict check excludes the booking's own order so it may
// overlap itself.
func (c *bookingCommandsImpl) UpdateBooking(ctx context.Context, actor Actor, bookingID uuid.UUID, in UpdateBookingInput) (*UpdateBookingResult, error) {
	if !actor.IsAdmin() {
		return nil, errs.Mark(errs.New("booking edits require admin role"), errs.ErrForbidden)
	}

	stay, err := booking.NewStay(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	guests, err := booking.NewGuests(in.Adults, in.Children)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	var result UpdateBookingResult
	err = c.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingByID(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrBookingNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if snap.OrderStatus == booking.StatusCancelled {
			return errs.Mark(errs.New("cannot edit a cancelled booking"), errs.ErrValidation)
		}

		campsiteSnap, err := tx.Reads().CampsiteByID(ctx, snap.CampsiteID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		orderID := snap.OrderID
		conflicts, err := tx.Bookings().CountOverlapping(ctx, snap.CampsiteID, stay.Interval(), &orderID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if conflicts > 0 {
			return errs.Mark(errs.New("campsite already booked for the selected dates"), errs.ErrBookingConflict)
		}

		lockedBase := snap.BasePriceCents
		price := booking.CalculatePrice(booking.PriceInput{
			Nights:          stay.Nights(),
			Guests:          guests,
			Rates:           campsiteSnap.RateCard(),
			UseFullStay:     in.UseFullStay,
			LockedBaseCents: &lockedBase,
		})

		if err := tx.Bookings().UpdateStay(ctx, bookingID, stay, guests); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, errs.ErrBookingConflict)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := tx.Orders().UpdateItemPrice(ctx, snap.OrderItemID, price.Total().Cents(), price.Base.Cents()); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := tx.Orders().SetTotal(ctx, snap.OrderID, price.Total().Cents()); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		result = UpdateBookingResult{
			BookingID:  bookingID,
			OrderID:    snap.OrderID,
			TotalCents: price.Total().Cents(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}
