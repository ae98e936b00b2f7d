package shared

import (
	"context"

	"campreserve/internal/domain/booking"
	"campreserve/internal/domain/user"
	"campreserve/internal/infra/db"
	"campreserve/internal/pkg/dateutil"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: write transaction at read committed, for simple updates
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinSerializable: the booking flow's availability check and insert
	// must not interleave with a concurrent writer, so the whole transaction
	// runs serializable (with bounded retry on serialization failures)
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: command-side reads outside any transaction
	CommandReads() CommandReads
}

type Tx interface {
	Users() UserRepository
	People() PersonRepository
	TicketTypes() TicketTypeRepository
	Attendances() AttendanceRepository
	Orders() OrderRepository
	Bookings() BookingRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	CampsiteByID(ctx context.Context, id uuid.UUID) (*CampsiteSnapshot, error)
	EventByID(ctx context.Context, id uuid.UUID) (*EventSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
}

// Resolve-or-create steps are single upserts keyed by unique constraints so
// concurrent callers converge on one row instead of racing a select-then-
// insert.
type UserRepository interface {
	// UpsertPlaceholder resolves the account by the placeholder's email,
	// inserting it on first contact.
	UpsertPlaceholder(ctx context.Context, placeholder *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}

type PersonRepository interface {
	UpsertForUser(ctx context.Context, userID uuid.UUID, fullName string) (uuid.UUID, error)
}

type TicketTypeRepository interface {
	// UpsertSystem resolves the event's placeholder classification, creating
	// the zero-price system row on first use.
	UpsertSystem(ctx context.Context, eventID uuid.UUID, name string) (uuid.UUID, error)
}

type AttendanceRepository interface {
	Create(ctx context.Context, personID, eventID, ticketTypeID uuid.UUID) (uuid.UUID, error)
}

type OrderRepository interface {
	Create(ctx context.Context, o *booking.Order) error
	CreateItem(ctx context.Context, item *booking.OrderItem) error
	SetTotal(ctx context.Context, orderID uuid.UUID, totalCents int64) error
	UpdateItemPrice(ctx context.Context, orderItemID uuid.UUID, unitPriceCents, basePriceCents int64) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	// CountOverlapping is the availability check: active (non-cancelled)
	// bookings for the campsite whose half-open interval overlaps the
	// candidate. excludeOrderID lets an edited booking overlap itself.
	CountOverlapping(ctx context.Context, campsiteID uuid.UUID, candidate dateutil.Interval, excludeOrderID *uuid.UUID) (int64, error)
	UpdateStay(ctx context.Context, bookingID uuid.UUID, stay booking.Stay, guests booking.Guests) error
}
