package booking

import (
	"time"

	"github.com/google/uuid"
)

// Booking is a reservation of one campsite for one stay, owned by an order
// line item. It is created only by the booking command and conceptually
// cancelled by marking the owning order cancelled.
type Booking struct {
	id          uuid.UUID
	campsiteID  uuid.UUID
	orderItemID uuid.UUID
	stay        Stay
	guests      Guests
	createdAt   time.Time
	updatedAt   time.Time
}

func NewBooking(campsiteID, orderItemID uuid.UUID, stay Stay, guests Guests) *Booking {
	return &Booking{
		id:          uuid.New(),
		campsiteID:  campsiteID,
		orderItemID: orderItemID,
		stay:        stay,
		guests:      guests,
	}
}

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) CampsiteID() uuid.UUID  { return b.campsiteID }
func (b *Booking) OrderItemID() uuid.UUID { return b.orderItemID }
func (b *Booking) Stay() Stay             { return b.stay }
func (b *Booking) Guests() Guests         { return b.guests }
func (b *Booking) CreatedAt() time.Time   { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time   { return b.updatedAt }

// Order aggregates a user's purchases. The booking flow only ever creates a
// fresh pending order; payment mutation lives outside this service.
type Order struct {
	id         uuid.UUID
	userID     uuid.UUID
	status     PaymentStatus
	source     OrderSource
	totalCents int64
	paidCents  int64
	createdAt  time.Time
}

func NewOrder(userID uuid.UUID, source OrderSource) *Order {
	return &Order{
		id:     uuid.New(),
		userID: userID,
		status: StatusPending,
		source: source,
	}
}

func (o *Order) ID() uuid.UUID         { return o.id }
func (o *Order) UserID() uuid.UUID     { return o.userID }
func (o *Order) Status() PaymentStatus { return o.status }
func (o *Order) Source() OrderSource   { return o.source }
func (o *Order) TotalCents() int64     { return o.totalCents }
func (o *Order) PaidCents() int64      { return o.paidCents }
func (o *Order) CreatedAt() time.Time  { return o.createdAt }

// SetTotal records the order total once the line item price is known.
func (o *Order) SetTotal(price Money) {
	o.totalCents = price.Cents()
}

// OrderItem is one line of an order. Its attendance reference is the
// required existence anchor for a booking.
type OrderItem struct {
	id             uuid.UUID
	orderID        uuid.UUID
	attendanceID   uuid.UUID
	itemType       ItemType
	unitPriceCents int64
	basePriceCents int64
	quantity       int
}

// NewOrderItem records both the full unit price and its base component. The
// base is kept separately so an administrative edit can re-price extras while
// the base stays frozen.
func NewOrderItem(orderID, attendanceID uuid.UUID, itemType ItemType, unitPrice, basePrice Money) *OrderItem {
	return &OrderItem{
		id:             uuid.New(),
		orderID:        orderID,
		attendanceID:   attendanceID,
		itemType:       itemType,
		unitPriceCents: unitPrice.Cents(),
		basePriceCents: basePrice.Cents(),
		quantity:       1,
	}
}

func (i *OrderItem) ID() uuid.UUID           { return i.id }
func (i *OrderItem) OrderID() uuid.UUID      { return i.orderID }
func (i *OrderItem) AttendanceID() uuid.UUID { return i.attendanceID }
func (i *OrderItem) ItemType() ItemType      { return i.itemType }
func (i *OrderItem) UnitPriceCents() int64   { return i.unitPriceCents }
func (i *OrderItem) BasePriceCents() int64   { return i.basePriceCents }
func (i *OrderItem) Quantity() int           { return i.quantity }
