package booking

// PaymentStatus is the owning order's lifecycle state. Bookings are never
// hard-deleted; cancelling the order retires them.
type PaymentStatus string

const (
	StatusPending       PaymentStatus = "pending"
	StatusPaid          PaymentStatus = "paid"
	StatusPartiallyPaid PaymentStatus = "partially_paid"
	StatusCancelled     PaymentStatus = "cancelled"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusPartiallyPaid, StatusCancelled:
		return true
	default:
		return false
	}
}

// OrderSource distinguishes self-service purchases from administrative
// imports made on someone's behalf.
type OrderSource string

const (
	SourceNormal      OrderSource = "normal"
	SourceAdminImport OrderSource = "admin_import"
)

func (s OrderSource) String() string {
	return string(s)
}

// ItemType for order line items. Campsite bookings are the only type this
// service writes; others exist in the schema for imported data.
type ItemType string

const ItemTypeCampsite ItemType = "campsite"

// TicketTypeSystemName is the well-known name of the lazily created
// placeholder classification that anchors a booking's attendance record.
const TicketTypeSystemName = "Campsite Holder"
