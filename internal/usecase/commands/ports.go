package commands

import (
	"context"

	"campreserve/internal/pkg/dateutil"

	"github.com/google/uuid"
)

// BookingNotification is the payload handed to the notification collaborator
// after a booking commits.
type BookingNotification struct {
	OrderID       uuid.UUID
	BookingID     uuid.UUID
	OwnerName     string
	OwnerEmail    string
	CampsiteLabel string
	CheckIn       dateutil.Date
	CheckOut      dateutil.Date
	TotalCents    int64
}

// Notifier delivers booking confirmations. Implementations are best-effort:
// a failure is the caller's to log, never to escalate, because the booking
// is already committed when this runs.
type Notifier interface {
	BookingCreated(ctx context.Context, n BookingNotification) error
}
