// Package notify is the outbox-backed notification collaborator. Delivery
// itself is owned by an external mailer draining notification_jobs; this
// side only enqueues.
package notify

import (
	"context"
	"encoding/json"

	"campreserve/internal/infra"
	"campreserve/internal/infra/db"
	"campreserve/internal/pkg/clock"
	"campreserve/internal/usecase/commands"

	"github.com/google/uuid"
)

const kindBookingConfirmation = "booking_confirmation"

type JobEnqueuer struct {
	db    db.DBTX
	clock clock.Clock
}

func NewJobEnqueuer(dbtx db.DBTX, clk clock.Clock) *JobEnqueuer {
	return &JobEnqueuer{db: dbtx, clock: clk}
}

type bookingPayload struct {
	OrderID       uuid.UUID `json:"order_id"`
	BookingID     uuid.UUID `json:"booking_id"`
	OwnerName     string    `json:"owner_name"`
	CampsiteLabel string    `json:"campsite_label"`
	CheckIn       string    `json:"check_in"`
	CheckOut      string    `json:"check_out"`
	TotalCents    int64     `json:"total_cents"`
}

// BookingCreated enqueues a confirmation job. Runs outside the booking
// transaction; the caller logs failures and never rolls back for them.
func (n *JobEnqueuer) BookingCreated(ctx context.Context, notification commands.BookingNotification) error {
	payload, err := json.Marshal(bookingPayload{
		OrderID:       notification.OrderID,
		BookingID:     notification.BookingID,
		OwnerName:     notification.OwnerName,
		CampsiteLabel: notification.CampsiteLabel,
		CheckIn:       notification.CheckIn.String(),
		CheckOut:      notification.CheckOut.String(),
		TotalCents:    notification.TotalCents,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to marshal notification payload", err)
	}

	const q = `
		INSERT INTO notification_jobs (id, kind, recipient, payload, run_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err = n.db.Exec(ctx, q, uuid.New(), kindBookingConfirmation,
		notification.OwnerEmail, payload, n.clock.Now().UTC())
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue notification job", err)
	}
	return nil
}

var _ commands.Notifier = (*JobEnqueuer)(nil)
