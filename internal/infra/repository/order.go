package repository

import (
	"context"

	"campreserve/internal/domain/booking"
	"campreserve/internal/infra/db"

	"github.com/google/uuid"
)

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(dbtx db.DBTX) *OrderRepository {
	return &OrderRepository{db: dbtx}
}

func (r *OrderRepository) Create(ctx context.Context, o *booking.Order) error {
	const q = `
		INSERT INTO orders (id, user_id, payment_status, source, total_cents, paid_cents)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, q,
		o.ID(), o.UserID(), o.Status().String(), o.Source().String(), o.TotalCents(), o.PaidCents())
	if err != nil {
		return wrapWriteErr("failed to create order", err)
	}
	return nil
}

func (r *OrderRepository) CreateItem(ctx context.Context, item *booking.OrderItem) error {
	const q = `
		INSERT INTO order_items (id, order_id, attendance_id, item_type, unit_price_cents, base_price_cents, quantity)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, q,
		item.ID(), item.OrderID(), item.AttendanceID(), item.ItemType(),
		item.UnitPriceCents(), item.BasePriceCents(), item.Quantity())
	if err != nil {
		return wrapWriteErr("failed to create order item", err)
	}
	return nil
}

func (r *OrderRepository) SetTotal(ctx context.Context, orderID uuid.UUID, totalCents int64) error {
	const q = `UPDATE orders SET total_cents = $2, updated_at = now() WHERE id = $1`

	if _, err := r.db.Exec(ctx, q, orderID, totalCents); err != nil {
		return wrapWriteErr("failed to set order total", err)
	}
	return nil
}

func (r *OrderRepository) UpdateItemPrice(ctx context.Context, orderItemID uuid.UUID, unitPriceCents, basePriceCents int64) error {
	const q = `UPDATE order_items SET unit_price_cents = $2, base_price_cents = $3 WHERE id = $1`

	if _, err := r.db.Exec(ctx, q, orderItemID, unitPriceCents, basePriceCents); err != nil {
		return wrapWriteErr("failed to update order item price", err)
	}
	return nil
}
