package queries

import (
	"context"

	"storepanel/internal/core/domain/model/order"
	"storepanel/internal/core/ports"
)

// GetReceiptQueryHandler serves receipts for completed orders.
type GetReceiptQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetReceiptQueryHandler creates a handler for receipt lookups.
func NewGetReceiptQueryHandler(orders ports.OrderRepository) GetReceiptQueryHandler {
	return GetReceiptQueryHandler{orders: orders}
}

// Handle executes the query. The aggregate decides whether a receipt
// exists; orders that are not Picked Up or Delivered have none.
func (h GetReceiptQueryHandler) Handle(ctx context.Context, query GetReceiptQuery) (order.Receipt, error) {
	if err := query.Validate(); err != nil {
		return order.Receipt{}, err
	}

	aggregate, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return order.Receipt{}, err
	}

	return aggregate.Receipt()
}
