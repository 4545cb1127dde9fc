package queries

import (
	"context"

	"storepanel/internal/core/domain/model/order"
	"storepanel/internal/core/ports"
)

// ListOrdersQueryHandler serves the panel's order book listing.
type ListOrdersQueryHandler struct {
	orders ports.OrderRepository
}

// NewListOrdersQueryHandler creates a handler for order listings.
func NewListOrdersQueryHandler(orders ports.OrderRepository) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orders: orders}
}

// Handle executes the query. The repository returns orders newest first;
// the handler only projects them.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		aggregates []*order.Order
		err        error
	)
	if query.Status() != nil {
		aggregates, err = h.orders.GetAllInStatus(ctx, *query.Status())
	} else {
		aggregates, err = h.orders.GetAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(aggregates))
	for _, aggregate := range aggregates {
		responses = append(responses, NewOrderResponse(aggregate))
	}
	return responses, nil
}
