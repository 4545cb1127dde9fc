package queries

import (
	"context"

	"storepanel/internal/core/ports"
)

// GetCustomerQueryHandler serves single-customer lookups.
type GetCustomerQueryHandler struct {
	customers ports.CustomerRepository
}

// NewGetCustomerQueryHandler creates a handler for single-customer lookups.
func NewGetCustomerQueryHandler(customers ports.CustomerRepository) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{customers: customers}
}

// Handle executes the query.
// Returns errs.ObjectNotFoundError when the customer does not exist.
func (h GetCustomerQueryHandler) Handle(
	ctx context.Context, query GetCustomerQuery,
) (CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return CustomerResponse{}, err
	}

	c, err := h.customers.Get(ctx, query.CustomerID())
	if err != nil {
		return CustomerResponse{}, err
	}
	return NewCustomerResponse(c), nil
}
