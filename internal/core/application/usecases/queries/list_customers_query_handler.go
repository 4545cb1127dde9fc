package queries

import (
	"context"

	"storepanel/internal/core/ports"
)

// ListCustomersQueryHandler serves the customer book.
type ListCustomersQueryHandler struct {
	customers ports.CustomerRepository
}

// NewListCustomersQueryHandler creates a handler for customer listings.
func NewListCustomersQueryHandler(customers ports.CustomerRepository) ListCustomersQueryHandler {
	return ListCustomersQueryHandler{customers: customers}
}

// Handle executes the query.
func (h ListCustomersQueryHandler) Handle(
	ctx context.Context, query ListCustomersQuery,
) ([]CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	customers, err := h.customers.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		responses = append(responses, NewCustomerResponse(c))
	}
	return responses, nil
}
