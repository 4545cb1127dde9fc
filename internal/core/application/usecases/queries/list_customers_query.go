package queries

import (
	"errors"
	"time"

	"storepanel/internal/core/domain/model/customer"
	"storepanel/internal/core/domain/model/kernel"
	"storepanel/internal/pkg/guard"
)

var ErrListCustomersQueryIsNotConstructed = errors.New(
	"ListCustomersQuery must be created via NewListCustomersQuery constructor",
)

// ListCustomersQuery retrieves the store's customer book with reviews.
type ListCustomersQuery struct {
	guard guard.ConstructorGuard
}

// NewListCustomersQuery creates a customer listing query.
func NewListCustomersQuery() ListCustomersQuery {
	return ListCustomersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListCustomersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomersQueryIsNotConstructed)
}

// CustomerResponse is the read model of a customer record.
type CustomerResponse struct {
	ID            kernel.UUID
	Name          string
	Phone         string
	Email         string
	TotalSpent    kernel.Money
	OrderCount    int
	LastOrderDate *time.Time
	Reviews       []customer.Review
	CreatedAt     time.Time
}

// NewCustomerResponse projects a customer into its read model.
func NewCustomerResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:            c.ID(),
		Name:          c.Name(),
		Phone:         c.Phone(),
		Email:         c.Email(),
		TotalSpent:    c.TotalSpent(),
		OrderCount:    c.OrderCount(),
		LastOrderDate: c.LastOrderDate(),
		Reviews:       c.Reviews(),
		CreatedAt:     c.CreatedAt(),
	}
}
