package ports

import (
	"context"

	"storepanel/internal/core/domain/model/customer"
	"storepanel/internal/core/domain/model/kernel"
)

// CustomerRepository defines the read contract for customers and their reviews.
// Customers originate outside the store panel, so the panel only ever reads them.
type CustomerRepository interface {
	// Get retrieves a customer by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetAll retrieves every customer known to the store.
	GetAll(ctx context.Context) ([]*customer.Customer, error)

	// GetAllReviews retrieves every review left for the store.
	GetAllReviews(ctx context.Context) ([]customer.Review, error)
}
