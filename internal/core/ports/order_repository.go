package ports

import (
	"context"

	"storepanel/internal/core/domain/model/kernel"
	"storepanel/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their lifecycle status.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its current status and verification code.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every order, newest first by creation time.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllInStatus retrieves orders currently in the given status,
	// newest first by creation time.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// GetAllWithInstallments retrieves non-terminal orders sold on an
	// installment plan. Used by the reminder job.
	GetAllWithInstallments(ctx context.Context) ([]*order.Order, error)
}
