// Package ports defines repository interfaces for the store panel domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"storepanel/internal/core/domain/model/catalog"
	"storepanel/internal/core/domain/model/kernel"
)

// CatalogRepository defines the persistence contract for catalog items.
type CatalogRepository interface {
	// Add persists a new catalog item to storage.
	// The item must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *catalog.Item) error

	// Update persists changes to an existing catalog item.
	Update(ctx context.Context, aggregate *catalog.Item) error

	// Get retrieves a catalog item by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Item, error)

	// GetAll retrieves every catalog item in the store's listing.
	GetAll(ctx context.Context) ([]*catalog.Item, error)

	// GetAllLowStock retrieves products whose remaining stock is below
	// the low-stock threshold. Services are never included.
	GetAllLowStock(ctx context.Context) ([]*catalog.Item, error)

	// Remove deletes a catalog item from storage.
	Remove(ctx context.Context, id kernel.UUID) error
}
