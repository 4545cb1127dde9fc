package queries

import (
	"errors"
	"time"

	"storepanel/internal/core/domain/model/catalog"
	"storepanel/internal/core/domain/model/kernel"
	"storepanel/internal/pkg/guard"
)

var ErrListStoreItemsQueryIsNotConstructed = errors.New(
	"ListStoreItemsQuery must be created via NewListStoreItemsQuery constructor",
)

// ListStoreItemsQuery retrieves the store's catalog listing.
type ListStoreItemsQuery struct {
	guard guard.ConstructorGuard
}

// NewListStoreItemsQuery creates a catalog listing query.
func NewListStoreItemsQuery() ListStoreItemsQuery {
	return ListStoreItemsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListStoreItemsQuery) Validate() error {
	return q.guard.Validate(ErrListStoreItemsQueryIsNotConstructed)
}

// StoreItemResponse is the read model of a catalog item.
type StoreItemResponse struct {
	ID              kernel.UUID
	Title           string
	Category        kernel.ItemCategory
	Subcategory     string
	Price           kernel.Money
	Description     string
	Images          []string
	AvailableStock  *int
	ServiceDuration string
	IsFeatured      bool
	IsLowStock      bool
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

// NewStoreItemResponse projects a catalog item into its read model.
func NewStoreItemResponse(item *catalog.Item) StoreItemResponse {
	return StoreItemResponse{
		ID:              item.ID(),
		Title:           item.Title(),
		Category:        item.Category(),
		Subcategory:     item.Subcategory(),
		Price:           item.Price(),
		Description:     item.Description(),
		Images:          item.Images(),
		AvailableStock:  item.AvailableStock(),
		ServiceDuration: item.ServiceDuration(),
		IsFeatured:      item.IsFeatured(),
		IsLowStock:      item.IsLowStock(),
		CreatedAt:       item.CreatedAt(),
		UpdatedAt:       item.UpdatedAt(),
	}
}
