package queries

import (
	"context"

	"storepanel/internal/core/ports"
)

// ListStoreItemsQueryHandler serves the catalog listing.
type ListStoreItemsQueryHandler struct {
	catalog ports.CatalogRepository
}

// NewListStoreItemsQueryHandler creates a handler for catalog listings.
func NewListStoreItemsQueryHandler(catalog ports.CatalogRepository) ListStoreItemsQueryHandler {
	return ListStoreItemsQueryHandler{catalog: catalog}
}

// Handle executes the query.
func (h ListStoreItemsQueryHandler) Handle(
	ctx context.Context, query ListStoreItemsQuery,
) ([]StoreItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items, err := h.catalog.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]StoreItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, NewStoreItemResponse(item))
	}
	return responses, nil
}
