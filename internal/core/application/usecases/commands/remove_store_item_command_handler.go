package commands

import (
	"context"
)

// RemoveStoreItemCommandHandler delists a catalog item.
// Existing orders keep their product name snapshot, so removal never
// touches order history.
type RemoveStoreItemCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewRemoveStoreItemCommandHandler creates a handler for catalog removals.
func NewRemoveStoreItemCommandHandler(uowFactory CatalogUoWFactory) RemoveStoreItemCommandHandler {
	return RemoveStoreItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command.
func (h *RemoveStoreItemCommandHandler) Handle(ctx context.Context, cmd RemoveStoreItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	catalogRepo := uow.CatalogRepository()
	if _, err := catalogRepo.Get(ctx, cmd.ItemID()); err != nil {
		return err
	}

	if err := catalogRepo.Remove(ctx, cmd.ItemID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
