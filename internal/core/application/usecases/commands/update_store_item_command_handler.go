package commands

import (
	"context"
	"time"
)

// UpdateStoreItemCommandHandler applies a full edit to a catalog item.
type UpdateStoreItemCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewUpdateStoreItemCommandHandler creates a handler for catalog edits.
func NewUpdateStoreItemCommandHandler(uowFactory CatalogUoWFactory) UpdateStoreItemCommandHandler {
	return UpdateStoreItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the edit command.
func (h *UpdateStoreItemCommandHandler) Handle(ctx context.Context, cmd UpdateStoreItemCommand) error {
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
	item, err := catalogRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	if err = item.ApplyEdit(
		cmd.Title(),
		cmd.Subcategory(),
		cmd.Price(),
		cmd.Description(),
		cmd.Images(),
		cmd.AvailableStock(),
		cmd.ServiceDuration(),
		cmd.IsFeatured(),
		time.Now().UTC(),
	); err != nil {
		return err
	}

	if err = catalogRepo.Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
