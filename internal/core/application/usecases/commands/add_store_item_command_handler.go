package commands

import (
	"context"
	"time"

	"storepanel/internal/core/domain/model/catalog"
)

// AddStoreItemCommandHandler lists a new item in the store catalog.
type AddStoreItemCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewAddStoreItemCommandHandler creates a handler for catalog additions.
func NewAddStoreItemCommandHandler(uowFactory CatalogUoWFactory) AddStoreItemCommandHandler {
	return AddStoreItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-item command.
func (h *AddStoreItemCommandHandler) Handle(ctx context.Context, cmd AddStoreItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	item, err := catalog.NewItem(
		cmd.ItemID(),
		cmd.Title(),
		cmd.Category(),
		cmd.Subcategory(),
		cmd.Price(),
		cmd.Description(),
		cmd.Images(),
		cmd.AvailableStock(),
		cmd.ServiceDuration(),
		cmd.IsFeatured(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CatalogRepository().Add(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
