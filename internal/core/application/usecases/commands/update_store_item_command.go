package commands

import (
	"errors"

	"storepanel/internal/core/domain/model/kernel"
	"storepanel/internal/pkg/errs"
	"storepanel/internal/pkg/guard"
)

var ErrUpdateStoreItemCommandIsNotConstructed = errors.New(
	"UpdateStoreItemCommand must be created via NewUpdateStoreItemCommand constructor",
)

// UpdateStoreItemCommand represents a full edit of a catalog item's
// listing fields. Identity and category are immutable after creation.
type UpdateStoreItemCommand struct { //nolint:recvcheck //using for validation
	itemID          kernel.UUID
	title           string
	subcategory     string
	price           kernel.Money
	description     string
	images          []string
	availableStock  *int
	serviceDuration string
	isFeatured      bool

	guard guard.ConstructorGuard
}

// NewUpdateStoreItemCommand creates a command to edit a catalog item.
func NewUpdateStoreItemCommand(
	itemID kernel.UUID,
	title string,
	subcategory string,
	price kernel.Money,
	description string,
	images []string,
	availableStock *int,
	serviceDuration string,
	isFeatured bool,
) (UpdateStoreItemCommand, error) {
	cmd := UpdateStoreItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := itemID.Validate(); err != nil {
		return UpdateStoreItemCommand{}, err
	}
	if title == "" {
		return UpdateStoreItemCommand{}, errs.NewValueIsRequiredError("title")
	}

	cmd.itemID = itemID
	cmd.title = title
	cmd.subcategory = subcategory
	cmd.price = price
	cmd.description = description
	cmd.images = images
	cmd.availableStock = availableStock
	cmd.serviceDuration = serviceDuration
	cmd.isFeatured = isFeatured
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateStoreItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStoreItemCommandIsNotConstructed)
}

// ItemID returns the identifier of the item being edited.
func (c UpdateStoreItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Title returns the new display title.
func (c UpdateStoreItemCommand) Title() string {
	return c.title
}

// Subcategory returns the new subcategory label.
func (c UpdateStoreItemCommand) Subcategory() string {
	return c.subcategory
}

// Price returns the new listing price.
func (c UpdateStoreItemCommand) Price() kernel.Money {
	return c.price
}

// Description returns the new listing description.
func (c UpdateStoreItemCommand) Description() string {
	return c.description
}

// Images returns the new image URLs.
func (c UpdateStoreItemCommand) Images() []string {
	return c.images
}

// AvailableStock returns the new stock level for products.
func (c UpdateStoreItemCommand) AvailableStock() *int {
	return c.availableStock
}

// ServiceDuration returns the new expected duration for services.
func (c UpdateStoreItemCommand) ServiceDuration() string {
	return c.serviceDuration
}

// IsFeatured reports whether the item should be highlighted.
func (c UpdateStoreItemCommand) IsFeatured() bool {
	return c.isFeatured
}
