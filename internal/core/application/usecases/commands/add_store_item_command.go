package commands

import (
	"errors"

	"storepanel/internal/core/domain/model/kernel"
	"storepanel/internal/pkg/errs"
	"storepanel/internal/pkg/guard"
)

var ErrAddStoreItemCommandIsNotConstructed = errors.New(
	"AddStoreItemCommand must be created via NewAddStoreItemCommand constructor",
)

// AddStoreItemCommand represents a request to list a new product or
// service in the store's catalog.
type AddStoreItemCommand struct { //nolint:recvcheck //using for validation
	itemID          kernel.UUID
	title           string
	category        kernel.ItemCategory
	subcategory     string
	price           kernel.Money
	description     string
	images          []string
	availableStock  *int
	serviceDuration string
	isFeatured      bool

	guard guard.ConstructorGuard
}

// NewAddStoreItemCommand creates a command to add a catalog item.
// Category-dependent rules, stock for products only and duration for
// services only, are enforced by the item aggregate.
func NewAddStoreItemCommand(
	itemID kernel.UUID,
	title string,
	category kernel.ItemCategory,
	subcategory string,
	price kernel.Money,
	description string,
	images []string,
	availableStock *int,
	serviceDuration string,
	isFeatured bool,
) (AddStoreItemCommand, error) {
	cmd := AddStoreItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setTitle(title),
		cmd.setCategory(category),
	); err != nil {
		return AddStoreItemCommand{}, err
	}

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
func (c AddStoreItemCommand) Validate() error {
	return c.guard.Validate(ErrAddStoreItemCommandIsNotConstructed)
}

// ItemID returns the identifier assigned to the new item.
func (c AddStoreItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Title returns the item's display title.
func (c AddStoreItemCommand) Title() string {
	return c.title
}

// Category returns whether the item is a product or a service.
func (c AddStoreItemCommand) Category() kernel.ItemCategory {
	return c.category
}

// Subcategory returns the free-form subcategory label.
func (c AddStoreItemCommand) Subcategory() string {
	return c.subcategory
}

// Price returns the listing price.
func (c AddStoreItemCommand) Price() kernel.Money {
	return c.price
}

// Description returns the listing description.
func (c AddStoreItemCommand) Description() string {
	return c.description
}

// Images returns the listing image URLs.
func (c AddStoreItemCommand) Images() []string {
	return c.images
}

// AvailableStock returns the initial stock for products, nil for services.
func (c AddStoreItemCommand) AvailableStock() *int {
	return c.availableStock
}

// ServiceDuration returns the expected duration for services.
func (c AddStoreItemCommand) ServiceDuration() string {
	return c.serviceDuration
}

// IsFeatured reports whether the item is highlighted on the storefront.
func (c AddStoreItemCommand) IsFeatured() bool {
	return c.isFeatured
}

func (c *AddStoreItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *AddStoreItemCommand) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}

	c.title = title
	return nil
}

func (c *AddStoreItemCommand) setCategory(category kernel.ItemCategory) error {
	if err := category.Validate(); err != nil {
		return err
	}

	c.category = category
	return nil
}
