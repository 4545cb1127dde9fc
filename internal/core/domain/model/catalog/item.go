package catalog

import (
	"errors"
	"time"

	"storepanel/internal/core/domain/model/kernel"
	"storepanel/internal/pkg/errs"
	"storepanel/internal/pkg/guard"
)

// lowStockThreshold is the stock level below which a product is flagged
// on the analytics dashboard.
const lowStockThreshold = 10

// ErrItemIsNotConstructed is returned when an Item instance was not
// created through NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

// Item is a catalog entry: either a physical product with a stock level
// or a workshop service with a duration. Stock applies only to products,
// duration only to services; the constructor enforces the split.
type Item struct {
	id              kernel.UUID
	title           string
	category        kernel.ItemCategory
	subcategory     string
	price           kernel.Money
	description     string
	images          []string
	availableStock  *int
	serviceDuration string
	isFeatured      bool
	createdAt       time.Time
	updatedAt       *time.Time

	guard guard.ConstructorGuard
}

// NewItem creates a catalog item. For products a nil stock defaults to 0,
// mirroring the panel's item form; for services stock must be absent and
// duration may be set.
func NewItem(
	id kernel.UUID,
	title string,
	category kernel.ItemCategory,
	subcategory string,
	price kernel.Money,
	description string,
	images []string,
	availableStock *int,
	serviceDuration string,
	isFeatured bool,
	createdAt time.Time,
) (*Item, error) {
	item := &Item{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setID(id),
		item.setTitle(title),
		item.setCategory(category),
		item.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	if err := item.setCategoryFields(availableStock, serviceDuration); err != nil {
		return nil, err
	}

	item.subcategory = subcategory
	item.price = price
	item.description = description
	item.images = images
	item.isFeatured = isFeatured
	return item, nil
}

// RestoreItem reconstructs a catalog item from persistence, including its
// last-updated timestamp.
func RestoreItem(
	id kernel.UUID,
	title string,
	category kernel.ItemCategory,
	subcategory string,
	price kernel.Money,
	description string,
	images []string,
	availableStock *int,
	serviceDuration string,
	isFeatured bool,
	createdAt time.Time,
	updatedAt *time.Time,
) (*Item, error) {
	item, err := NewItem(id, title, category, subcategory, price, description,
		images, availableStock, serviceDuration, isFeatured, createdAt)
	if err != nil {
		return nil, err
	}
	item.updatedAt = updatedAt
	return item, nil
}

// Validate ensures the Item was built through a constructor.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// Title returns the display title.
func (i *Item) Title() string {
	return i.title
}

// Category reports whether the entry is a product or a service.
func (i *Item) Category() kernel.ItemCategory {
	return i.category
}

// Subcategory returns the free-form grouping, e.g. "Engine Lubricants".
func (i *Item) Subcategory() string {
	return i.subcategory
}

// Price returns the list price.
func (i *Item) Price() kernel.Money {
	return i.price
}

// Description returns the item description.
func (i *Item) Description() string {
	return i.description
}

// Images returns the image URLs.
func (i *Item) Images() []string {
	return i.images
}

// AvailableStock returns the stock level for products, nil for services.
func (i *Item) AvailableStock() *int {
	return i.availableStock
}

// ServiceDuration returns the expected duration for services, empty for
// products.
func (i *Item) ServiceDuration() string {
	return i.serviceDuration
}

// IsFeatured reports whether the item is highlighted on the storefront.
func (i *Item) IsFeatured() bool {
	return i.isFeatured
}

// CreatedAt returns the creation timestamp.
func (i *Item) CreatedAt() time.Time {
	return i.createdAt
}

// UpdatedAt returns the last edit time, nil if never edited.
func (i *Item) UpdatedAt() *time.Time {
	return i.updatedAt
}

// IsLowStock reports whether this is a product with a known stock level
// below the alert threshold. Services are never low-stock.
func (i *Item) IsLowStock() bool {
	return i.category == kernel.Product &&
		i.availableStock != nil &&
		*i.availableStock < lowStockThreshold
}

// ApplyEdit replaces the editable fields of the item and stamps
// updatedAt. Identity, category and creation time are immutable.
func (i *Item) ApplyEdit(
	title string,
	subcategory string,
	price kernel.Money,
	description string,
	images []string,
	availableStock *int,
	serviceDuration string,
	isFeatured bool,
	now time.Time,
) error {
	if err := i.setTitle(title); err != nil {
		return err
	}
	if err := i.setCategoryFields(availableStock, serviceDuration); err != nil {
		return err
	}

	i.subcategory = subcategory
	i.price = price
	i.description = description
	i.images = images
	i.isFeatured = isFeatured
	i.updatedAt = &now
	return nil
}

// Restock sets a product's stock level. Fails for services.
func (i *Item) Restock(stock int, now time.Time) error {
	if i.category != kernel.Product {
		return errs.NewValueIsInvalidErrorWithCause("availableStock",
			errors.New("services carry no stock"))
	}
	if stock < 0 {
		return errs.NewValueIsOutOfRangeError("availableStock", stock, 0, "unbounded")
	}
	i.availableStock = &stock
	i.updatedAt = &now
	return nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	i.title = title
	return nil
}

func (i *Item) setCategory(category kernel.ItemCategory) error {
	if err := category.Validate(); err != nil {
		return err
	}
	i.category = category
	return nil
}

func (i *Item) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	i.createdAt = createdAt
	return nil
}

func (i *Item) setCategoryFields(availableStock *int, serviceDuration string) error {
	switch i.category {
	case kernel.Product:
		if availableStock == nil {
			zero := 0
			availableStock = &zero
		}
		if *availableStock < 0 {
			return errs.NewValueIsOutOfRangeError("availableStock", *availableStock, 0, "unbounded")
		}
		i.availableStock = availableStock
		i.serviceDuration = ""
	case kernel.Service:
		if availableStock != nil {
			return errs.NewValueIsInvalidErrorWithCause("availableStock",
				errors.New("services carry no stock"))
		}
		i.availableStock = nil
		i.serviceDuration = serviceDuration
	default:
		return i.category.Validate()
	}
	return nil
}
