// Package customer provides the customer entity and review value object
// used by the panel's customer browser and the analytics calculator.
package customer

import (
	"errors"
	"time"

	"storepanel/internal/core/domain/model/kernel"
	"storepanel/internal/pkg/errs"
	"storepanel/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was
// not created through NewCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer")

// Review is a customer's rating of a completed order, optionally tied to
// a specific catalog item. Ratings run 1 to 5.
type Review struct {
	OrderID   kernel.UUID
	ItemID    *kernel.UUID
	Rating    int
	Text      string
	CreatedAt time.Time
}

// NewReview creates a validated review.
func NewReview(orderID kernel.UUID, itemID *kernel.UUID, rating int, text string, createdAt time.Time) (Review, error) {
	if err := orderID.Validate(); err != nil {
		return Review{}, err
	}
	if rating < 1 || rating > 5 {
		return Review{}, errs.NewValueIsOutOfRangeError("rating", rating, 1, 5)
	}
	return Review{
		OrderID:   orderID,
		ItemID:    itemID,
		Rating:    rating,
		Text:      text,
		CreatedAt: createdAt,
	}, nil
}

// Customer is a read-mostly entity: the panel browses customers and feeds
// their order history and reviews into analytics, but never edits them.
type Customer struct {
	id            kernel.UUID
	name          string
	phone         string
	email         string
	totalSpent    kernel.Money
	orderCount    int
	lastOrderDate *time.Time
	reviews       []Review
	createdAt     time.Time

	guard guard.ConstructorGuard
}

// NewCustomer creates a customer record.
func NewCustomer(
	id kernel.UUID,
	name string,
	phone string,
	email string,
	totalSpent kernel.Money,
	orderCount int,
	lastOrderDate *time.Time,
	reviews []Review,
	createdAt time.Time,
) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if orderCount < 0 {
		return nil, errs.NewValueIsOutOfRangeError("orderCount", orderCount, 0, "unbounded")
	}

	return &Customer{
		id:            id,
		name:          name,
		phone:         phone,
		email:         email,
		totalSpent:    totalSpent,
		orderCount:    orderCount,
		lastOrderDate: lastOrderDate,
		reviews:       reviews,
		createdAt:     createdAt,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Customer was built through NewCustomer.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Phone returns the contact phone number.
func (c *Customer) Phone() string {
	return c.phone
}

// Email returns the contact email.
func (c *Customer) Email() string {
	return c.email
}

// TotalSpent returns the lifetime spend.
func (c *Customer) TotalSpent() kernel.Money {
	return c.totalSpent
}

// OrderCount returns the number of orders placed.
func (c *Customer) OrderCount() int {
	return c.orderCount
}

// LastOrderDate returns the most recent order date, nil if none.
func (c *Customer) LastOrderDate() *time.Time {
	return c.lastOrderDate
}

// Reviews returns the customer's reviews.
func (c *Customer) Reviews() []Review {
	return c.reviews
}

// CreatedAt returns when the customer record was created.
func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}
