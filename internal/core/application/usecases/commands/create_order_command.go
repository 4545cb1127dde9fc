package commands

import (
	"errors"

	"storepanel/internal/core/domain/model/kernel"
	"storepanel/internal/core/domain/model/order"
	"storepanel/internal/pkg/errs"
	"storepanel/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new customer order.
// Encapsulates everything known about the purchase at intake time; the
// verification code and creation timestamp are assigned by the handler.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, nil, "Ahmed B.", "Brake Pads",
//	    kernel.Product, "AutoParts Plus", "Algiers", price, order.FullPayment, nil, "")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, sink, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	customerID  *kernel.UUID
	buyerName   string
	productName string
	category    kernel.ItemCategory
	storeName   string
	location    string
	price       kernel.Money
	paymentType order.PaymentType
	installment *order.InstallmentDetails
	notes       string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates identifiers, required names, the category and the payment type.
// Deeper payment consistency rules are enforced by the order aggregate.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID *kernel.UUID,
	buyerName string,
	productName string,
	category kernel.ItemCategory,
	storeName string,
	location string,
	price kernel.Money,
	paymentType order.PaymentType,
	installment *order.InstallmentDetails,
	notes string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setBuyerName(buyerName),
		cmd.setProductName(productName),
		cmd.setCategory(category),
		cmd.setStoreName(storeName),
		cmd.setPaymentType(paymentType),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.location = location
	cmd.price = price
	cmd.installment = installment
	cmd.notes = notes
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ordering customer's ID, or nil for walk-ins.
func (c CreateOrderCommand) CustomerID() *kernel.UUID {
	return c.customerID
}

// BuyerName returns the display name of the buyer.
func (c CreateOrderCommand) BuyerName() string {
	return c.buyerName
}

// ProductName returns the name of the ordered product or service.
func (c CreateOrderCommand) ProductName() string {
	return c.productName
}

// Category returns whether the order is for a product or a service.
func (c CreateOrderCommand) Category() kernel.ItemCategory {
	return c.category
}

// StoreName returns the fulfilling store branch.
func (c CreateOrderCommand) StoreName() string {
	return c.storeName
}

// Location returns the buyer's city.
func (c CreateOrderCommand) Location() string {
	return c.location
}

// Price returns the total order price.
func (c CreateOrderCommand) Price() kernel.Money {
	return c.price
}

// PaymentType returns how the order is paid.
func (c CreateOrderCommand) PaymentType() order.PaymentType {
	return c.paymentType
}

// Installment returns the payment schedule for installment-plan orders.
func (c CreateOrderCommand) Installment() *order.InstallmentDetails {
	return c.installment
}

// Notes returns free-form operator notes.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID *kernel.UUID) error {
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return err
		}
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setBuyerName(buyerName string) error {
	if buyerName == "" {
		return errs.NewValueIsRequiredError("buyerName")
	}

	c.buyerName = buyerName
	return nil
}

func (c *CreateOrderCommand) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("productName")
	}

	c.productName = productName
	return nil
}

func (c *CreateOrderCommand) setCategory(category kernel.ItemCategory) error {
	if err := category.Validate(); err != nil {
		return err
	}

	c.category = category
	return nil
}

func (c *CreateOrderCommand) setStoreName(storeName string) error {
	if storeName == "" {
		return errs.NewValueIsRequiredError("storeName")
	}

	c.storeName = storeName
	return nil
}

func (c *CreateOrderCommand) setPaymentType(paymentType order.PaymentType) error {
	if err := paymentType.Validate(); err != nil {
		return err
	}

	c.paymentType = paymentType
	return nil
}
