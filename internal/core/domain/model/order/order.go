package order

import (
	"errors"
	"fmt"
	"time"

	"storepanel/internal/core/domain/model/kernel"
	"storepanel/internal/pkg/errs"
	"storepanel/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrVerificationCodeMismatch is returned by VerifyPickup when the
	// submitted code does not equal the order's code. The order is left
	// unmodified and the caller may retry without restriction.
	ErrVerificationCodeMismatch = errors.New("verification code does not match")

	// ErrOrderAlreadyFinalized is returned by lifecycle operations on an
	// order that is already in a terminal status. It is informational, not
	// a failure: the caller should show the receipt instead.
	ErrOrderAlreadyFinalized = errors.New("order is already finalized")

	// ErrOrderNotCompleted is returned by Receipt when the order has not
	// reached Picked Up or Delivered yet.
	ErrOrderNotCompleted = errors.New("order is not completed yet")
)

// Order is the aggregate root for a customer purchase moving through the
// fulfillment lifecycle. It owns the status state machine and the pickup
// verification check.
//
// Invariants:
//   - the verification code is assigned at creation and never changes
//   - pickupTimestamp is set if and only if the status is Picked Up or
//     Delivered
//   - the status only moves along the transitions defined on Status; there
//     is no unconstrained status setter
type Order struct {
	id          kernel.UUID
	customerID  *kernel.UUID
	buyerName   string
	productName string
	category    kernel.ItemCategory
	storeName   string
	location    string
	price       kernel.Money
	paymentType PaymentType
	installment *InstallmentDetails
	code        kernel.VerificationCode
	notes       string

	status          Status
	pickupTimestamp *time.Time
	createdAt       time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates an order in Pending status with a freshly relevant
// verification code. All invariants are checked here; direct struct
// construction is rejected by Validate.
//
// customerID is optional: walk-in purchases have no customer record.
// Installment details are required for installment-plan orders and
// rejected for full-payment ones.
func NewOrder(
	id kernel.UUID,
	customerID *kernel.UUID,
	buyerName string,
	productName string,
	category kernel.ItemCategory,
	storeName string,
	location string,
	price kernel.Money,
	paymentType PaymentType,
	installment *InstallmentDetails,
	code kernel.VerificationCode,
	notes string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setBuyerName(buyerName),
		o.setProductName(productName),
		o.setCategory(category),
		o.setStoreName(storeName),
		o.setPayment(price, paymentType, installment),
		o.setCode(code),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	o.location = location
	o.notes = notes
	return o, nil
}

// RestoreOrder reconstructs an order from persistence with an explicit
// status and pickup timestamp. It enforces the same field invariants as
// NewOrder plus the pickupTimestamp/status consistency rule.
func RestoreOrder(
	id kernel.UUID,
	customerID *kernel.UUID,
	buyerName string,
	productName string,
	category kernel.ItemCategory,
	storeName string,
	location string,
	price kernel.Money,
	paymentType PaymentType,
	installment *InstallmentDetails,
	code kernel.VerificationCode,
	notes string,
	status Status,
	pickupTimestamp *time.Time,
	createdAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, customerID, buyerName, productName, category, storeName,
		location, price, paymentType, installment, code, notes, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if status.IsCompleted() != (pickupTimestamp != nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause("pickupTimestamp",
			fmt.Errorf("must be set exactly when status is completed, status is %s", status))
	}

	o.status = status
	o.pickupTimestamp = pickupTimestamp
	return o, nil
}

// Validate ensures the Order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the ordering customer's ID, or nil for walk-ins.
func (o *Order) CustomerID() *kernel.UUID {
	return o.customerID
}

// BuyerName returns the display name of the buyer.
func (o *Order) BuyerName() string {
	return o.buyerName
}

// ProductName returns the name of the ordered product or service.
func (o *Order) ProductName() string {
	return o.productName
}

// Category returns whether the order is for a product or a service.
func (o *Order) Category() kernel.ItemCategory {
	return o.category
}

// StoreName returns the fulfilling store branch.
func (o *Order) StoreName() string {
	return o.storeName
}

// Location returns the buyer's city.
func (o *Order) Location() string {
	return o.location
}

// Price returns the total order price.
func (o *Order) Price() kernel.Money {
	return o.price
}

// PaymentType returns how the order is paid.
func (o *Order) PaymentType() PaymentType {
	return o.paymentType
}

// Installment returns the payment schedule for installment-plan orders,
// nil otherwise.
func (o *Order) Installment() *InstallmentDetails {
	return o.installment
}

// VerificationCode returns the pickup code assigned at creation.
func (o *Order) VerificationCode() kernel.VerificationCode {
	return o.code
}

// Notes returns free-form operator notes.
func (o *Order) Notes() string {
	return o.notes
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PickupTimestamp returns when the order was completed, or nil while it
// is still in flight.
func (o *Order) PickupTimestamp() *time.Time {
	return o.pickupTimestamp
}

// CreatedAt returns the immutable creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// IsAwaitingVerification reports whether the verification flow applies to
// this order: true exactly for Pending, Confirmed and In-process.
func (o *Order) IsAwaitingVerification() bool {
	return o.status.IsAwaitingVerification()
}

// Confirm moves the order from Pending to Confirmed.
func (o *Order) Confirm() error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// StartProcessing moves the order to In-process.
func (o *Order) StartProcessing() error {
	newStatus, err := o.status.StartProcessing()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// VerifyPickup checks a submitted code against the order's verification
// code and, on a match, completes the order as Picked Up with the supplied
// completion time.
//
// Outcomes:
//   - terminal order: ErrOrderAlreadyFinalized, the code is not compared
//   - code mismatch: ErrVerificationCodeMismatch, order unchanged; there
//     is no retry limit or lockout
//   - match: status becomes Picked Up and pickupTimestamp is set to now
//
// Given the same order and code the outcome is deterministic; only the
// captured timestamp varies between successful calls.
func (o *Order) VerifyPickup(submittedCode string, now time.Time) error {
	if o.status.IsTerminal() {
		return ErrOrderAlreadyFinalized
	}

	if !o.code.Matches(submittedCode) {
		return ErrVerificationCodeMismatch
	}

	newStatus, err := o.status.PickUp()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.pickupTimestamp = &now
	return nil
}

// MarkDelivered completes an In-process order through the courier
// handover path, recording the completion time.
func (o *Order) MarkDelivered(now time.Time) error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.pickupTimestamp = &now
	return nil
}

// Cancel abandons a pre-terminal order.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID *kernel.UUID) error {
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return err
		}
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setBuyerName(buyerName string) error {
	if buyerName == "" {
		return errs.NewValueIsRequiredError("buyerName")
	}
	o.buyerName = buyerName
	return nil
}

func (o *Order) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	o.productName = productName
	return nil
}

func (o *Order) setCategory(category kernel.ItemCategory) error {
	if err := category.Validate(); err != nil {
		return err
	}
	o.category = category
	return nil
}

func (o *Order) setStoreName(storeName string) error {
	if storeName == "" {
		return errs.NewValueIsRequiredError("storeName")
	}
	o.storeName = storeName
	return nil
}

func (o *Order) setPayment(price kernel.Money, paymentType PaymentType, installment *InstallmentDetails) error {
	if err := paymentType.Validate(); err != nil {
		return err
	}
	if paymentType == InstallmentPlan && installment == nil {
		return errs.NewValueIsRequiredError("installmentDetails")
	}
	if paymentType == FullPayment && installment != nil {
		return errs.NewValueIsInvalidErrorWithCause("installmentDetails",
			errors.New("full-payment orders carry no installment schedule"))
	}

	o.price = price
	o.paymentType = paymentType
	o.installment = installment
	return nil
}

func (o *Order) setCode(code kernel.VerificationCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	o.code = code
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}
