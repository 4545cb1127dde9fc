// Package queries contains read-only operations over the store's data.
// Query handlers read through the repository ports so that every storage
// backend serves the same read side.
package queries

import (
	"errors"
	"time"

	"storepanel/internal/core/domain/model/kernel"
	"storepanel/internal/core/domain/model/order"
	"storepanel/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its full lifecycle state.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderResponse is the read model of an order shown in the panel,
// including the verification code: the panel is the store side of the
// handover and displays the code state to the operator.
type OrderResponse struct {
	ID               kernel.UUID
	CustomerID       *kernel.UUID
	BuyerName        string
	ProductName      string
	Category         kernel.ItemCategory
	StoreName        string
	Location         string
	Price            kernel.Money
	PaymentType      order.PaymentType
	Installment      *order.InstallmentDetails
	VerificationCode string
	Notes            string
	Status           order.Status
	PickupTimestamp  *time.Time
	CreatedAt        time.Time
}

// NewOrderResponse projects an order aggregate into its read model.
func NewOrderResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:               o.ID(),
		CustomerID:       o.CustomerID(),
		BuyerName:        o.BuyerName(),
		ProductName:      o.ProductName(),
		Category:         o.Category(),
		StoreName:        o.StoreName(),
		Location:         o.Location(),
		Price:            o.Price(),
		PaymentType:      o.PaymentType(),
		Installment:      o.Installment(),
		VerificationCode: o.VerificationCode().String(),
		Notes:            o.Notes(),
		Status:           o.Status(),
		PickupTimestamp:  o.PickupTimestamp(),
		CreatedAt:        o.CreatedAt(),
	}
}
