package queries

import (
	"errors"

	"storepanel/internal/core/domain/model/kernel"
	"storepanel/internal/pkg/guard"
)

var ErrGetReceiptQueryIsNotConstructed = errors.New(
	"GetReceiptQuery must be created via NewGetReceiptQuery constructor",
)

// GetReceiptQuery retrieves the completion receipt of a finished order.
// Fails with order.ErrOrderNotCompleted for orders still in flight.
type GetReceiptQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetReceiptQuery creates a receipt query.
func NewGetReceiptQuery(orderID kernel.UUID) (GetReceiptQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetReceiptQuery{}, err
	}

	return GetReceiptQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetReceiptQuery) Validate() error {
	return q.guard.Validate(ErrGetReceiptQueryIsNotConstructed)
}

// OrderID returns the identifier of the completed order.
func (q GetReceiptQuery) OrderID() kernel.UUID {
	return q.orderID
}
