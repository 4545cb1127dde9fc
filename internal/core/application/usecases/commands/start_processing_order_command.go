package commands

import (
	"errors"

	"storepanel/internal/core/domain/model/kernel"
	"storepanel/internal/pkg/guard"
)

var ErrStartProcessingOrderCommandIsNotConstructed = errors.New(
	"StartProcessingOrderCommand must be created via NewStartProcessingOrderCommand constructor",
)

// StartProcessingOrderCommand represents a request to begin preparing an order.
type StartProcessingOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartProcessingOrderCommand creates a command to start order preparation.
func NewStartProcessingOrderCommand(orderID kernel.UUID) (StartProcessingOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return StartProcessingOrderCommand{}, err
	}

	return StartProcessingOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartProcessingOrderCommand) Validate() error {
	return c.guard.Validate(ErrStartProcessingOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to start preparing.
func (c StartProcessingOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
