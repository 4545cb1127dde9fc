package commands

import (
	"errors"

	"storepanel/internal/core/domain/model/kernel"
	"storepanel/internal/pkg/guard"
)

var ErrMarkOrderDeliveredCommandIsNotConstructed = errors.New(
	"MarkOrderDeliveredCommand must be created via NewMarkOrderDeliveredCommand constructor",
)

// MarkOrderDeliveredCommand represents a courier handover confirmation.
// Delivery is the completion path that bypasses the pickup code: the
// courier hands the package over and the operator marks the order done.
type MarkOrderDeliveredCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkOrderDeliveredCommand creates a command to complete a delivery.
func NewMarkOrderDeliveredCommand(orderID kernel.UUID) (MarkOrderDeliveredCommand, error) {
	if err := orderID.Validate(); err != nil {
		return MarkOrderDeliveredCommand{}, err
	}

	return MarkOrderDeliveredCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderDeliveredCommandIsNotConstructed)
}

// OrderID returns the identifier of the delivered order.
func (c MarkOrderDeliveredCommand) OrderID() kernel.UUID {
	return c.orderID
}
