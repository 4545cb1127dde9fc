package commands

import (
	"errors"

	"storepanel/internal/core/domain/model/kernel"
	"storepanel/internal/pkg/guard"
)

var ErrRemoveStoreItemCommandIsNotConstructed = errors.New(
	"RemoveStoreItemCommand must be created via NewRemoveStoreItemCommand constructor",
)

// RemoveStoreItemCommand represents a request to delist a catalog item.
type RemoveStoreItemCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveStoreItemCommand creates a command to remove a catalog item.
func NewRemoveStoreItemCommand(itemID kernel.UUID) (RemoveStoreItemCommand, error) {
	if err := itemID.Validate(); err != nil {
		return RemoveStoreItemCommand{}, err
	}

	return RemoveStoreItemCommand{
		itemID: itemID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveStoreItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveStoreItemCommandIsNotConstructed)
}

// ItemID returns the identifier of the item to remove.
func (c RemoveStoreItemCommand) ItemID() kernel.UUID {
	return c.itemID
}
