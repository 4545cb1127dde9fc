package commands

import (
	"errors"

	"storepanel/internal/core/domain/model/store"
	"storepanel/internal/pkg/guard"
)

var ErrUpdateStoreProfileCommandIsNotConstructed = errors.New(
	"UpdateStoreProfileCommand must be created via NewUpdateStoreProfileCommand constructor",
)

// UpdateStoreProfileCommand represents a partial update of the store
// profile. Fields left nil in the patch keep their current value.
type UpdateStoreProfileCommand struct { //nolint:recvcheck //using for validation
	patch store.ProfilePatch

	guard guard.ConstructorGuard
}

// NewUpdateStoreProfileCommand creates a command to update the store profile.
// Patch field validation happens when the patch is applied to the profile.
func NewUpdateStoreProfileCommand(patch store.ProfilePatch) (UpdateStoreProfileCommand, error) {
	return UpdateStoreProfileCommand{
		patch: patch,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateStoreProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStoreProfileCommandIsNotConstructed)
}

// Patch returns the partial update to apply.
func (c UpdateStoreProfileCommand) Patch() store.ProfilePatch {
	return c.patch
}
