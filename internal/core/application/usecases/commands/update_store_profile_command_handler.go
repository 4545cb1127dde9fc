package commands

import (
	"context"
)

// UpdateStoreProfileCommandHandler merges a patch into the store profile.
type UpdateStoreProfileCommandHandler struct {
	uowFactory ProfileUoWFactory
}

// NewUpdateStoreProfileCommandHandler creates a handler for profile updates.
func NewUpdateStoreProfileCommandHandler(uowFactory ProfileUoWFactory) UpdateStoreProfileCommandHandler {
	return UpdateStoreProfileCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the profile update command.
func (h *UpdateStoreProfileCommandHandler) Handle(ctx context.Context, cmd UpdateStoreProfileCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	profileRepo := uow.StoreProfileRepository()
	profile, err := profileRepo.Get(ctx)
	if err != nil {
		return err
	}

	if err = profile.Apply(cmd.Patch()); err != nil {
		return err
	}

	if err = profileRepo.Save(ctx, profile); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
