package commands

import (
	"context"
	"time"
)

// VerifyPickupCommandHandler handles the core pickup verification operation.
// Loads the order inside a transaction, lets the aggregate decide the
// outcome, and persists exactly one status write on success. Mismatches and
// already-finalized orders produce no write at all.
//
// Re-checking the status inside the transaction makes concurrent
// verification attempts safe: the second attempt observes the terminal
// status and fails without touching the order.
type VerifyPickupCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewVerifyPickupCommandHandler creates a handler for pickup verification.
func NewVerifyPickupCommandHandler(uowFactory OrderUoWFactory) VerifyPickupCommandHandler {
	return VerifyPickupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes a verification attempt.
// Returns order.ErrVerificationCodeMismatch on a wrong code,
// order.ErrOrderAlreadyFinalized when the order is terminal, and
// errs.ObjectNotFoundError when the order does not exist.
func (h *VerifyPickupCommandHandler) Handle(ctx context.Context, cmd VerifyPickupCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.VerifyPickup(cmd.SubmittedCode(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
