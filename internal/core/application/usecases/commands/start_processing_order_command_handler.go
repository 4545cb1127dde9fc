package commands

import (
	"context"
)

// StartProcessingOrderCommandHandler moves an order to In-process.
// Confirmation is optional, so both Pending and Confirmed orders qualify.
type StartProcessingOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewStartProcessingOrderCommandHandler creates a handler for starting
// order preparation.
func NewStartProcessingOrderCommandHandler(uowFactory OrderUoWFactory) StartProcessingOrderCommandHandler {
	return StartProcessingOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start-processing command.
func (h *StartProcessingOrderCommandHandler) Handle(ctx context.Context, cmd StartProcessingOrderCommand) error {
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

	if err = aggregate.StartProcessing(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
