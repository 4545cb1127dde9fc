package commands

import (
	"context"
	"time"
)

// MarkOrderDeliveredCommandHandler completes an In-process order through
// the courier delivery path, recording the completion time.
type MarkOrderDeliveredCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkOrderDeliveredCommandHandler creates a handler for delivery completion.
func NewMarkOrderDeliveredCommandHandler(uowFactory OrderUoWFactory) MarkOrderDeliveredCommandHandler {
	return MarkOrderDeliveredCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery completion command.
func (h *MarkOrderDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkOrderDeliveredCommand) error {
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

	if err = aggregate.MarkDelivered(time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
