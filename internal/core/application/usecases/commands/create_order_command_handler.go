package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"storepanel/internal/core/domain/model/kernel"
	"storepanel/internal/core/domain/model/notification"
	"storepanel/internal/core/domain/model/order"
	"storepanel/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order intake.
// Creates the order in Pending status with a freshly generated six digit
// verification code, records a new-order notification in the same
// transaction, and publishes the notification to the broker afterwards.
//
// Broker publishing is best effort: a publish failure is logged and does
// not undo the already committed order.
type CreateOrderCommandHandler struct {
	uowFactory OrderNotificationUoWFactory
	sink       ports.NotificationSink
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order intake.
// sink may be nil when no broker is configured.
func NewCreateOrderCommandHandler(
	uowFactory OrderNotificationUoWFactory,
	sink ports.NotificationSink,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		sink:       sink,
		logger:     logger,
	}
}

// Handle processes the order creation command.
// Generates the verification code here so that it exists for the order's
// whole lifetime and never changes afterwards.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	code := kernel.GenerateVerificationCode()

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.BuyerName(),
		cmd.ProductName(),
		cmd.Category(),
		cmd.StoreName(),
		cmd.Location(),
		cmd.Price(),
		cmd.PaymentType(),
		cmd.Installment(),
		code,
		cmd.Notes(),
		now,
	)
	if err != nil {
		return err
	}

	orderID := newOrder.ID()
	message := fmt.Sprintf("New order: %s for %s", newOrder.ProductName(), newOrder.BuyerName())
	notif, err := notification.New(message, notification.NewOrder, &orderID, now)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.NotificationRepository().Add(ctx, &notif); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if h.sink != nil {
		if err = h.sink.Publish(ctx, &notif); err != nil {
			h.logger.WarnContext(ctx, "failed to publish new-order notification",
				"order_id", orderID.String(), "error", err)
		}
	}

	return nil
}
