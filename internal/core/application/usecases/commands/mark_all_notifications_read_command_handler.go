package commands

import (
	"context"
)

// MarkAllNotificationsReadCommandHandler marks the whole feed as read.
type MarkAllNotificationsReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewMarkAllNotificationsReadCommandHandler creates a handler for marking
// every notification read.
func NewMarkAllNotificationsReadCommandHandler(
	uowFactory NotificationUoWFactory,
) MarkAllNotificationsReadCommandHandler {
	return MarkAllNotificationsReadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the mark-all-read command.
func (h *MarkAllNotificationsReadCommandHandler) Handle(
	ctx context.Context, cmd MarkAllNotificationsReadCommand,
) error {
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

	if err := uow.NotificationRepository().MarkAllRead(ctx); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
