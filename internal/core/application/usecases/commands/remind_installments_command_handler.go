package commands

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"storepanel/internal/core/domain/model/kernel"
	"storepanel/internal/core/domain/model/notification"
	"storepanel/internal/core/domain/model/order"
	"storepanel/internal/core/ports"
)

// installmentReminderWindow is how far ahead of the due date a reminder
// is raised.
const installmentReminderWindow = 3 * 24 * time.Hour

// RemindInstallmentsCommandHandler raises one reminder per order per due
// date for installment plans whose next payment falls inside the window.
type RemindInstallmentsCommandHandler struct {
	uowFactory OrderNotificationUoWFactory
	sink       ports.NotificationSink
	logger     *slog.Logger

	mu       *sync.Mutex
	reminded map[kernel.UUID]time.Time
}

// NewRemindInstallmentsCommandHandler creates a handler for installment
// reminders. sink may be nil when no broker is configured.
func NewRemindInstallmentsCommandHandler(
	uowFactory OrderNotificationUoWFactory,
	sink ports.NotificationSink,
	logger *slog.Logger,
) RemindInstallmentsCommandHandler {
	return RemindInstallmentsCommandHandler{
		uowFactory: uowFactory,
		sink:       sink,
		logger:     logger,
		mu:         &sync.Mutex{},
		reminded:   make(map[kernel.UUID]time.Time),
	}
}

// Handle processes one reminder pass.
func (h *RemindInstallmentsCommandHandler) Handle(ctx context.Context, cmd RemindInstallmentsCommand) error {
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

	orders, err := uow.OrderRepository().GetAllWithInstallments(ctx)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	due := h.dueForReminder(orders, now)
	if len(due) == 0 {
		return uow.Commit(ctx)
	}

	published := make([]notification.Notification, 0, len(due))
	for _, o := range due {
		orderID := o.ID()
		details := o.Installment()

		n, err := notification.New(
			fmt.Sprintf("Installment reminder: %s of %s for %s is due on %s.",
				ordinal(details.InstallmentsPaid()+1), details.Plan(),
				o.ProductName(), details.NextDueDate().Format("2006-01-02")),
			notification.GeneralUpdate, &orderID, now)
		if err != nil {
			return err
		}
		if err := uow.NotificationRepository().Add(ctx, &n); err != nil {
			return err
		}
		published = append(published, n)
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	if h.sink != nil {
		for i := range published {
			if err := h.sink.Publish(ctx, &published[i]); err != nil {
				h.logger.WarnContext(ctx, "installment reminder publish failed",
					"notificationID", published[i].ID, "error", err)
			}
		}
	}
	return nil
}

// dueForReminder selects orders whose next due date is within the window
// and not yet reminded for that date.
func (h *RemindInstallmentsCommandHandler) dueForReminder(orders []*order.Order, now time.Time) []*order.Order {
	h.mu.Lock()
	defer h.mu.Unlock()

	due := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		details := o.Installment()
		if details == nil || details.NextDueDate() == nil {
			continue
		}
		dueDate := *details.NextDueDate()
		if dueDate.Before(now) || dueDate.Sub(now) > installmentReminderWindow {
			continue
		}
		if last, ok := h.reminded[o.ID()]; ok && last.Equal(dueDate) {
			continue
		}
		h.reminded[o.ID()] = dueDate
		due = append(due, o)
	}
	return due
}

func ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s installment", n, suffix)
}
