package commands

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"storepanel/internal/core/domain/model/catalog"
	"storepanel/internal/core/domain/model/kernel"
	"storepanel/internal/core/domain/model/notification"
	"storepanel/internal/core/ports"
)

// ScanLowStockCommandHandler raises a low-stock notification the first
// time a product is seen below the threshold. The alert resets once the
// product is restocked above it, so the next dip alerts again.
type ScanLowStockCommandHandler struct {
	uowFactory CatalogNotificationUoWFactory
	sink       ports.NotificationSink
	logger     *slog.Logger

	mu      *sync.Mutex
	alerted map[kernel.UUID]bool
}

// NewScanLowStockCommandHandler creates a handler for the low stock scan.
// sink may be nil when no broker is configured.
func NewScanLowStockCommandHandler(
	uowFactory CatalogNotificationUoWFactory,
	sink ports.NotificationSink,
	logger *slog.Logger,
) ScanLowStockCommandHandler {
	return ScanLowStockCommandHandler{
		uowFactory: uowFactory,
		sink:       sink,
		logger:     logger,
		mu:         &sync.Mutex{},
		alerted:    make(map[kernel.UUID]bool),
	}
}

// Handle processes one scan pass.
func (h *ScanLowStockCommandHandler) Handle(ctx context.Context, cmd ScanLowStockCommand) error {
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

	lowStock, err := uow.CatalogRepository().GetAllLowStock(ctx)
	if err != nil {
		return err
	}

	fresh := h.freshAlerts(lowStock)
	if len(fresh) == 0 {
		return uow.Commit(ctx)
	}

	now := time.Now().UTC()
	published := make([]notification.Notification, 0, len(fresh))
	for _, item := range fresh {
		itemID := item.ID()
		stock := 0
		if item.AvailableStock() != nil {
			stock = *item.AvailableStock()
		}

		n, err := notification.New(
			fmt.Sprintf("Low stock alert: %s has only %d units left.", item.Title(), stock),
			notification.LowStock, &itemID, now)
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
				h.logger.WarnContext(ctx, "low stock notification publish failed",
					"notificationID", published[i].ID, "error", err)
			}
		}
	}
	return nil
}

// freshAlerts returns the low-stock items not alerted yet and refreshes
// the alert state so recovered items can alert again later.
func (h *ScanLowStockCommandHandler) freshAlerts(lowStock []*catalog.Item) []*catalog.Item {
	h.mu.Lock()
	defer h.mu.Unlock()

	current := make(map[kernel.UUID]bool, len(lowStock))
	fresh := make([]*catalog.Item, 0, len(lowStock))
	for _, item := range lowStock {
		current[item.ID()] = true
		if !h.alerted[item.ID()] {
			fresh = append(fresh, item)
		}
	}
	h.alerted = current
	return fresh
}
