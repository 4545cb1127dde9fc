package ports

import (
	"context"

	"storepanel/internal/core/domain/model/kernel"
	"storepanel/internal/core/domain/model/notification"
)

// NotificationSink publishes notifications to an external broker so that
// other store panel instances and mobile clients can pick them up.
type NotificationSink interface {
	// Publish sends a notification to the broker.
	Publish(ctx context.Context, n *notification.Notification) error

	// Close releases the underlying broker connection.
	Close() error
}

// NotificationRepository defines the persistence contract for the
// notification feed shown in the panel.
type NotificationRepository interface {
	// Add persists a new notification.
	Add(ctx context.Context, n *notification.Notification) error

	// GetAll retrieves every notification, newest first.
	GetAll(ctx context.Context) ([]*notification.Notification, error)

	// MarkRead marks a single notification as read.
	MarkRead(ctx context.Context, id kernel.UUID) error

	// MarkAllRead marks every notification as read.
	MarkAllRead(ctx context.Context) error
}
