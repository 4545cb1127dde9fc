package memory

import (
	"context"
	"sort"
	"sync"

	"storepanel/internal/core/domain/model/kernel"
	"storepanel/internal/core/domain/model/notification"
	"storepanel/internal/pkg/errs"
)

// NotificationRepository is an in-memory implementation of
// ports.NotificationRepository.
type NotificationRepository struct {
	mu sync.RWMutex
	m  map[kernel.UUID]*notification.Notification
}

// NewNotificationRepository creates an empty in-memory notification repository.
func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{m: make(map[kernel.UUID]*notification.Notification)}
}

// Add persists a new notification.
func (r *NotificationRepository) Add(_ context.Context, n *notification.Notification) error {
	if err := n.ID.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.m[n.ID]; exists {
		return errs.NewValueIsInvalidError("notificationID")
	}
	r.m[n.ID] = n
	return nil
}

// GetAll retrieves every notification, newest first.
func (r *NotificationRepository) GetAll(_ context.Context) ([]*notification.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	notifications := make([]*notification.Notification, 0, len(r.m))
	for _, n := range r.m {
		notifications = append(notifications, n)
	}

	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].Timestamp.After(notifications[j].Timestamp)
	})
	return notifications, nil
}

// MarkRead marks a single notification as read.
func (r *NotificationRepository) MarkRead(_ context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.m[id]
	if !ok {
		return errs.NewObjectNotFoundError("notification", id.String())
	}
	n.Read = true
	return nil
}

// MarkAllRead marks every notification as read.
func (r *NotificationRepository) MarkAllRead(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, n := range r.m {
		n.Read = true
	}
	return nil
}
