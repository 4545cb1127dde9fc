package queries

import (
	"context"

	"storepanel/internal/core/domain/model/notification"
	"storepanel/internal/core/ports"
)

// ListNotificationsQueryHandler serves the bell-menu feed.
type ListNotificationsQueryHandler struct {
	notifications ports.NotificationRepository
}

// NewListNotificationsQueryHandler creates a handler for the feed query.
func NewListNotificationsQueryHandler(
	notifications ports.NotificationRepository,
) ListNotificationsQueryHandler {
	return ListNotificationsQueryHandler{notifications: notifications}
}

// Handle executes the query and counts unread entries for the badge.
func (h ListNotificationsQueryHandler) Handle(
	ctx context.Context, query ListNotificationsQuery,
) (NotificationFeedResponse, error) {
	if err := query.Validate(); err != nil {
		return NotificationFeedResponse{}, err
	}

	feed, err := h.notifications.GetAll(ctx)
	if err != nil {
		return NotificationFeedResponse{}, err
	}

	response := NotificationFeedResponse{
		Notifications: make([]notification.Notification, 0, len(feed)),
	}
	for _, n := range feed {
		response.Notifications = append(response.Notifications, *n)
		if !n.Read {
			response.UnreadCount++
		}
	}
	return response, nil
}
