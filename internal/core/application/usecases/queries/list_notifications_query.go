package queries

import (
	"errors"

	"storepanel/internal/core/domain/model/notification"
	"storepanel/internal/pkg/guard"
)

var ErrListNotificationsQueryIsNotConstructed = errors.New(
	"ListNotificationsQuery must be created via NewListNotificationsQuery constructor",
)

// ListNotificationsQuery retrieves the bell-menu feed, newest first.
type ListNotificationsQuery struct {
	guard guard.ConstructorGuard
}

// NewListNotificationsQuery creates a notification feed query.
func NewListNotificationsQuery() ListNotificationsQuery {
	return ListNotificationsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrListNotificationsQueryIsNotConstructed)
}

// NotificationFeedResponse is the feed plus its unread badge count.
type NotificationFeedResponse struct {
	Notifications []notification.Notification
	UnreadCount   int
}
