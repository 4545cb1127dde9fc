package commands

import (
	"errors"

	"storepanel/internal/pkg/guard"
)

var ErrMarkAllNotificationsReadCommandIsNotConstructed = errors.New(
	"MarkAllNotificationsReadCommand must be created via NewMarkAllNotificationsReadCommand constructor",
)

// MarkAllNotificationsReadCommand clears the unread flag across the whole
// notification feed.
type MarkAllNotificationsReadCommand struct {
	guard guard.ConstructorGuard
}

// NewMarkAllNotificationsReadCommand creates a command to mark every
// notification read.
func NewMarkAllNotificationsReadCommand() (MarkAllNotificationsReadCommand, error) {
	return MarkAllNotificationsReadCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkAllNotificationsReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkAllNotificationsReadCommandIsNotConstructed)
}
