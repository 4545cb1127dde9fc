package commands

import (
	"errors"

	"storepanel/internal/pkg/guard"
)

var ErrRemindInstallmentsCommandIsNotConstructed = errors.New(
	"RemindInstallmentsCommand must be created via NewRemindInstallmentsCommand constructor",
)

// RemindInstallmentsCommand raises reminders for installment-plan orders
// whose next payment is due soon.
type RemindInstallmentsCommand struct {
	guard guard.ConstructorGuard
}

// NewRemindInstallmentsCommand creates an installment reminder command.
func NewRemindInstallmentsCommand() RemindInstallmentsCommand {
	return RemindInstallmentsCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c RemindInstallmentsCommand) Validate() error {
	return c.guard.Validate(ErrRemindInstallmentsCommandIsNotConstructed)
}
