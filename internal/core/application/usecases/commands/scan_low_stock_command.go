package commands

import (
	"errors"

	"storepanel/internal/pkg/guard"
)

var ErrScanLowStockCommandIsNotConstructed = errors.New(
	"ScanLowStockCommand must be created via NewScanLowStockCommand constructor",
)

// ScanLowStockCommand sweeps the catalog for products that fell below the
// stock threshold and raises low-stock notifications for them.
type ScanLowStockCommand struct {
	guard guard.ConstructorGuard
}

// NewScanLowStockCommand creates a low stock scan command.
func NewScanLowStockCommand() ScanLowStockCommand {
	return ScanLowStockCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c ScanLowStockCommand) Validate() error {
	return c.guard.Validate(ErrScanLowStockCommandIsNotConstructed)
}
