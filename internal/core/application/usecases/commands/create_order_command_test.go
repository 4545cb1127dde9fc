package commands_test

import (
	"testing"

	"storepanel/internal/core/application/usecases/commands"
	"storepanel/internal/core/domain/model/kernel"
	"storepanel/internal/core/domain/model/order"
	"storepanel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateOrderCommand(t *testing.T) commands.CreateOrderCommand {
	t.Helper()

	price, err := kernel.NewMoney(3500)
	require.NoError(t, err)

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), nil, "Ahmed B.", "Brake Pads", kernel.Product,
		"AutoParts Plus", "Algiers", price, order.FullPayment, nil, "call on arrival",
	)
	require.NoError(t, err)
	return cmd
}

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cmd := validCreateOrderCommand(t)
		assert.NoError(t, cmd.Validate())
		assert.Equal(t, "Ahmed B.", cmd.BuyerName())
		assert.Equal(t, "Brake Pads", cmd.ProductName())
		assert.Equal(t, kernel.Product, cmd.Category())
		assert.Equal(t, order.FullPayment, cmd.PaymentType())
		assert.Nil(t, cmd.CustomerID())
		assert.Equal(t, "call on arrival", cmd.Notes())
	})

	t.Run("buyer name required", func(t *testing.T) {
		price, _ := kernel.NewMoney(3500)
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), nil, "", "Brake Pads", kernel.Product,
			"AutoParts Plus", "Algiers", price, order.FullPayment, nil, "",
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid category rejected", func(t *testing.T) {
		price, _ := kernel.NewMoney(3500)
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), nil, "Ahmed B.", "Brake Pads", kernel.UnknownItemCategory,
			"AutoParts Plus", "Algiers", price, order.FullPayment, nil, "",
		)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
