package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSplitOrderCommand(t *testing.T) {
	hubID := kernel.NewUUID()

	t.Run("should create valid command", func(t *testing.T) {
		items := []order.Item{makeItem(t, &hubID, 2, 15000, 1)}

		cmd, err := commands.NewSplitOrderCommand(
			kernel.NewUUID(),
			"Ada Obi", "ada@example.com", "0801",
			"12 Airport Rd", "Warri", "Delta",
			items, mustMoney(t, 1900), order.PaymentPaid,
		)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "Ada Obi", cmd.CustomerName())
		assert.Equal(t, "Delta", cmd.DeliveryState())
		assert.Len(t, cmd.Items(), 1)
		assert.InDelta(t, 30000, cmd.Subtotal().Amount(), 0.001)
	})

	t.Run("should reject empty customer name", func(t *testing.T) {
		items := []order.Item{makeItem(t, &hubID, 1, 5000, 1)}

		_, err := commands.NewSplitOrderCommand(
			kernel.NewUUID(), "", "", "", "", "", "Delta",
			items, mustMoney(t, 1000), order.PaymentPaid,
		)

		require.ErrorIs(t, err, commands.ErrCustomerNameIsRequired)
	})

	t.Run("should reject empty delivery state", func(t *testing.T) {
		items := []order.Item{makeItem(t, &hubID, 1, 5000, 1)}

		_, err := commands.NewSplitOrderCommand(
			kernel.NewUUID(), "Ada Obi", "", "", "", "", "",
			items, mustMoney(t, 1000), order.PaymentPaid,
		)

		require.ErrorIs(t, err, commands.ErrDeliveryStateIsRequired)
	})

	t.Run("should reject empty item list", func(t *testing.T) {
		_, err := commands.NewSplitOrderCommand(
			kernel.NewUUID(), "Ada Obi", "", "", "", "", "Delta",
			nil, mustMoney(t, 1000), order.PaymentPaid,
		)

		require.ErrorIs(t, err, commands.ErrItemsAreRequired)
	})

	t.Run("should reject invalid payment status", func(t *testing.T) {
		items := []order.Item{makeItem(t, &hubID, 1, 5000, 1)}

		_, err := commands.NewSplitOrderCommand(
			kernel.NewUUID(), "Ada Obi", "", "", "", "", "Delta",
			items, mustMoney(t, 1000), order.PaymentStatus("settled"),
		)

		require.Error(t, err)
	})

	t.Run("should reject zero-value command", func(t *testing.T) {
		cmd := commands.SplitOrderCommand{}

		require.ErrorIs(t, cmd.Validate(), commands.ErrSplitOrderCommandIsNotConstructed)
	})
}
