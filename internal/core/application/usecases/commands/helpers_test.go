package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, amount float64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func makeItem(t *testing.T, hubID *kernel.UUID, quantity int, unitPrice, weightKg float64) order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), hubID, nil, quantity, mustMoney(t, unitPrice), weightKg)
	require.NoError(t, err)
	return item
}

func makeSubOrder(t *testing.T, hubID *kernel.UUID) *order.SubOrder {
	t.Helper()
	id := kernel.NewUUID()
	items := []order.Item{makeItem(t, hubID, 1, 5000, 1)}
	subOrder, err := order.NewSubOrder(
		id, kernel.NewUUID(), hubID, nil, items,
		mustMoney(t, 500), mustMoney(t, 1200), "TRK-TEST0000001")
	require.NoError(t, err)

	_, err = subOrder.RecordEvent(order.DeliveryPending,
		"Order received and awaiting processing", "Processing Center",
		order.SourceSystem, time.Now().Add(-time.Hour), false)
	require.NoError(t, err)

	return subOrder
}
