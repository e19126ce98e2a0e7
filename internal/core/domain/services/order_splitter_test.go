package services_test

import (
	"strings"
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, amount float64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func makeOrder(t *testing.T, shippingFee float64) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		"Ada Obi", "ada@example.com", "",
		"12 Airport Rd", "Warri", "Delta",
		kernel.NewUUID(),
		mustMoney(t, 30000), mustMoney(t, shippingFee), mustMoney(t, 30000+shippingFee),
		order.PaymentPaid,
	)
	require.NoError(t, err)
	return o
}

func makeItem(t *testing.T, hubID, vendorID *kernel.UUID, quantity int, unitPrice, weightKg float64) order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), hubID, vendorID, quantity, mustMoney(t, unitPrice), weightKg)
	require.NoError(t, err)
	return item
}

func TestOrderSplitter_Split(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	splitter := services.NewOrderSplitter()

	hubA := kernel.NewUUID()
	hubB := kernel.NewUUID()
	vendorX := kernel.NewUUID()

	t.Run("should create one sub-order per hub and vendor group in first-seen order", func(t *testing.T) {
		o := makeOrder(t, 3000)
		items := []order.Item{
			makeItem(t, &hubA, nil, 1, 5000, 1),
			makeItem(t, &hubB, nil, 2, 2000, 0.5),
			makeItem(t, &hubA, &vendorX, 1, 8000, 2),
			makeItem(t, &hubA, nil, 3, 1000, 0.2),
		}

		subOrders, err := splitter.Split(o, items, nil, now)

		require.NoError(t, err)
		require.Len(t, subOrders, 3)

		assert.True(t, subOrders[0].HubID().IsEqual(hubA))
		assert.Nil(t, subOrders[0].VendorID())
		assert.Len(t, subOrders[0].Items(), 2, "both hubA no-vendor items join the first group")

		assert.True(t, subOrders[1].HubID().IsEqual(hubB))
		assert.True(t, subOrders[2].HubID().IsEqual(hubA))
		require.NotNil(t, subOrders[2].VendorID())
		assert.True(t, subOrders[2].VendorID().IsEqual(vendorX))

		for _, so := range subOrders {
			assert.True(t, so.OrderID().IsEqual(o.ID()))
			assert.Equal(t, order.DeliveryPending, so.Status())
		}
	})

	t.Run("should allocate shipping fee evenly with last share absorbing remainder", func(t *testing.T) {
		o := makeOrder(t, 1000)
		items := []order.Item{
			makeItem(t, &hubA, nil, 1, 5000, 1),
			makeItem(t, &hubB, nil, 1, 2000, 1),
			makeItem(t, nil, nil, 1, 1000, 1),
		}

		subOrders, err := splitter.Split(o, items, nil, now)

		require.NoError(t, err)
		require.Len(t, subOrders, 3)

		assert.InDelta(t, 333.33, subOrders[0].AllocatedShippingFee().Amount(), 0.001)
		assert.InDelta(t, 333.33, subOrders[1].AllocatedShippingFee().Amount(), 0.001)
		assert.InDelta(t, 333.34, subOrders[2].AllocatedShippingFee().Amount(), 0.001)

		total := kernel.ZeroMoney()
		for _, so := range subOrders {
			total = total.Add(so.AllocatedShippingFee())
		}
		assert.True(t, total.IsEqual(o.ShippingFeePaid()),
			"allocations must sum back to the fee paid")
	})

	t.Run("should derive subtotal from the group's items", func(t *testing.T) {
		o := makeOrder(t, 1500)
		items := []order.Item{
			makeItem(t, &hubA, nil, 2, 5000, 1),
			makeItem(t, &hubA, nil, 1, 3000, 1),
		}

		subOrders, err := splitter.Split(o, items, nil, now)

		require.NoError(t, err)
		require.Len(t, subOrders, 1)
		assert.InDelta(t, 13000, subOrders[0].Subtotal().Amount(), 0.001)
	})

	t.Run("should carry the per-hub shipping cost from the breakdown", func(t *testing.T) {
		o := makeOrder(t, 2000)
		items := []order.Item{
			makeItem(t, &hubA, nil, 1, 5000, 2),
			makeItem(t, nil, nil, 1, 2000, 1),
		}
		costs := map[string]kernel.Money{
			hubA.String():          mustMoney(t, 1900),
			services.DefaultHubKey: mustMoney(t, 1200),
		}

		subOrders, err := splitter.Split(o, items, costs, now)

		require.NoError(t, err)
		require.Len(t, subOrders, 2)
		assert.InDelta(t, 1900, subOrders[0].ShippingCost().Amount(), 0.001)
		assert.InDelta(t, 1200, subOrders[1].ShippingCost().Amount(), 0.001)
	})

	t.Run("should record the initial receipt event on every sub-order", func(t *testing.T) {
		o := makeOrder(t, 1000)
		items := []order.Item{makeItem(t, &hubA, nil, 1, 5000, 1)}

		subOrders, err := splitter.Split(o, items, nil, now)

		require.NoError(t, err)
		require.Len(t, subOrders, 1)

		events := subOrders[0].Events()
		require.Len(t, events, 1)
		assert.Equal(t, order.DeliveryPending, events[0].Status())
		assert.Equal(t, "Order received and awaiting processing", events[0].Description())
		assert.Equal(t, "Processing Center", events[0].Location())
		assert.Equal(t, order.SourceSystem, events[0].Source())
		assert.Equal(t, now, events[0].OccurredAt())
	})

	t.Run("should generate tracking numbers with TRK prefix", func(t *testing.T) {
		o := makeOrder(t, 1000)
		items := []order.Item{makeItem(t, &hubA, nil, 1, 5000, 1)}

		subOrders, err := splitter.Split(o, items, nil, now)

		require.NoError(t, err)
		tn := subOrders[0].TrackingNumber()
		assert.True(t, strings.HasPrefix(tn, "TRK-"), "got %q", tn)
		assert.Len(t, tn, len("TRK-")+12)
	})

	t.Run("should reject empty item list", func(t *testing.T) {
		o := makeOrder(t, 1000)

		subOrders, err := splitter.Split(o, nil, nil, now)

		require.ErrorIs(t, err, order.ErrSubOrderHasNoItems)
		assert.Nil(t, subOrders)
	})

	t.Run("should reject unconstructed order", func(t *testing.T) {
		items := []order.Item{makeItem(t, &hubA, nil, 1, 5000, 1)}

		subOrders, err := splitter.Split(&order.Order{}, items, nil, now)

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
		assert.Nil(t, subOrders)
	})
}
