package order_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, amount float64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func newTestItem(t *testing.T, hubID *kernel.UUID, quantity int, unitPrice, weightKg float64) order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), hubID, nil, quantity, money(t, unitPrice), weightKg)
	require.NoError(t, err)
	return item
}

func newTestSubOrder(t *testing.T) *order.SubOrder {
	t.Helper()
	hubID := kernel.NewUUID()
	items := []order.Item{
		newTestItem(t, &hubID, 2, 5000, 0.5),
		newTestItem(t, &hubID, 1, 12000, 1.2),
	}
	so, err := order.NewSubOrder(
		kernel.NewUUID(), kernel.NewUUID(), &hubID, nil,
		items, money(t, 750), money(t, 1900), "TRK-0001",
	)
	require.NoError(t, err)
	return so
}

func TestNewItem_RejectsNonPositiveDimensions(t *testing.T) {
	hubID := kernel.NewUUID()

	_, err := order.NewItem(kernel.NewUUID(), &hubID, nil, 0, money(t, 5000), 0.5)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = order.NewItem(kernel.NewUUID(), &hubID, nil, 2, money(t, 5000), 0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = order.NewItem(kernel.NewUUID(), &hubID, nil, 2, money(t, 5000), -0.5)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewSubOrder(t *testing.T) {
	t.Run("subtotal equals sum of item subtotals", func(t *testing.T) {
		so := newTestSubOrder(t)
		assert.InDelta(t, 22000, so.Subtotal().Amount(), 0.0001) // 2*5000 + 12000
		assert.Equal(t, order.DeliveryPending, so.Status())
		assert.Equal(t, order.SettlementPending, so.SettlementStatus())
		assert.Nil(t, so.CourierID())
	})

	t.Run("total weight multiplies by quantity", func(t *testing.T) {
		so := newTestSubOrder(t)
		assert.InDelta(t, 2.2, so.TotalWeightKg(), 0.0001) // 2*0.5 + 1*1.2
	})

	t.Run("zero items are rejected", func(t *testing.T) {
		_, err := order.NewSubOrder(
			kernel.NewUUID(), kernel.NewUUID(), nil, nil,
			nil, money(t, 0), money(t, 0), "",
		)
		require.ErrorIs(t, err, order.ErrSubOrderHasNoItems)
	})
}

func TestSubOrder_AssignCourier(t *testing.T) {
	t.Run("assignment from pending", func(t *testing.T) {
		so := newTestSubOrder(t)
		courierID := kernel.NewUUID()

		event, err := so.AssignCourier(courierID, "Fez Delivery", time.Now())
		require.NoError(t, err)

		require.NotNil(t, so.CourierID())
		assert.True(t, so.CourierID().IsEqual(courierID))
		assert.Equal(t, order.DeliveryAssigned, so.Status())
		assert.Equal(t, order.DeliveryAssigned, event.Status())
		assert.Equal(t, order.SourceAutoAssignment, event.Source())
		assert.Contains(t, event.Description(), "Fez Delivery")
	})

	t.Run("re-assignment overwrites the courier", func(t *testing.T) {
		so := newTestSubOrder(t)
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		_, err := so.AssignCourier(first, "First", time.Now())
		require.NoError(t, err)
		_, err = so.AssignCourier(second, "Second", time.Now().Add(time.Second))
		require.NoError(t, err)

		assert.True(t, so.CourierID().IsEqual(second))
	})

	t.Run("assignment of an in-flight shipment is rejected", func(t *testing.T) {
		so := newTestSubOrder(t)
		_, err := so.RecordEvent(order.DeliveryInTransit, "", "", order.SourceOperator, time.Now(), false)
		require.NoError(t, err)

		_, err = so.AssignCourier(kernel.NewUUID(), "Late", time.Now())
		require.Error(t, err)
	})
}

func TestSubOrder_RecordEvent(t *testing.T) {
	t.Run("event updates denormalized status", func(t *testing.T) {
		so := newTestSubOrder(t)

		event, err := so.RecordEvent(order.DeliveryDelivered, "Left at gate", "Warri", order.SourceCourierWebhook, time.Now(), false)
		require.NoError(t, err)

		assert.Equal(t, order.DeliveryDelivered, so.Status())
		assert.Equal(t, event, so.LatestEvent())
		require.NotNil(t, so.DeliveredAt())
	})

	t.Run("accept-any keeps the newest event's status", func(t *testing.T) {
		so := newTestSubOrder(t)
		now := time.Now()

		_, err := so.RecordEvent(order.DeliveryOutForDelivery, "", "", order.SourceCourierWebhook, now, false)
		require.NoError(t, err)

		// a late-arriving in_transit event with an older timestamp is
		// recorded but cannot clobber the newer status
		_, err = so.RecordEvent(order.DeliveryInTransit, "", "", order.SourceCourierWebhook, now.Add(-time.Hour), false)
		require.NoError(t, err)

		assert.Equal(t, order.DeliveryOutForDelivery, so.Status())
		assert.Len(t, so.Events(), 2)
	})

	t.Run("strict mode rejects regressions", func(t *testing.T) {
		so := newTestSubOrder(t)

		_, err := so.RecordEvent(order.DeliveryOutForDelivery, "", "", order.SourceCourierWebhook, time.Now(), true)
		require.NoError(t, err)

		_, err = so.RecordEvent(order.DeliveryInTransit, "", "", order.SourceCourierWebhook, time.Now(), true)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Len(t, so.Events(), 1)
	})

	t.Run("milestone timestamps stamp on first occurrence only", func(t *testing.T) {
		so := newTestSubOrder(t)
		first := time.Now()

		_, err := so.RecordEvent(order.DeliveryInTransit, "", "", order.SourceCourierWebhook, first, false)
		require.NoError(t, err)
		_, err = so.RecordEvent(order.DeliveryInTransit, "", "", order.SourceCourierWebhook, first.Add(time.Hour), false)
		require.NoError(t, err)

		require.NotNil(t, so.InTransitAt())
		assert.True(t, so.InTransitAt().Equal(first))
	})
}

func TestSubOrder_Settlement(t *testing.T) {
	t.Run("eligibility requires payable status and delivered or in transit", func(t *testing.T) {
		so := newTestSubOrder(t)
		assert.False(t, so.IsEligibleForSettlement()) // still pending delivery

		_, err := so.RecordEvent(order.DeliveryInTransit, "", "", order.SourceCourierWebhook, time.Now(), false)
		require.NoError(t, err)
		assert.True(t, so.IsEligibleForSettlement())

		_, err = so.RecordEvent(order.DeliveryDelivered, "", "", order.SourceCourierWebhook, time.Now(), false)
		require.NoError(t, err)
		assert.True(t, so.IsEligibleForSettlement())

		require.NoError(t, so.MarkSettled("PAY-123", time.Now()))
		assert.False(t, so.IsEligibleForSettlement())
	})

	t.Run("MarkSettled stamps payout fields", func(t *testing.T) {
		so := newTestSubOrder(t)
		paidAt := time.Now()

		require.NoError(t, so.MarkSettled("PAY-123", paidAt))

		assert.Equal(t, order.SettlementPaid, so.SettlementStatus())
		assert.Equal(t, "PAY-123", so.PaymentReference())
		require.NotNil(t, so.SettlementDate())
		require.NotNil(t, so.CourierPaidAmount())
		assert.True(t, so.CourierPaidAmount().IsEqual(so.ShippingCost()))
	})

	t.Run("double settlement is rejected", func(t *testing.T) {
		so := newTestSubOrder(t)
		require.NoError(t, so.MarkSettled("PAY-123", time.Now()))
		require.ErrorIs(t, so.MarkSettled("PAY-456", time.Now()), order.ErrSubOrderAlreadySettled)
	})

	t.Run("approve from pending only", func(t *testing.T) {
		so := newTestSubOrder(t)
		require.NoError(t, so.ApproveSettlement())
		require.Error(t, so.ApproveSettlement())
	})
}

func TestRestoreSubOrder(t *testing.T) {
	so := newTestSubOrder(t)
	courierID := kernel.NewUUID()
	_, err := so.AssignCourier(courierID, "Fez", time.Now())
	require.NoError(t, err)

	restored, err := order.RestoreSubOrder(order.RestoreSubOrderParams{
		ID:                   so.ID(),
		OrderID:              so.OrderID(),
		HubID:                so.HubID(),
		CourierID:            so.CourierID(),
		Items:                so.Items(),
		AllocatedShippingFee: so.AllocatedShippingFee(),
		ShippingCost:         so.ShippingCost(),
		TrackingNumber:       so.TrackingNumber(),
		Status:               so.Status(),
		SettlementStatus:     so.SettlementStatus(),
		Events:               so.Events(),
	})
	require.NoError(t, err)

	assert.True(t, restored.ID().IsEqual(so.ID()))
	assert.Equal(t, order.DeliveryAssigned, restored.Status())
	assert.True(t, restored.CourierID().IsEqual(courierID))
	assert.Len(t, restored.Events(), 1)
}
