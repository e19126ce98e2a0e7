package services_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/rate"
	"fulfillment/internal/core/domain/model/zone"
	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeZone(t *testing.T) *zone.Zone {
	t.Helper()
	z, err := zone.NewZone(kernel.NewUUID(), "South-South", "SS",
		[]string{"Delta", "Rivers", "Bayelsa"}, 3)
	require.NoError(t, err)
	return z
}

func makeRate(t *testing.T, zoneID kernel.UUID, flat, perKg float64, threshold *float64) *rate.ShippingRate {
	t.Helper()
	var thresholdMoney *kernel.Money
	if threshold != nil {
		m := mustMoney(t, *threshold)
		thresholdMoney = &m
	}
	r, err := rate.NewShippingRate(
		kernel.NewUUID(), zoneID, nil, nil,
		mustMoney(t, flat), mustMoney(t, perKg),
		nil, nil, thresholdMoney, true, 0,
	)
	require.NoError(t, err)
	return r
}

func fixedLookup(r *rate.ShippingRate) services.RateLookup {
	return func(*kernel.UUID) (*rate.ShippingRate, error) {
		return r, nil
	}
}

func TestShippingCalculator_Quote(t *testing.T) {
	calculator := services.NewShippingCalculator()
	z := makeZone(t)

	t.Run("should price a group as flat plus per-kg times weight", func(t *testing.T) {
		hubID := kernel.NewUUID()
		threshold := 50000.0
		r := makeRate(t, z.ID(), 1500, 200, &threshold)
		items := []order.Item{makeItem(t, &hubID, nil, 2, 15000, 1)}

		quote, err := calculator.Quote(z, items, mustMoney(t, 30000), fixedLookup(r))

		require.NoError(t, err)
		assert.InDelta(t, 1900, quote.Total.Amount(), 0.001)
		require.Len(t, quote.Breakdown, 1)
		assert.InDelta(t, 1900, quote.Breakdown[0].ShippingCost.Amount(), 0.001)
		assert.Equal(t, 1, quote.Breakdown[0].ItemCount)
		assert.InDelta(t, 2, quote.Breakdown[0].TotalWeightKg, 0.001)
	})

	t.Run("should waive the group cost at the free-shipping threshold", func(t *testing.T) {
		hubID := kernel.NewUUID()
		threshold := 50000.0
		r := makeRate(t, z.ID(), 1500, 200, &threshold)
		items := []order.Item{makeItem(t, &hubID, nil, 2, 30000, 1)}

		quote, err := calculator.Quote(z, items, mustMoney(t, 60000), fixedLookup(r))

		require.NoError(t, err)
		assert.True(t, quote.Total.IsZero())
		assert.True(t, quote.Breakdown[0].ShippingCost.IsZero())
	})

	t.Run("should compare threshold against order value not group subtotal", func(t *testing.T) {
		hubA := kernel.NewUUID()
		hubB := kernel.NewUUID()
		threshold := 50000.0
		r := makeRate(t, z.ID(), 1000, 0, &threshold)
		items := []order.Item{
			makeItem(t, &hubA, nil, 1, 10000, 1),
			makeItem(t, &hubB, nil, 1, 45000, 1),
		}

		quote, err := calculator.Quote(z, items, mustMoney(t, 55000), fixedLookup(r))

		require.NoError(t, err)
		assert.True(t, quote.Total.IsZero(), "threshold reached by the whole order waives every group")
	})

	t.Run("should produce one breakdown line per hub group", func(t *testing.T) {
		hubA := kernel.NewUUID()
		hubB := kernel.NewUUID()
		r := makeRate(t, z.ID(), 1000, 100, nil)
		items := []order.Item{
			makeItem(t, &hubA, nil, 1, 5000, 1),
			makeItem(t, &hubB, nil, 1, 5000, 2),
			makeItem(t, &hubA, nil, 1, 5000, 1),
			makeItem(t, nil, nil, 1, 5000, 0.5),
		}

		quote, err := calculator.Quote(z, items, mustMoney(t, 20000), fixedLookup(r))

		require.NoError(t, err)
		require.Len(t, quote.Breakdown, 3)

		assert.True(t, quote.Breakdown[0].HubID.IsEqual(hubA))
		assert.Equal(t, 2, quote.Breakdown[0].ItemCount)
		assert.InDelta(t, 1200, quote.Breakdown[0].ShippingCost.Amount(), 0.001)

		assert.True(t, quote.Breakdown[1].HubID.IsEqual(hubB))
		assert.InDelta(t, 1200, quote.Breakdown[1].ShippingCost.Amount(), 0.001)

		assert.Nil(t, quote.Breakdown[2].HubID, "hubless items form the default group")
		assert.InDelta(t, 1050, quote.Breakdown[2].ShippingCost.Amount(), 0.001)

		assert.InDelta(t, 3450, quote.Total.Amount(), 0.001)
	})

	t.Run("should carry the zone estimate onto the quote", func(t *testing.T) {
		hubID := kernel.NewUUID()
		r := makeRate(t, z.ID(), 1000, 0, nil)
		items := []order.Item{makeItem(t, &hubID, nil, 1, 5000, 1)}

		quote, err := calculator.Quote(z, items, mustMoney(t, 5000), fixedLookup(r))

		require.NoError(t, err)
		assert.True(t, quote.ZoneID.IsEqual(z.ID()))
		assert.Equal(t, "South-South", quote.ZoneName)
		assert.Equal(t, 3, quote.EstimatedDeliveryDays)
	})

	t.Run("should fail the whole quote when one group has no rate", func(t *testing.T) {
		hubID := kernel.NewUUID()
		items := []order.Item{makeItem(t, &hubID, nil, 1, 5000, 1)}
		lookup := func(*kernel.UUID) (*rate.ShippingRate, error) {
			return nil, services.ErrRateNotFound
		}

		quote, err := calculator.Quote(z, items, mustMoney(t, 5000), lookup)

		require.ErrorIs(t, err, services.ErrRateNotFound)
		assert.Nil(t, quote)
	})

	t.Run("should reject empty item list", func(t *testing.T) {
		r := makeRate(t, z.ID(), 1000, 0, nil)

		quote, err := calculator.Quote(z, nil, mustMoney(t, 5000), fixedLookup(r))

		require.ErrorIs(t, err, order.ErrSubOrderHasNoItems)
		assert.Nil(t, quote)
	})
}
