package rate_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/rate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, amount float64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func newRate(t *testing.T, flat, perKg float64, threshold *float64) *rate.ShippingRate {
	t.Helper()

	var thresholdMoney *kernel.Money
	if threshold != nil {
		m := money(t, *threshold)
		thresholdMoney = &m
	}

	hubID := kernel.NewUUID()
	r, err := rate.NewShippingRate(
		kernel.NewUUID(), kernel.NewUUID(), &hubID, nil,
		money(t, flat), money(t, perKg),
		nil, nil, thresholdMoney, true, 10,
	)
	require.NoError(t, err)
	return r
}

func TestNewShippingRate_InvalidInput(t *testing.T) {
	zoneID := kernel.NewUUID()

	_, err := rate.NewShippingRate(
		kernel.UUID{}, zoneID, nil, nil,
		money(t, 100), kernel.ZeroMoney(), nil, nil, nil, true, 1,
	)
	require.Error(t, err)

	min, max := 10.0, 5.0
	_, err = rate.NewShippingRate(
		kernel.NewUUID(), zoneID, nil, nil,
		money(t, 100), kernel.ZeroMoney(), &min, &max, nil, true, 1,
	)
	require.Error(t, err)
}

func TestShippingRate_CostFor(t *testing.T) {
	t.Run("flat plus per-kg pricing", func(t *testing.T) {
		threshold := 50000.0
		r := newRate(t, 1500, 200, &threshold)

		// 1500 + 200*2 = 1900 for a 30,000 order below the threshold
		cost := r.CostFor(2, money(t, 30000))
		assert.InDelta(t, 1900, cost.Amount(), 0.0001)
	})

	t.Run("threshold reached waives the full cost", func(t *testing.T) {
		threshold := 50000.0
		r := newRate(t, 1500, 200, &threshold)

		cost := r.CostFor(2, money(t, 60000))
		assert.True(t, cost.IsZero())

		// exactly at the threshold also waives
		cost = r.CostFor(2, money(t, 50000))
		assert.True(t, cost.IsZero())
	})

	t.Run("missing per-kg rate defaults to flat only", func(t *testing.T) {
		r := newRate(t, 800, 0, nil)
		cost := r.CostFor(12.5, money(t, 30000))
		assert.InDelta(t, 800, cost.Amount(), 0.0001)
	})

	t.Run("cost is rounded to two decimals", func(t *testing.T) {
		r := newRate(t, 100.555, 0.333, nil)
		cost := r.CostFor(1, money(t, 1000))
		assert.InDelta(t, 100.89, cost.Amount(), 0.0001)
	})
}

func TestShippingRate_MatchesWeight(t *testing.T) {
	min, max := 1.0, 10.0
	r, err := rate.NewShippingRate(
		kernel.NewUUID(), kernel.NewUUID(), nil, nil,
		money(t, 100), kernel.ZeroMoney(), &min, &max, nil, true, 1,
	)
	require.NoError(t, err)

	assert.True(t, r.MatchesWeight(5))
	assert.True(t, r.MatchesWeight(1))
	assert.True(t, r.MatchesWeight(10))
	assert.False(t, r.MatchesWeight(0.5))
	assert.False(t, r.MatchesWeight(11))

	unbounded := newRate(t, 100, 0, nil)
	assert.True(t, unbounded.MatchesWeight(0))
	assert.True(t, unbounded.MatchesWeight(1000))
}

func TestShippingRate_Validate(t *testing.T) {
	var notConstructed rate.ShippingRate
	require.ErrorIs(t, notConstructed.Validate(), rate.ErrShippingRateIsNotConstructed)
}
