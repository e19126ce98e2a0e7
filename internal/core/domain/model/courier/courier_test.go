package courier_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCourier_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	baseRate, _ := kernel.NewMoney(1000)

	c, err := courier.NewCourier(id, "Fez Delivery", "FEZ", true, baseRate, 97.5)
	require.NoError(t, err)
	assert.True(t, c.ID().IsEqual(id))
	assert.Equal(t, "Fez Delivery", c.Name())
	assert.Equal(t, "FEZ", c.Code())
	assert.True(t, c.IsActive())
	assert.True(t, c.BaseRate().IsEqual(baseRate))
	assert.InDelta(t, 97.5, c.SuccessRate(), 0.0001)
}

func TestNewCourier_InvalidInput(t *testing.T) {
	id := kernel.NewUUID()
	baseRate := kernel.ZeroMoney()

	_, err := courier.NewCourier(kernel.UUID{}, "Fez", "FEZ", true, baseRate, 0)
	require.Error(t, err)

	_, err = courier.NewCourier(id, "", "FEZ", true, baseRate, 0)
	require.Error(t, err)

	_, err = courier.NewCourier(id, "Fez", "", true, baseRate, 0)
	require.Error(t, err)

	_, err = courier.NewCourier(id, "Fez", "FEZ", true, kernel.Money{}, 0)
	require.Error(t, err)

	_, err = courier.NewCourier(id, "Fez", "FEZ", true, baseRate, 120)
	require.Error(t, err)
}

func TestCourier_Validate(t *testing.T) {
	var notConstructed courier.Courier
	require.ErrorIs(t, notConstructed.Validate(), courier.ErrCourierIsNotConstructed)
}

func TestNewHubCourier(t *testing.T) {
	hubID := kernel.NewUUID()
	courierID := kernel.NewUUID()

	link, err := courier.NewHubCourier(hubID, courierID, true, 5)
	require.NoError(t, err)
	assert.True(t, link.HubID().IsEqual(hubID))
	assert.True(t, link.CourierID().IsEqual(courierID))
	assert.True(t, link.IsPrimary())
	assert.Equal(t, 5, link.Priority())

	_, err = courier.NewHubCourier(kernel.UUID{}, courierID, false, 1)
	require.Error(t, err)
}

func TestHubCourier_Precedes(t *testing.T) {
	hubID := kernel.NewUUID()

	primary, _ := courier.NewHubCourier(hubID, kernel.NewUUID(), true, 1)
	highPriority, _ := courier.NewHubCourier(hubID, kernel.NewUUID(), false, 99)
	lowPriority, _ := courier.NewHubCourier(hubID, kernel.NewUUID(), false, 1)

	// primary wins regardless of priority rank
	assert.True(t, primary.Precedes(highPriority))
	assert.False(t, highPriority.Precedes(primary))

	// between non-primary links the higher rank wins
	assert.True(t, highPriority.Precedes(lowPriority))
	assert.False(t, lowPriority.Precedes(highPriority))
}
