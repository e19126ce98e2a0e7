package trackingfeed_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/trackingfeed"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueSource_FetchDrainsQueue(t *testing.T) {
	source := trackingfeed.NewQueueSource()

	source.Push(ports.TrackingUpdate{
		SubOrderID: kernel.NewUUID(),
		Status:     order.DeliveryInTransit,
		Location:   "Benin bypass",
		OccurredAt: time.Now(),
	})
	source.Push(ports.TrackingUpdate{
		SubOrderID: kernel.NewUUID(),
		Status:     order.DeliveryDelivered,
		OccurredAt: time.Now(),
	})

	updates, err := source.FetchUpdates(context.Background())
	require.NoError(t, err)
	assert.Len(t, updates, 2)
	assert.Equal(t, order.DeliveryInTransit, updates[0].Status)

	updates, err = source.FetchUpdates(context.Background())
	require.NoError(t, err)
	assert.Empty(t, updates)
}
