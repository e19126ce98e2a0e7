package order_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "pending", order.StatusPending.String())
	assert.Equal(t, "partially_shipped", order.StatusPartiallyShipped.String())
	assert.Equal(t, "unknown", order.StatusUnknown.String())
	assert.Equal(t, "unknown", order.Status(99).String())
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, order.StatusProcessing.Validate())
	require.Error(t, order.StatusUnknown.Validate())
	require.Error(t, order.Status(99).Validate())
}

func TestStatus_Transitions(t *testing.T) {
	cases := []struct {
		from, to order.Status
		allowed  bool
	}{
		{order.StatusPending, order.StatusProcessing, true},
		{order.StatusPending, order.StatusCancelled, true},
		{order.StatusProcessing, order.StatusShipped, true},
		{order.StatusProcessing, order.StatusPartiallyShipped, true},
		{order.StatusPartiallyShipped, order.StatusShipped, true},
		{order.StatusShipped, order.StatusDelivered, true},
		{order.StatusDelivered, order.StatusRefunded, true},
		{order.StatusShipped, order.StatusCancelled, false},
		{order.StatusDelivered, order.StatusPending, false},
		{order.StatusRefunded, order.StatusPending, false},
	}

	for _, tc := range cases {
		t.Run(tc.from.String()+"_to_"+tc.to.String(), func(t *testing.T) {
			next, err := tc.from.TransitionTo(tc.to)
			if tc.allowed {
				require.NoError(t, err)
				assert.Equal(t, tc.to, next)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestStatusFromString(t *testing.T) {
	s, err := order.StatusFromString("partially_shipped")
	require.NoError(t, err)
	assert.Equal(t, order.StatusPartiallyShipped, s)

	_, err = order.StatusFromString("unknown")
	require.Error(t, err)

	_, err = order.StatusFromString("bogus")
	require.Error(t, err)
}
