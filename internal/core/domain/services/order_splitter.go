package services

import (
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// initialEventDescription and initialEventLocation are stamped on the first
// tracking event of every sub-order the splitter creates.
const (
	initialEventDescription = "Order received and awaiting processing"
	initialEventLocation    = "Processing Center"
)

// DefaultHubKey is the shipping-cost map key for items without a hub.
const DefaultHubKey = ""

// OrderSplitter is a domain service that partitions a main order's line
// items into hub/vendor groups and builds one SubOrder per group.
//
// Business rules:
//   - Items group by the (hubID, vendorID) pair; groups keep the stable
//     order in which their first item appears in the order
//   - Each group becomes exactly one SubOrder, even for a single item;
//     a sub-order is never created with zero items
//   - The shipping fee the customer paid is allocated evenly across the
//     sub-orders, not proportionally to each group's computed cost; the
//     last share absorbs the rounding remainder so the allocations sum
//     back to the fee exactly
//   - Every SubOrder starts pending with one tracking event recording
//     receipt at the processing center
//
// The splitter is pure: it builds aggregates and leaves persistence to the
// application layer.
type OrderSplitter struct{}

// NewOrderSplitter creates a new OrderSplitter instance.
func NewOrderSplitter() OrderSplitter {
	return OrderSplitter{}
}

// Split partitions items into sub-orders for the given order.
//
// shippingCosts carries the per-hub courier cost from the shipping
// calculator's breakdown, keyed by hub ID string with DefaultHubKey for the
// hubless group; groups without an entry get a zero cost. now stamps the
// initial tracking events.
func (s OrderSplitter) Split(
	o *order.Order,
	items []order.Item,
	shippingCosts map[string]kernel.Money,
	now time.Time,
) ([]*order.SubOrder, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, order.ErrSubOrderHasNoItems
	}

	groupKeys, groups, err := s.groupItems(items)
	if err != nil {
		return nil, err
	}

	allocations, err := o.ShippingFeePaid().SplitEven(len(groupKeys))
	if err != nil {
		return nil, err
	}

	subOrders := make([]*order.SubOrder, 0, len(groupKeys))
	for i, key := range groupKeys {
		groupItems := groups[key]
		first := groupItems[0]

		cost, ok := shippingCosts[hubKey(first.HubID())]
		if !ok {
			cost = kernel.ZeroMoney()
		}

		id := kernel.NewUUID()
		subOrder, err := order.NewSubOrder(
			id, o.ID(),
			first.HubID(), first.VendorID(),
			groupItems,
			allocations[i], cost,
			newTrackingNumber(id),
		)
		if err != nil {
			return nil, err
		}

		if _, err = subOrder.RecordEvent(
			order.DeliveryPending,
			initialEventDescription, initialEventLocation,
			order.SourceSystem, now, false,
		); err != nil {
			return nil, err
		}

		subOrders = append(subOrders, subOrder)
	}

	return subOrders, nil
}

// groupItems partitions items by (hubID, vendorID) preserving first-seen
// group order.
func (s OrderSplitter) groupItems(items []order.Item) ([]string, map[string][]order.Item, error) {
	var keys []string
	groups := make(map[string][]order.Item)

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, nil, err
		}

		key := hubKey(item.HubID()) + "/" + hubKey(item.VendorID())
		if _, seen := groups[key]; !seen {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], item)
	}

	return keys, groups, nil
}

func hubKey(id *kernel.UUID) string {
	if id == nil {
		return DefaultHubKey
	}
	return id.String()
}

func newTrackingNumber(id kernel.UUID) string {
	compact := strings.ReplaceAll(id.String(), "-", "")
	return "TRK-" + strings.ToUpper(compact[:12])
}
