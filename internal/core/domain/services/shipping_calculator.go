package services

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/rate"
	"fulfillment/internal/core/domain/model/zone"
)

// ErrRateNotFound is returned when no active shipping rate covers a hub
// group inside the resolved zone. Quoting is all-or-nothing: one uncovered
// group fails the whole quote.
var ErrRateNotFound = errors.New("no active shipping rate for zone and hub")

// RateLookup resolves the governing rate for a hub group inside the quoted
// zone. hubID is nil for the hubless default group. Implementations return
// the active row with the highest priority, or ErrRateNotFound.
type RateLookup func(hubID *kernel.UUID) (*rate.ShippingRate, error)

// QuoteLine is one hub group's share of a shipping quote.
type QuoteLine struct {
	HubID         *kernel.UUID
	ShippingCost  kernel.Money
	ItemCount     int
	TotalWeightKg float64
}

// Quote is the priced result of a shipping calculation: the per-hub
// breakdown, its total, and the zone estimate to surface to the customer.
type Quote struct {
	Total                 kernel.Money
	ZoneID                kernel.UUID
	ZoneName              string
	EstimatedDeliveryDays int
	Breakdown             []QuoteLine
}

// ShippingCalculator is a domain service that prices an item list against a
// zone's rate table.
//
// Pricing rules:
//   - Items group by hub only, nil hub forming the default group; this is
//     a coarser grouping than the splitter's (hub, vendor) partition
//   - Each group is priced by its governing rate: flat rate plus per-kg
//     rate times the group's total weight
//   - The free-shipping threshold compares against the whole order's
//     declared value, not the group subtotal; a reached threshold waives
//     the group's cost entirely
//   - Group costs and the total are held to two decimal places
type ShippingCalculator struct{}

// NewShippingCalculator creates a new ShippingCalculator instance.
func NewShippingCalculator() ShippingCalculator {
	return ShippingCalculator{}
}

// Quote prices items for delivery inside z. orderValue is the order's total
// declared value used for free-shipping checks; lookup resolves the rate per
// hub group.
func (c ShippingCalculator) Quote(
	z *zone.Zone,
	items []order.Item,
	orderValue kernel.Money,
	lookup RateLookup,
) (*Quote, error) {
	if err := z.Validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, order.ErrSubOrderHasNoItems
	}
	if err := orderValue.Validate(); err != nil {
		return nil, err
	}

	keys, groups, err := c.groupByHub(items)
	if err != nil {
		return nil, err
	}

	quote := &Quote{
		Total:                 kernel.ZeroMoney(),
		ZoneID:                z.ID(),
		ZoneName:              z.Name(),
		EstimatedDeliveryDays: z.EstimatedDeliveryDays(),
		Breakdown:             make([]QuoteLine, 0, len(keys)),
	}

	for _, key := range keys {
		groupItems := groups[key]

		r, err := lookup(groupItems[0].HubID())
		if err != nil {
			return nil, err
		}
		if err = r.Validate(); err != nil {
			return nil, err
		}

		var weight float64
		for _, item := range groupItems {
			weight += item.TotalWeightKg()
		}

		cost := r.CostFor(weight, orderValue)

		quote.Breakdown = append(quote.Breakdown, QuoteLine{
			HubID:         groupItems[0].HubID(),
			ShippingCost:  cost,
			ItemCount:     len(groupItems),
			TotalWeightKg: weight,
		})
		quote.Total = quote.Total.Add(cost)
	}

	return quote, nil
}

// groupByHub partitions items by hub preserving first-seen group order.
func (c ShippingCalculator) groupByHub(items []order.Item) ([]string, map[string][]order.Item, error) {
	var keys []string
	groups := make(map[string][]order.Item)

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, nil, err
		}

		key := hubKey(item.HubID())
		if _, seen := groups[key]; !seen {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], item)
	}

	return keys, groups, nil
}
