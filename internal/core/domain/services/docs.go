// Package services contains stateless domain services that coordinate logic
// across aggregates without owning state of their own.
//
// Three services live here. CourierSelector picks the best courier link for
// a hub under the primary-then-priority policy. OrderSplitter partitions a
// main order's items into hub/vendor groups and builds the sub-orders with
// their even shipping-fee allocation and initial tracking events.
// ShippingCalculator prices an item list against a zone's rate table and
// produces the per-hub cost breakdown.
//
// All services are pure with respect to persistence: they operate on
// aggregates and data handed to them and leave storage to the application
// layer's unit of work.
package services
