// Package order contains the order aggregates of the fulfillment engine.
//
// Two aggregates live here. Order is the customer-facing main order created
// once per storefront checkout; it carries the delivery address, the resolved
// zone, the paid totals, and the overall status. SubOrder is the hub-scoped
// shipment the splitter derives from a main order, one per distinct
// (hub, vendor) combination among the order's items; it owns its line items,
// the allocated share of the paid shipping fee, the courier assignment, the
// settlement fields, and the append-only tracking event log that drives its
// delivery status.
//
// The delivery status lifecycle is
//
//	pending → assigned → picked_up → in_transit → out_for_delivery → delivered
//
// with failed and returned reachable from any in-flight state. A sub-order's
// denormalized status always equals the status of its most recent tracking
// event; RecordEvent appends the event and updates the status in one
// operation. Couriers report events out of order in practice, so accept-any
// recording is the default; strict monotonic recording is an opt-in.
package order
