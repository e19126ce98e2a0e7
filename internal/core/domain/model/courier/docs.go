// Package courier contains the courier aggregate and the hub-courier link
// entity that configures which couriers serve which hubs.
//
// A Courier is a delivery company shipments are handed to. Each hub keeps an
// ordered set of HubCourier links; assignment selects the primary link first
// and falls back to the highest priority rank. The success-rate metric on a
// courier is informational and never participates in selection.
package courier
