// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
// Handlers running in compatibility (non-transactional) mode skip Begin and
// write through the repositories directly.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ZoneRepoFactory provides access to the zone repository within a transaction.
	ZoneRepoFactory interface {
		ZoneRepository() ports.ZoneRepository
	}

	// RateRepoFactory provides access to the rate repository within a transaction.
	RateRepoFactory interface {
		RateRepository() ports.RateRepository
	}

	// HubRepoFactory provides access to the hub repository within a transaction.
	HubRepoFactory interface {
		HubRepository() ports.HubRepository
	}

	// CourierRepoFactory provides access to the courier repository within a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// SettlementRepoFactory provides access to the settlement repository within a transaction.
	SettlementRepoFactory interface {
		SettlementRepository() ports.SettlementRepository
	}

	// SplitOrderUoW manages the order-ingest write: zone resolution, rate
	// lookup, and the order plus sub-order inserts.
	SplitOrderUoW interface {
		TxManager
		ZoneRepoFactory
		RateRepoFactory
		OrderRepoFactory
	}

	// SplitOrderUoWFactory creates unit of work instances for order splitting.
	SplitOrderUoWFactory interface {
		Create() SplitOrderUoW
	}

	// AssignCourierUoW manages courier assignment: hub links, courier
	// lookup, and the sub-order update.
	AssignCourierUoW interface {
		TxManager
		HubRepoFactory
		CourierRepoFactory
		OrderRepoFactory
	}

	// AssignCourierUoWFactory creates unit of work instances for assignment.
	AssignCourierUoWFactory interface {
		Create() AssignCourierUoW
	}

	// TrackingUoW manages tracking event recording against sub-orders.
	TrackingUoW interface {
		TxManager
		OrderRepoFactory
	}

	// TrackingUoWFactory creates unit of work instances for tracking updates.
	TrackingUoWFactory interface {
		Create() TrackingUoW
	}

	// SettlementUoW manages settlement creation and payout: eligible
	// sub-order reads, the settlement row, and the sub-order stamps.
	SettlementUoW interface {
		TxManager
		CourierRepoFactory
		OrderRepoFactory
		SettlementRepoFactory
	}

	// SettlementUoWFactory creates unit of work instances for settlements.
	SettlementUoWFactory interface {
		Create() SettlementUoW
	}
)
