package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and repositories bound to the current
// transaction. Client code must explicitly manage transaction lifecycle.
//
// Handlers that run in compatibility (non-transactional) mode skip Begin and
// use the repositories directly; each write then commits independently.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// ZoneRepository returns a ZoneRepository bound to the current transaction.
	ZoneRepository() ZoneRepository

	// RateRepository returns a RateRepository bound to the current transaction.
	RateRepository() RateRepository

	// HubRepository returns a HubRepository bound to the current transaction.
	HubRepository() HubRepository

	// CourierRepository returns a CourierRepository bound to the current transaction.
	CourierRepository() CourierRepository

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// SettlementRepository returns a SettlementRepository bound to the current transaction.
	SettlementRepository() SettlementRepository
}
