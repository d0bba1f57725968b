// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"catering/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// StaffRepoFactory provides access to staff repository within a transaction.
	StaffRepoFactory interface {
		StaffRepository() ports.StaffRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// StaffUoW manages transactions for staff-only operations.
	StaffUoW interface {
		TxManager
		StaffRepoFactory
	}

	// StaffUoWFactory creates new staff unit of work instances.
	StaffUoWFactory interface {
		Create() StaffUoW
	}

	// UoW manages transactions across both order and staff aggregates.
	// Used for commands that read staff while mutating orders.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   staffRepo := uow.StaffRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		StaffRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
