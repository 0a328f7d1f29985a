// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"eta/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// PolicyRepoFactory provides access to the policy repository within a transaction.
	PolicyRepoFactory interface {
		PolicyRepository() ports.PolicyRepository
	}

	// WarehouseRepoFactory provides access to the warehouse repository within a transaction.
	WarehouseRepoFactory interface {
		WarehouseRepository() ports.WarehouseRepository
	}

	// PolicyUoW manages transactions for policy operations.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   repo := uow.PolicyRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	PolicyUoW interface {
		TxManager
		PolicyRepoFactory
	}

	// PolicyUoWFactory creates new policy unit of work instances.
	PolicyUoWFactory interface {
		Create() PolicyUoW
	}

	// WarehouseUoW manages transactions for warehouse registry operations.
	WarehouseUoW interface {
		TxManager
		WarehouseRepoFactory
	}

	// WarehouseUoWFactory creates new warehouse unit of work instances.
	WarehouseUoWFactory interface {
		Create() WarehouseUoW
	}
)
