// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Estimate queries combine stored configuration with the current SLA rule
// snapshot and never write anything.
package queries

import (
	"context"

	"eta/internal/core/domain/model/kernel"
	"eta/internal/core/domain/model/policy"
	"eta/internal/core/domain/model/warehouse"
)

// Read side contracts. Both are satisfied by the postgres repositories used
// outside a transaction.
type (
	PolicyReader interface {
		Get(ctx context.Context, id kernel.UUID) (*policy.ShippingPolicy, error)
	}

	WarehouseReader interface {
		GetAllActive(ctx context.Context) ([]*warehouse.Warehouse, error)
	}
)
