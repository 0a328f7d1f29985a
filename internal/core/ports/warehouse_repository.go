package ports

import (
	"context"

	"eta/internal/core/domain/model/warehouse"
)

// WarehouseRepository defines the persistence contract for the warehouse registry.
// Warehouses are keyed by their code.
type WarehouseRepository interface {
	// Add persists a new warehouse, or replaces the one with the same code.
	Add(ctx context.Context, aggregate *warehouse.Warehouse) error

	// Get retrieves a warehouse by code.
	// Returns errs.ObjectNotFoundError when the code is unknown.
	Get(ctx context.Context, code string) (*warehouse.Warehouse, error)

	// GetAllActive retrieves the active warehouses ordered by code.
	GetAllActive(ctx context.Context) ([]*warehouse.Warehouse, error)
}
