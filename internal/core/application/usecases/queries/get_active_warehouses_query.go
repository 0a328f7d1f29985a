package queries

import (
	"errors"

	"eta/internal/pkg/guard"
)

var ErrGetActiveWarehousesQueryIsNotConstructed = errors.New(
	"GetActiveWarehousesQuery must be created via NewGetActiveWarehousesQuery constructor",
)

// GetActiveWarehousesQuery lists the warehouses currently taking orders.
//
// Example:
//
//	query := NewGetActiveWarehousesQuery()
//	handler := NewGetActiveWarehousesQueryHandler(db)
//
//	warehouses, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list warehouses: %w", err)
//	}
type GetActiveWarehousesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetActiveWarehousesQuery() GetActiveWarehousesQuery {
	return GetActiveWarehousesQuery{guard: guard.NewConstructorGuard()}
}

func (q GetActiveWarehousesQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveWarehousesQueryIsNotConstructed)
}

// GetActiveWarehousesQueryResponse is the registry read model.
type GetActiveWarehousesQueryResponse struct {
	Code                   string
	Name                   string
	Latitude               float64
	Longitude              float64
	CutoffHour             int
	WeekendDispatchAllowed bool
}
