package commands

import (
	"errors"

	"eta/internal/core/domain/model/warehouse"
	"eta/internal/pkg/guard"
)

var ErrCreateWarehouseCommandIsNotConstructed = errors.New(
	"CreateWarehouseCommand must be created via NewCreateWarehouseCommand constructor",
)

// CreateWarehouseCommand registers a warehouse, replacing any warehouse with
// the same code.
//
// Example:
//
//	loc, _ := kernel.NewCoordinates(41.01, 28.97)
//	cmd, err := NewCreateWarehouseCommand(warehouse.Params{Code: "IST-1", Location: loc, CutoffHour: 15, IsActive: true})
//	if err != nil {
//	    return fmt.Errorf("invalid warehouse: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type CreateWarehouseCommand struct { //nolint:recvcheck //using for validation
	warehouse *warehouse.Warehouse

	guard guard.ConstructorGuard
}

func NewCreateWarehouseCommand(params warehouse.Params) (CreateWarehouseCommand, error) {
	command := CreateWarehouseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setWarehouse(params); err != nil {
		return CreateWarehouseCommand{}, err
	}

	return command, nil
}

func (c CreateWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrCreateWarehouseCommandIsNotConstructed)
}

func (c CreateWarehouseCommand) Code() string {
	return c.warehouse.Code()
}

func (c CreateWarehouseCommand) Warehouse() *warehouse.Warehouse {
	return c.warehouse
}

func (c *CreateWarehouseCommand) setWarehouse(params warehouse.Params) error {
	w, err := warehouse.NewWarehouse(params)
	if err != nil {
		return err
	}

	c.warehouse = w
	return nil
}
