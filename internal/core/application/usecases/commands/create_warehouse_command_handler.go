package commands

import (
	"context"
)

// CreateWarehouseCommandHandler persists warehouses into the registry.
type CreateWarehouseCommandHandler struct {
	uowFactory WarehouseUoWFactory
}

func NewCreateWarehouseCommandHandler(uowFactory WarehouseUoWFactory) CreateWarehouseCommandHandler {
	return CreateWarehouseCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CreateWarehouseCommandHandler) Handle(ctx context.Context, cmd CreateWarehouseCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.WarehouseRepository().Add(ctx, cmd.Warehouse()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
