package http

import (
	"context"
	"errors"

	"eta/internal/core/application/usecases/commands"
	"eta/internal/core/application/usecases/queries"
	"eta/internal/core/domain/model/policy"
	"eta/internal/core/domain/services"
)

type CreatePolicyHandler interface {
	Handle(ctx context.Context, cmd commands.CreatePolicyCommand) error
}

type UpdatePolicyHandler interface {
	Handle(ctx context.Context, cmd commands.UpdatePolicyCommand) error
}

type DeletePolicyHandler interface {
	Handle(ctx context.Context, cmd commands.DeletePolicyCommand) error
}

type CreateWarehouseHandler interface {
	Handle(ctx context.Context, cmd commands.CreateWarehouseCommand) error
}

type ComputeEstimateHandler interface {
	Handle(ctx context.Context, query queries.ComputeEstimateQuery) (queries.EstimateResponse, error)
}

type GetPolicyHandler interface {
	Handle(ctx context.Context, query queries.GetPolicyQuery) (*policy.ShippingPolicy, error)
}

type GetPolicyEstimateHandler interface {
	Handle(ctx context.Context, query queries.GetPolicyEstimateQuery) (queries.EstimateResponse, error)
}

type PlanShipmentHandler interface {
	Handle(ctx context.Context, query queries.PlanShipmentQuery) (services.Plan, error)
}

type GetActiveWarehousesHandler interface {
	Handle(
		ctx context.Context,
		query queries.GetActiveWarehousesQuery,
	) ([]queries.GetActiveWarehousesQueryResponse, error)
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	// Command handlers
	CreatePolicy    CreatePolicyHandler
	UpdatePolicy    UpdatePolicyHandler
	DeletePolicy    DeletePolicyHandler
	CreateWarehouse CreateWarehouseHandler

	// Query handlers
	ComputeEstimate     ComputeEstimateHandler
	GetPolicy           GetPolicyHandler
	GetPolicyEstimate   GetPolicyEstimateHandler
	PlanShipment        PlanShipmentHandler
	GetActiveWarehouses GetActiveWarehousesHandler
}

func (h Handlers) validate() error {
	return errors.Join(
		required("createPolicy handler", h.CreatePolicy == nil),
		required("updatePolicy handler", h.UpdatePolicy == nil),
		required("deletePolicy handler", h.DeletePolicy == nil),
		required("createWarehouse handler", h.CreateWarehouse == nil),
		required("computeEstimate handler", h.ComputeEstimate == nil),
		required("getPolicy handler", h.GetPolicy == nil),
		required("getPolicyEstimate handler", h.GetPolicyEstimate == nil),
		required("planShipment handler", h.PlanShipment == nil),
		required("getActiveWarehouses handler", h.GetActiveWarehouses == nil),
	)
}
