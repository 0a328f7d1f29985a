package queries

import (
	"context"

	"eta/internal/core/domain/services"
	"eta/internal/core/ports"
)

// PlanShipmentQueryHandler loads the policy and the active warehouses, then
// delegates to services.WarehousePlanner.
type PlanShipmentQueryHandler struct {
	policies   PolicyReader
	warehouses WarehouseReader
	rules      ports.SlaRuleProvider
}

func NewPlanShipmentQueryHandler(
	policies PolicyReader,
	warehouses WarehouseReader,
	rules ports.SlaRuleProvider,
) PlanShipmentQueryHandler {
	return PlanShipmentQueryHandler{
		policies:   policies,
		warehouses: warehouses,
		rules:      rules,
	}
}

func (h PlanShipmentQueryHandler) Handle(ctx context.Context, query PlanShipmentQuery) (services.Plan, error) {
	if err := query.Validate(); err != nil {
		return services.Plan{}, err
	}

	p, err := h.policies.Get(ctx, query.PolicyID())
	if err != nil {
		return services.Plan{}, err
	}

	active, err := h.warehouses.GetAllActive(ctx)
	if err != nil {
		return services.Plan{}, err
	}

	planner := services.NewWarehousePlanner(query.Strategy().allocator())
	return planner.Plan(services.PlanRequest{
		Items:               query.Items(),
		Warehouses:          active,
		Policy:              p,
		Now:                 query.Now(),
		Destination:         query.Destination(),
		DestinationLocation: query.DestinationLocation(),
		Carrier:             query.Carrier(),
		Advanced:            query.Advanced(),
		Rules:               h.rules.Current(),
	})
}
