package queries

import (
	"errors"
	"strings"
	"time"

	"eta/internal/core/domain/model/kernel"
	"eta/internal/core/domain/model/sla"
	"eta/internal/core/domain/model/warehouse"
	"eta/internal/pkg/errs"
	"eta/internal/pkg/guard"
)

var ErrPlanShipmentQueryIsNotConstructed = errors.New(
	"PlanShipmentQuery must be created via NewPlanShipmentQuery constructor",
)

// PlanShipmentParams carries the inputs of NewPlanShipmentQuery.
// DestinationLocation is only consulted by the nearest and stock aware strategies.
type PlanShipmentParams struct {
	PolicyID            kernel.UUID
	Items               []warehouse.LineItem
	Now                 time.Time
	Destination         sla.Destination
	DestinationLocation kernel.Coordinates
	Carrier             string
	Advanced            bool
	Strategy            AllocationStrategy
}

// PlanShipmentQuery splits an order across the active warehouses and
// estimates every resulting package with a stored policy.
type PlanShipmentQuery struct {
	params PlanShipmentParams

	guard guard.ConstructorGuard
}

func NewPlanShipmentQuery(params PlanShipmentParams) (PlanShipmentQuery, error) {
	var nowErr, itemsErr error
	if params.Now.IsZero() {
		nowErr = errs.NewValueIsRequiredError("now")
	}
	if len(params.Items) == 0 {
		itemsErr = errs.NewValueIsRequiredError("items")
	}
	if err := errors.Join(params.PolicyID.Validate(), nowErr, itemsErr); err != nil {
		return PlanShipmentQuery{}, err
	}

	params.Items = append([]warehouse.LineItem(nil), params.Items...)
	params.Carrier = strings.TrimSpace(params.Carrier)

	return PlanShipmentQuery{
		params: params,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q PlanShipmentQuery) Validate() error {
	return q.guard.Validate(ErrPlanShipmentQueryIsNotConstructed)
}

func (q PlanShipmentQuery) PolicyID() kernel.UUID { return q.params.PolicyID }

func (q PlanShipmentQuery) Items() []warehouse.LineItem {
	return append([]warehouse.LineItem(nil), q.params.Items...)
}

func (q PlanShipmentQuery) Now() time.Time { return q.params.Now }

func (q PlanShipmentQuery) Destination() sla.Destination { return q.params.Destination }

func (q PlanShipmentQuery) DestinationLocation() kernel.Coordinates {
	return q.params.DestinationLocation
}

func (q PlanShipmentQuery) Carrier() string { return q.params.Carrier }

func (q PlanShipmentQuery) Advanced() bool { return q.params.Advanced }

func (q PlanShipmentQuery) Strategy() AllocationStrategy { return q.params.Strategy }
