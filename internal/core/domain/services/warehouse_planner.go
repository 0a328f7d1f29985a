package services

import (
	"errors"
	"fmt"
	"time"

	"eta/internal/core/domain/model/estimate"
	"eta/internal/core/domain/model/kernel"
	"eta/internal/core/domain/model/policy"
	"eta/internal/core/domain/model/sla"
	"eta/internal/core/domain/model/warehouse"
)

var (
	// ErrNoActiveWarehouses is returned when a plan is requested without any active warehouse.
	ErrNoActiveWarehouses = errors.New("no active warehouses")
	// ErrDuplicateWarehouseCode is returned when two warehouses of one plan share a code.
	ErrDuplicateWarehouseCode = errors.New("duplicate warehouse code")
	// ErrNoLineItems is returned when a plan is requested for an empty order.
	ErrNoLineItems = errors.New("order has no line items")
)

// PlanRequest is the input of WarehousePlanner.Plan. With Advanced set, each
// package gets an advanced estimate resolved against Rules.
type PlanRequest struct {
	Items      []warehouse.LineItem
	Warehouses []*warehouse.Warehouse
	Policy     *policy.ShippingPolicy
	Now        time.Time

	Destination         sla.Destination
	DestinationLocation kernel.Coordinates
	Carrier             string
	Advanced            bool
	Rules               *sla.RuleSet
}

// Package is the set of items shipped together from one warehouse.
type Package struct {
	Warehouse *warehouse.Warehouse
	Items     []warehouse.LineItem
	Estimate  estimate.Estimate
}

// Plan is the order-level result: one Package per warehouse used, and the
// union of their windows.
type Plan struct {
	Packages                    []Package
	MinDate                     time.Time
	MaxDate                     time.Time
	EstimatedDeliveryRangeLabel string
}

func (p Plan) TotalPackages() int { return len(p.Packages) }

// WarehousePlanner splits an order into packages.
//
// Items assigned to the same warehouse form one package, estimated with the
// warehouse's cutoff hour and weekend dispatch rule in place of the policy's.
// Packages are listed in the order their warehouse first receives an item.
type WarehousePlanner struct {
	allocator WarehouseAllocator
	composer  EstimateComposer
}

// NewWarehousePlanner builds a planner; a nil allocator means RoundRobinAllocator.
func NewWarehousePlanner(allocator WarehouseAllocator) WarehousePlanner {
	if allocator == nil {
		allocator = RoundRobinAllocator{}
	}
	return WarehousePlanner{allocator: allocator, composer: NewEstimateComposer()}
}

func (wp WarehousePlanner) Plan(req PlanRequest) (Plan, error) {
	if err := req.Policy.Validate(); err != nil {
		return Plan{}, err
	}
	if len(req.Items) == 0 {
		return Plan{}, ErrNoLineItems
	}
	for _, item := range req.Items {
		if err := item.Validate(); err != nil {
			return Plan{}, err
		}
	}

	active, err := activeWarehouses(req.Warehouses)
	if err != nil {
		return Plan{}, err
	}

	assigned := wp.allocator.Allocate(req.Items, active, req.DestinationLocation)
	if len(assigned) != len(req.Items) {
		return Plan{}, fmt.Errorf("allocator returned %d warehouses for %d items", len(assigned), len(req.Items))
	}

	var (
		packages []Package
		index    = make(map[string]int, len(active))
	)
	for i, w := range assigned {
		if w == nil {
			return Plan{}, fmt.Errorf("allocator returned no warehouse for item %d", i)
		}
		pos, ok := index[w.Code()]
		if !ok {
			pos = len(packages)
			index[w.Code()] = pos
			packages = append(packages, Package{Warehouse: w})
		}
		packages[pos].Items = append(packages[pos].Items, req.Items[i])
	}

	plan := Plan{Packages: packages}
	for i := range plan.Packages {
		est, err := wp.estimatePackage(req, plan.Packages[i].Warehouse)
		if err != nil {
			return Plan{}, err
		}
		plan.Packages[i].Estimate = est

		if i == 0 || est.MinDate().Before(plan.MinDate) {
			plan.MinDate = est.MinDate()
		}
		if i == 0 || est.MaxDate().After(plan.MaxDate) {
			plan.MaxDate = est.MaxDate()
		}
	}
	plan.EstimatedDeliveryRangeLabel = FormatRange(plan.MinDate, plan.MaxDate)

	return plan, nil
}

func (wp WarehousePlanner) estimatePackage(req PlanRequest, w *warehouse.Warehouse) (estimate.Estimate, error) {
	p, err := req.Policy.WithDispatchRules(w.CutoffHour(), w.WeekendDispatchAllowed())
	if err != nil {
		return estimate.Estimate{}, err
	}
	if req.Advanced {
		return wp.composer.Advanced(p, req.Now, req.Destination, req.Carrier, req.Rules)
	}
	return wp.composer.Base(p, req.Now, req.Destination.Region)
}

func activeWarehouses(warehouses []*warehouse.Warehouse) ([]*warehouse.Warehouse, error) {
	seen := make(map[string]struct{}, len(warehouses))
	active := make([]*warehouse.Warehouse, 0, len(warehouses))

	for _, w := range warehouses {
		if err := w.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[w.Code()]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateWarehouseCode, w.Code())
		}
		seen[w.Code()] = struct{}{}
		if w.IsActive() {
			active = append(active, w)
		}
	}

	if len(active) == 0 {
		return nil, ErrNoActiveWarehouses
	}
	return active, nil
}
