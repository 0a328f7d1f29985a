package http

import (
	"errors"
	"time"

	"eta/internal/core/application/usecases/queries"
	"eta/internal/core/domain/model/estimate"
	"eta/internal/core/domain/model/kernel"
	"eta/internal/core/domain/model/policy"
	"eta/internal/core/domain/model/sla"
	"eta/internal/core/domain/model/warehouse"
	"eta/internal/core/domain/services"
	"eta/internal/pkg/errs"

	"github.com/oapi-codegen/runtime/types"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

type RegionOverride struct {
	Region    string `json:"region"              validate:"required,max=16"`
	Mode      string `json:"mode"                validate:"required,oneof=fixed range"`
	FixedDays *int   `json:"fixedDays,omitempty" validate:"omitempty,min=0,max=365"`
	MinDays   *int   `json:"minDays,omitempty"   validate:"omitempty,min=0,max=365"`
	MaxDays   *int   `json:"maxDays,omitempty"   validate:"omitempty,min=0,max=365"`
	Carrier   string `json:"carrier,omitempty"`
	Note      string `json:"note,omitempty"`
}

type BlackoutDate struct {
	Date           types.Date `json:"date"`
	CapacityFactor *float64   `json:"capacityFactor,omitempty" validate:"omitempty,min=0.5,max=2"`
}

// PolicyInput is the body of POST and PUT /api/v1/policies.
type PolicyInput struct {
	Name                   string           `json:"name,omitempty"           validate:"max=255"`
	ProductionKind         string           `json:"productionKind"           validate:"required,oneof=stocked handmade"`
	EstimateMode           string           `json:"estimateMode"             validate:"required,oneof=fixed range ruleBased"`
	BusinessDaysOnly       bool             `json:"businessDaysOnly"`
	WeekendDispatchAllowed bool             `json:"weekendDispatchAllowed"`
	CutoffHour             *int             `json:"cutoffHour"               validate:"required,min=0,max=23"`
	FixedDays              *int             `json:"fixedDays,omitempty"      validate:"omitempty,min=0,max=365"`
	MinDays                *int             `json:"minDays,omitempty"        validate:"omitempty,min=0,max=365"`
	MaxDays                *int             `json:"maxDays,omitempty"        validate:"omitempty,min=0,max=365"`
	DailyCapacity          *int             `json:"dailyCapacity,omitempty"  validate:"omitempty,min=1"`
	BacklogUnits           *int             `json:"backlogUnits,omitempty"   validate:"omitempty,min=0"`
	CapacityFactor         *float64         `json:"capacityFactor,omitempty" validate:"omitempty,min=0.5,max=2"`
	RegionOverrides        []RegionOverride `json:"regionOverrides,omitempty" validate:"omitempty,dive"`
	BlackoutDates          []BlackoutDate   `json:"blackoutDates,omitempty"   validate:"omitempty,dive"`
}

// params converts the input into constructor parameters of a policy.
func (in PolicyInput) params() (policy.Params, error) {
	kind, kindErr := policy.ParseProductionKind(in.ProductionKind)
	mode, modeErr := policy.ParseEstimateMode(in.EstimateMode)
	overrides, overridesErr := regionOverridesToDomain(in.RegionOverrides)
	blackouts, blackoutsErr := blackoutDatesToDomain(in.BlackoutDates)
	if err := errors.Join(kindErr, modeErr, overridesErr, blackoutsErr); err != nil {
		return policy.Params{}, err
	}

	cutoff := 0
	if in.CutoffHour != nil {
		cutoff = *in.CutoffHour
	}

	return policy.Params{
		Name:                   in.Name,
		ProductionKind:         kind,
		EstimateMode:           mode,
		BusinessDaysOnly:       in.BusinessDaysOnly,
		WeekendDispatchAllowed: in.WeekendDispatchAllowed,
		CutoffHour:             cutoff,
		FixedDays:              in.FixedDays,
		MinDays:                in.MinDays,
		MaxDays:                in.MaxDays,
		DailyCapacity:          in.DailyCapacity,
		BacklogUnits:           in.BacklogUnits,
		CapacityFactor:         in.CapacityFactor,
		RegionOverrides:        overrides,
		BlackoutDates:          blackouts,
	}, nil
}

func regionOverridesToDomain(in []RegionOverride) ([]policy.RegionOverride, error) {
	out := make([]policy.RegionOverride, 0, len(in))
	var errList []error
	for _, o := range in {
		mode, err := policy.ParseEstimateMode(o.Mode)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		override, err := policy.NewRegionOverride(policy.RegionOverrideParams{
			Region:    o.Region,
			Mode:      mode,
			FixedDays: o.FixedDays,
			MinDays:   o.MinDays,
			MaxDays:   o.MaxDays,
			Carrier:   o.Carrier,
			Note:      o.Note,
		})
		if err != nil {
			errList = append(errList, err)
			continue
		}
		out = append(out, override)
	}
	return out, errors.Join(errList...)
}

func blackoutDatesToDomain(in []BlackoutDate) ([]policy.BlackoutDate, error) {
	out := make([]policy.BlackoutDate, 0, len(in))
	var errList []error
	for _, b := range in {
		date, err := kernel.NewCalendarDate(b.Date.Year(), b.Date.Month(), b.Date.Day())
		if err != nil {
			errList = append(errList, err)
			continue
		}
		factor := policy.DefaultBlackoutCapacityFactor
		if b.CapacityFactor != nil {
			factor = *b.CapacityFactor
		}
		blackout, err := policy.NewBlackoutDate(date, factor)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		out = append(out, blackout)
	}
	return out, errors.Join(errList...)
}

// Policy is a stored policy as returned by the API.
type Policy struct {
	ID string `json:"id"`
	PolicyInput
}

func policyFromDomain(p *policy.ShippingPolicy) Policy {
	cutoff := p.CutoffHour()
	out := Policy{
		ID: p.ID().String(),
		PolicyInput: PolicyInput{
			Name:                   p.Name(),
			ProductionKind:         p.ProductionKind().String(),
			EstimateMode:           p.EstimateMode().String(),
			BusinessDaysOnly:       p.BusinessDaysOnly(),
			WeekendDispatchAllowed: p.WeekendDispatchAllowed(),
			CutoffHour:             &cutoff,
			FixedDays:              optional(p.FixedDays()),
			MinDays:                optional(p.MinDays()),
			MaxDays:                optional(p.MaxDays()),
			DailyCapacity:          optional(p.DailyCapacity()),
			BacklogUnits:           optional(p.BacklogUnits()),
		},
	}
	if p.HasCapacityFactor() {
		f := p.CapacityFactor()
		out.CapacityFactor = &f
	}
	for _, o := range p.RegionOverrides() {
		out.RegionOverrides = append(out.RegionOverrides, RegionOverride{
			Region:    o.Region(),
			Mode:      o.Mode().String(),
			FixedDays: optional(o.FixedDays()),
			MinDays:   optional(o.MinDays()),
			MaxDays:   optional(o.MaxDays()),
			Carrier:   o.Carrier(),
			Note:      o.Note(),
		})
	}
	for _, b := range p.BlackoutDates() {
		f := b.CapacityFactor()
		out.BlackoutDates = append(out.BlackoutDates, BlackoutDate{
			Date:           types.Date{Time: b.Date().In(time.UTC)},
			CapacityFactor: &f,
		})
	}
	return out
}

// Destination narrows the carrier SLA lookup.
type Destination struct {
	PostalCode string `json:"postalCode,omitempty" query:"postalCode" validate:"max=16"`
	District   string `json:"district,omitempty"   query:"district"   validate:"max=64"`
	Province   string `json:"province,omitempty"   query:"province"   validate:"max=64"`
	Region     string `json:"region,omitempty"     query:"region"     validate:"max=16"`
}

func (d Destination) toDomain() sla.Destination {
	return sla.Destination{
		PostalCode: d.PostalCode,
		District:   d.District,
		Province:   d.Province,
		Region:     d.Region,
	}
}

type Estimate struct {
	MinDays        int        `json:"minDays"`
	MaxDays        int        `json:"maxDays"`
	MinDate        types.Date `json:"minDate"`
	MaxDate        types.Date `json:"maxDate"`
	ShipMinDate    types.Date `json:"shipMinDate"`
	ShipMaxDate    types.Date `json:"shipMaxDate"`
	FormattedRange string     `json:"formattedRange"`
	Carrier        string     `json:"carrier,omitempty"`
	Note           string     `json:"note,omitempty"`
	TransitMin     *int       `json:"transitMin,omitempty"`
	TransitMax     *int       `json:"transitMax,omitempty"`
}

func estimateFromDomain(e estimate.Estimate) Estimate {
	return Estimate{
		MinDays:        e.MinDays(),
		MaxDays:        e.MaxDays(),
		MinDate:        types.Date{Time: e.MinDate()},
		MaxDate:        types.Date{Time: e.MaxDate()},
		ShipMinDate:    types.Date{Time: e.ShipMinDate()},
		ShipMaxDate:    types.Date{Time: e.ShipMaxDate()},
		FormattedRange: e.FormattedRange(),
		Carrier:        e.Carrier(),
		Note:           e.Note(),
		TransitMin:     optional(e.TransitMin()),
		TransitMax:     optional(e.TransitMax()),
	}
}

type Countdown struct {
	Remaining        string    `json:"remaining"`
	RemainingSeconds int64     `json:"remainingSeconds"`
	Deadline         time.Time `json:"deadline"`
}

type Preview struct {
	CustomerMessage  string     `json:"customerMessage"`
	ShippingDate     types.Date `json:"shippingDate"`
	DeliveryDate     types.Date `json:"deliveryDate"`
	ProductPageLabel string     `json:"productPageLabel"`
	CartLabel        string     `json:"cartLabel"`
	CheckoutLabel    string     `json:"checkoutLabel"`
	Countdown        *Countdown `json:"countdown,omitempty"`
}

func previewFromDomain(p estimate.Preview) Preview {
	out := Preview{
		CustomerMessage:  p.CustomerMessage(),
		ShippingDate:     types.Date{Time: p.ShippingDate()},
		DeliveryDate:     types.Date{Time: p.DeliveryDate()},
		ProductPageLabel: p.ProductPageLabel(),
		CartLabel:        p.CartLabel(),
		CheckoutLabel:    p.CheckoutLabel(),
	}
	if c, ok := p.Countdown(); ok {
		out.Countdown = &Countdown{
			Remaining:        c.Formatted(),
			RemainingSeconds: int64(c.Remaining / time.Second),
			Deadline:         c.Deadline,
		}
	}
	return out
}

// EstimateEnvelope is the body of both estimate endpoints.
type EstimateEnvelope struct {
	Estimate       Estimate                `json:"estimate"`
	Preview        Preview                 `json:"preview"`
	StructuredData estimate.StructuredData `json:"structuredData"`
}

func envelopeFromResponse(r queries.EstimateResponse) EstimateEnvelope {
	return EstimateEnvelope{
		Estimate:       estimateFromDomain(r.Estimate),
		Preview:        previewFromDomain(r.Preview),
		StructuredData: r.StructuredData,
	}
}

type LineItem struct {
	ProductID string `json:"productId"           validate:"required"`
	VariantID string `json:"variantId,omitempty"`
	Quantity  int    `json:"quantity"            validate:"min=1"`
}

type Location struct {
	Latitude  *float64 `json:"latitude"  validate:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"required,min=-180,max=180"`
}

// PlanInput is the body of POST /api/v1/policies/{id}/plan.
type PlanInput struct {
	Items               []LineItem  `json:"items"                         validate:"required,min=1,dive"`
	Destination         Destination `json:"destination"`
	DestinationLocation *Location   `json:"destinationLocation,omitempty"`
	Carrier             string      `json:"carrier,omitempty"             validate:"max=64"`
	Advanced            bool        `json:"advanced"`
	Strategy            string      `json:"strategy,omitempty"            validate:"omitempty,oneof=roundRobin nearest stockAware"`
	Now                 *time.Time  `json:"now,omitempty"`
	Timezone            string      `json:"timezone,omitempty"            validate:"max=64"`
}

func (in PlanInput) params(policyID kernel.UUID, now time.Time) (queries.PlanShipmentParams, error) {
	var errList []error

	items := make([]warehouse.LineItem, 0, len(in.Items))
	for _, it := range in.Items {
		item, err := warehouse.NewLineItem(it.ProductID, it.VariantID, it.Quantity)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		items = append(items, item)
	}

	var location kernel.Coordinates
	if in.DestinationLocation != nil && in.DestinationLocation.Latitude != nil && in.DestinationLocation.Longitude != nil {
		loc, err := kernel.NewCoordinates(*in.DestinationLocation.Latitude, *in.DestinationLocation.Longitude)
		if err != nil {
			errList = append(errList, err)
		}
		location = loc
	}

	strategy, err := queries.ParseAllocationStrategy(in.Strategy)
	if err != nil {
		errList = append(errList, err)
	}

	if err := errors.Join(errList...); err != nil {
		return queries.PlanShipmentParams{}, err
	}

	return queries.PlanShipmentParams{
		PolicyID:            policyID,
		Items:               items,
		Now:                 now,
		Destination:         in.Destination.toDomain(),
		DestinationLocation: location,
		Carrier:             in.Carrier,
		Advanced:            in.Advanced,
		Strategy:            strategy,
	}, nil
}

type Package struct {
	Warehouse string     `json:"warehouse"`
	Items     []LineItem `json:"items"`
	Estimate  Estimate   `json:"estimate"`
}

type Plan struct {
	Packages                    []Package  `json:"packages"`
	TotalPackages               int        `json:"totalPackages"`
	MinDate                     types.Date `json:"minDate"`
	MaxDate                     types.Date `json:"maxDate"`
	EstimatedDeliveryRangeLabel string     `json:"estimatedDeliveryRangeLabel"`
}

func planFromDomain(p services.Plan) Plan {
	out := Plan{
		Packages:                    make([]Package, 0, len(p.Packages)),
		TotalPackages:               p.TotalPackages(),
		MinDate:                     types.Date{Time: p.MinDate},
		MaxDate:                     types.Date{Time: p.MaxDate},
		EstimatedDeliveryRangeLabel: p.EstimatedDeliveryRangeLabel,
	}
	for _, pkg := range p.Packages {
		items := make([]LineItem, 0, len(pkg.Items))
		for _, it := range pkg.Items {
			items = append(items, LineItem{
				ProductID: it.ProductID(),
				VariantID: it.VariantID(),
				Quantity:  it.Quantity(),
			})
		}
		out.Packages = append(out.Packages, Package{
			Warehouse: pkg.Warehouse.Code(),
			Items:     items,
			Estimate:  estimateFromDomain(pkg.Estimate),
		})
	}
	return out
}

// WarehouseInput is the body of POST /api/v1/warehouses. IsActive defaults to true.
type WarehouseInput struct {
	Code                   string         `json:"code"                   validate:"required,max=32"`
	Name                   string         `json:"name,omitempty"         validate:"max=255"`
	Latitude               *float64       `json:"latitude"               validate:"required,min=-90,max=90"`
	Longitude              *float64       `json:"longitude"              validate:"required,min=-180,max=180"`
	CutoffHour             *int           `json:"cutoffHour"             validate:"required,min=0,max=23"`
	WeekendDispatchAllowed bool           `json:"weekendDispatchAllowed"`
	IsActive               *bool          `json:"isActive,omitempty"`
	Stock                  map[string]int `json:"stock,omitempty"        validate:"omitempty,dive,min=0"`
}

func (in WarehouseInput) params() (warehouse.Params, error) {
	if err := errors.Join(
		required("latitude", in.Latitude == nil),
		required("longitude", in.Longitude == nil),
		required("cutoffHour", in.CutoffHour == nil),
	); err != nil {
		return warehouse.Params{}, err
	}
	location, err := kernel.NewCoordinates(*in.Latitude, *in.Longitude)
	if err != nil {
		return warehouse.Params{}, err
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	return warehouse.Params{
		Code:                   in.Code,
		Name:                   in.Name,
		Location:               location,
		CutoffHour:             *in.CutoffHour,
		WeekendDispatchAllowed: in.WeekendDispatchAllowed,
		IsActive:               active,
		Stock:                  in.Stock,
	}, nil
}

type Warehouse struct {
	Code                   string  `json:"code"`
	Name                   string  `json:"name"`
	Latitude               float64 `json:"latitude"`
	Longitude              float64 `json:"longitude"`
	CutoffHour             int     `json:"cutoffHour"`
	WeekendDispatchAllowed bool    `json:"weekendDispatchAllowed"`
}

func warehouseFromDomain(w *warehouse.Warehouse) Warehouse {
	return Warehouse{
		Code:                   w.Code(),
		Name:                   w.Name(),
		Latitude:               w.Location().Latitude(),
		Longitude:              w.Location().Longitude(),
		CutoffHour:             w.CutoffHour(),
		WeekendDispatchAllowed: w.WeekendDispatchAllowed(),
	}
}

func warehouseFromReadModel(w queries.GetActiveWarehousesQueryResponse) Warehouse {
	return Warehouse{
		Code:                   w.Code,
		Name:                   w.Name,
		Latitude:               w.Latitude,
		Longitude:              w.Longitude,
		CutoffHour:             w.CutoffHour,
		WeekendDispatchAllowed: w.WeekendDispatchAllowed,
	}
}

func required(name string, missing bool) error {
	if missing {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

func optional(v int, ok bool) *int {
	if !ok {
		return nil
	}
	return &v
}
