package policy

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"eta/internal/core/domain/model/kernel"
	"eta/internal/pkg/errs"
)

const (
	// MinCutoffHour and MaxCutoffHour bound the local order cutoff hour.
	MinCutoffHour = 0
	MaxCutoffHour = 23
	// DefaultCapacityFactor is used by rule based estimation when none is configured.
	DefaultCapacityFactor = 1.0
)

var ErrShippingPolicyIsNotConstructed = errors.New("ShippingPolicy must be created via NewShippingPolicy constructor")

// ShippingPolicy is the set of rules a seller (or a single product) uses to
// estimate handling time. It is immutable once built; WithDispatchRules
// derives a copy for a specific warehouse.
type ShippingPolicy struct {
	id                     kernel.UUID
	name                   string
	productionKind         ProductionKind
	estimateMode           EstimateMode
	businessDaysOnly       bool
	weekendDispatchAllowed bool
	cutoffHour             int
	fixedDays              *int
	minDays                *int
	maxDays                *int
	dailyCapacity          *int
	backlogUnits           *int
	capacityFactor         *float64
	regionOverrides        []RegionOverride
	blackouts              map[kernel.CalendarDate]BlackoutDate

	isConstructed bool
}

// Params carries the inputs of NewShippingPolicy. Optional settings are pointers.
type Params struct {
	ID                     kernel.UUID
	Name                   string
	ProductionKind         ProductionKind
	EstimateMode           EstimateMode
	BusinessDaysOnly       bool
	WeekendDispatchAllowed bool
	CutoffHour             int
	FixedDays              *int
	MinDays                *int
	MaxDays                *int
	DailyCapacity          *int
	BacklogUnits           *int
	CapacityFactor         *float64
	RegionOverrides        []RegionOverride
	BlackoutDates          []BlackoutDate
}

// NewShippingPolicy validates every field and the cross-field invariants and
// returns all violations joined.
func NewShippingPolicy(p Params) (*ShippingPolicy, error) {
	sp := &ShippingPolicy{
		name:                   strings.TrimSpace(p.Name),
		businessDaysOnly:       p.BusinessDaysOnly,
		weekendDispatchAllowed: p.WeekendDispatchAllowed,
		isConstructed:          true,
	}

	if err := errors.Join(
		sp.setID(p.ID),
		sp.setKindAndMode(p.ProductionKind, p.EstimateMode),
		sp.setCutoffHour(p.CutoffHour),
		sp.setWindow(p.EstimateMode, p.FixedDays, p.MinDays, p.MaxDays),
		sp.setCapacity(p.ProductionKind, p.EstimateMode, p.DailyCapacity, p.BacklogUnits, p.CapacityFactor),
		sp.setRegionOverrides(p.RegionOverrides),
		sp.setBlackoutDates(p.BlackoutDates),
	); err != nil {
		return nil, err
	}

	return sp, nil
}

func (p *ShippingPolicy) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrShippingPolicyIsNotConstructed
	}
	return nil
}

func (p *ShippingPolicy) ID() kernel.UUID { return p.id }

func (p *ShippingPolicy) Name() string { return p.name }

func (p *ShippingPolicy) ProductionKind() ProductionKind { return p.productionKind }

func (p *ShippingPolicy) EstimateMode() EstimateMode { return p.estimateMode }

func (p *ShippingPolicy) IsHandmade() bool { return p.productionKind == Handmade }

func (p *ShippingPolicy) BusinessDaysOnly() bool { return p.businessDaysOnly }

func (p *ShippingPolicy) WeekendDispatchAllowed() bool { return p.weekendDispatchAllowed }

func (p *ShippingPolicy) CutoffHour() int { return p.cutoffHour }

func (p *ShippingPolicy) FixedDays() (int, bool) { return deref(p.fixedDays) }

func (p *ShippingPolicy) MinDays() (int, bool) { return deref(p.minDays) }

func (p *ShippingPolicy) MaxDays() (int, bool) { return deref(p.maxDays) }

func (p *ShippingPolicy) DailyCapacity() (int, bool) { return deref(p.dailyCapacity) }

func (p *ShippingPolicy) BacklogUnits() (int, bool) { return deref(p.backlogUnits) }

// CapacityFactor returns the configured factor or DefaultCapacityFactor.
func (p *ShippingPolicy) CapacityFactor() float64 {
	if p.capacityFactor == nil {
		return DefaultCapacityFactor
	}
	return *p.capacityFactor
}

// HasCapacityFactor reports whether a capacity factor was configured explicitly.
func (p *ShippingPolicy) HasCapacityFactor() bool { return p.capacityFactor != nil }

// RegionOverrides returns a copy of the overrides in declaration order.
func (p *ShippingPolicy) RegionOverrides() []RegionOverride {
	return slices.Clone(p.regionOverrides)
}

// OverrideFor returns the override declared for region, if any.
func (p *ShippingPolicy) OverrideFor(region string) (RegionOverride, bool) {
	region = kernel.NormalizeRegion(region)
	if region == "" {
		return RegionOverride{}, false
	}
	for _, o := range p.regionOverrides {
		if o.region == region {
			return o, true
		}
	}
	return RegionOverride{}, false
}

// BlackoutDates returns the blackout days sorted chronologically.
func (p *ShippingPolicy) BlackoutDates() []BlackoutDate {
	out := make([]BlackoutDate, 0, len(p.blackouts))
	for _, b := range p.blackouts {
		out = append(out, b)
	}
	slices.SortFunc(out, func(a, b BlackoutDate) int {
		switch {
		case a.date.Before(b.date):
			return -1
		case b.date.Before(a.date):
			return 1
		default:
			return 0
		}
	})
	return out
}

// IsBlackout reports whether d is excluded from production and dispatch.
func (p *ShippingPolicy) IsBlackout(d kernel.CalendarDate) bool {
	_, ok := p.blackouts[d]
	return ok
}

// WithDispatchRules returns a copy that dispatches with the given cutoff hour
// and weekend rule, as a specific warehouse does. The receiver is unchanged.
func (p *ShippingPolicy) WithDispatchRules(cutoffHour int, weekendDispatchAllowed bool) (*ShippingPolicy, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	cp := *p
	if err := cp.setCutoffHour(cutoffHour); err != nil {
		return nil, err
	}
	cp.weekendDispatchAllowed = weekendDispatchAllowed
	return &cp, nil
}

func (p *ShippingPolicy) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *ShippingPolicy) setKindAndMode(kind ProductionKind, mode EstimateMode) error {
	if err := errors.Join(kind.Validate(), mode.Validate()); err != nil {
		return err
	}
	p.productionKind = kind
	p.estimateMode = mode
	return nil
}

func (p *ShippingPolicy) setCutoffHour(hour int) error {
	if hour < MinCutoffHour || hour > MaxCutoffHour {
		return errs.NewValueIsOutOfRangeError("cutoffHour", hour, MinCutoffHour, MaxCutoffHour)
	}
	p.cutoffHour = hour
	return nil
}

func (p *ShippingPolicy) setWindow(mode EstimateMode, fixedDays, minDays, maxDays *int) error {
	if err := validateWindow(mode, fixedDays, minDays, maxDays); err != nil {
		return err
	}
	p.fixedDays = copyInt(fixedDays)
	p.minDays = copyInt(minDays)
	p.maxDays = copyInt(maxDays)
	return nil
}

func (p *ShippingPolicy) setCapacity(
	kind ProductionKind,
	mode EstimateMode,
	dailyCapacity, backlogUnits *int,
	capacityFactor *float64,
) error {
	var errList []error

	if kind == Handmade && mode == RuleBased {
		if dailyCapacity == nil {
			errList = append(errList, errs.NewValueIsRequiredErrorWithCause(
				"dailyCapacity", fmt.Errorf("handmade policy uses %s estimation", mode)))
		}
		if backlogUnits == nil {
			errList = append(errList, errs.NewValueIsRequiredErrorWithCause(
				"backlogUnits", fmt.Errorf("handmade policy uses %s estimation", mode)))
		}
	}
	if dailyCapacity != nil && *dailyCapacity < 1 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"dailyCapacity", fmt.Errorf("%d is not greater than 0", *dailyCapacity)))
	}
	if backlogUnits != nil && *backlogUnits < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"backlogUnits", fmt.Errorf("%d is negative", *backlogUnits)))
	}
	if capacityFactor != nil {
		if err := validateCapacityFactor(*capacityFactor); err != nil {
			errList = append(errList, err)
		}
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	p.dailyCapacity = copyInt(dailyCapacity)
	p.backlogUnits = copyInt(backlogUnits)
	if capacityFactor != nil {
		f := *capacityFactor
		p.capacityFactor = &f
	}
	return nil
}

func (p *ShippingPolicy) setRegionOverrides(overrides []RegionOverride) error {
	seen := make(map[string]struct{}, len(overrides))
	for _, o := range overrides {
		if err := o.Validate(); err != nil {
			return err
		}
		if _, dup := seen[o.region]; dup {
			return errs.NewValueIsInvalidErrorWithCause(
				"regionOverrides", fmt.Errorf("region %s is declared more than once", o.region))
		}
		seen[o.region] = struct{}{}
	}
	p.regionOverrides = slices.Clone(overrides)
	return nil
}

func (p *ShippingPolicy) setBlackoutDates(dates []BlackoutDate) error {
	p.blackouts = make(map[kernel.CalendarDate]BlackoutDate, len(dates))
	for _, d := range dates {
		if err := d.Validate(); err != nil {
			return err
		}
		p.blackouts[d.date] = d
	}
	return nil
}
