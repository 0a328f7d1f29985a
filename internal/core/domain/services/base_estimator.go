package services

import (
	"math"
	"time"

	"eta/internal/core/domain/model/estimate"
	"eta/internal/core/domain/model/kernel"
	"eta/internal/core/domain/model/policy"
)

const (
	// fallbackDays is the window used when a mode cannot produce one.
	fallbackDays = 1
	// bufferNumerator/bufferDenominator is the 20% buffer of rule based estimates.
	bufferNumerator   = 6
	bufferDenominator = 5
	// ceilTolerance absorbs float noise such as 10 × 1.1 = 11.000000000000002.
	ceilTolerance = 1e-9

	labelDateLayout = "Mon, Jan 2"
	labelRangeSep   = " – "
)

// Window is the handling window a policy resolves to for a region.
type Window struct {
	MinDays int
	MaxDays int
	// Carrier and Note come from the region override, if one applied.
	Carrier string
	Note    string
	// Overridden is true when a region override superseded the policy.
	Overridden bool
}

// BaseEstimator turns a ShippingPolicy into ship dates.
//
// Algorithm:
//   - A region override, when present, supersedes the policy's mode and days
//   - fixed and range modes use the configured days
//   - ruleBased takes ceil((backlog+1)/capacity) production days, scales them by
//     the capacity factor and adds a 20% buffer for the upper bound
//   - Orders at or after the cutoff hour start the next calendar day
//   - The start skips blackouts, both ends are stepped (business days when
//     configured) and then moved off weekends and blackouts
//
// Example usage:
//
//	est, err := services.NewBaseEstimator().Estimate(sp, now, "EU")
//	if err != nil {
//	    // policy was not constructed
//	}
//	fmt.Println(est.FormattedRange()) // Tue, Oct 13 – Wed, Oct 14
type BaseEstimator struct {
	dates DateAdjuster
}

func NewBaseEstimator() BaseEstimator {
	return BaseEstimator{dates: NewDateAdjuster()}
}

// ResolveWindow returns the handling window of p for region ("" for no region).
func (b BaseEstimator) ResolveWindow(p *policy.ShippingPolicy, region string) Window {
	if o, ok := p.OverrideFor(region); ok {
		lo, hi := windowFor(o.Mode(), o.FixedDays, o.MinDays, o.MaxDays, nil)
		return Window{MinDays: lo, MaxDays: hi, Carrier: o.Carrier(), Note: o.Note(), Overridden: true}
	}

	lo, hi := windowFor(p.EstimateMode(), p.FixedDays, p.MinDays, p.MaxDays, p)
	return Window{MinDays: lo, MaxDays: hi}
}

// Estimate computes the base estimate of p for an order placed at now.
func (b BaseEstimator) Estimate(p *policy.ShippingPolicy, now time.Time, region string) (estimate.Estimate, error) {
	if err := p.Validate(); err != nil {
		return estimate.Estimate{}, err
	}

	w := b.ResolveWindow(p, region)
	lo, hi := b.ShipDates(p, now, w)

	return estimate.NewEstimate(estimate.Params{
		MinDays:        w.MinDays,
		MaxDays:        w.MaxDays,
		ShipMinDate:    lo,
		ShipMaxDate:    hi,
		FormattedRange: FormatRange(lo, hi),
		Carrier:        w.Carrier,
		Note:           w.Note,
	})
}

// ShipDates places window w on the calendar of p for an order placed at now.
// Both dates are midnight in now's location.
func (b BaseEstimator) ShipDates(p *policy.ShippingPolicy, now time.Time, w Window) (time.Time, time.Time) {
	start := b.dates.StartOfDay(now)
	if b.dates.IsPastCutoff(now, p.CutoffHour()) {
		start = start.AddDate(0, 0, 1)
	}
	start = b.dates.SkipBlackouts(start, p)

	lo := b.dates.StepDays(start, w.MinDays, p.BusinessDaysOnly())
	hi := b.dates.StepDays(start, w.MaxDays, p.BusinessDaysOnly())

	lo = b.dates.SettleDispatchDate(lo, p.WeekendDispatchAllowed(), p)
	hi = b.dates.SettleDispatchDate(hi, p.WeekendDispatchAllowed(), p)
	return lo, hi
}

type daysGetter func() (int, bool)

// windowFor resolves a mode into (min, max) days. capacity is nil for region
// overrides, which cannot be rule based.
func windowFor(mode policy.EstimateMode, fixed, lo, hi daysGetter, capacity *policy.ShippingPolicy) (int, int) {
	switch mode {
	case policy.Fixed:
		if d, ok := fixed(); ok {
			return d, d
		}
	case policy.Range:
		minDays, okLo := lo()
		maxDays, okHi := hi()
		if okLo && okHi && minDays <= maxDays {
			return minDays, maxDays
		}
	case policy.RuleBased:
		if capacity != nil {
			return ruleBasedWindow(capacity)
		}
	case policy.EstimateModeUnknown:
	}
	return fallbackDays, fallbackDays
}

func ruleBasedWindow(p *policy.ShippingPolicy) (int, int) {
	capacity, okCap := p.DailyCapacity()
	backlog, okBacklog := p.BacklogUnits()
	if !okCap || !okBacklog || capacity < 1 {
		return fallbackDays, fallbackDays
	}

	units := backlog + 1
	productionDays := (units + capacity - 1) / capacity
	minDays := ceilDays(float64(productionDays) * p.CapacityFactor())
	maxDays := (minDays*bufferNumerator + bufferDenominator - 1) / bufferDenominator
	return minDays, maxDays
}

func ceilDays(v float64) int {
	return int(math.Ceil(v - ceilTolerance))
}

// FormatRange renders a date window as "Tue, Oct 13", or "Tue, Oct 13 – Fri, Oct 16"
// when the ends fall on different days.
func FormatRange(lo, hi time.Time) string {
	if kernel.CalendarDateOf(lo) == kernel.CalendarDateOf(hi) {
		return lo.Format(labelDateLayout)
	}
	return lo.Format(labelDateLayout) + labelRangeSep + hi.Format(labelDateLayout)
}
