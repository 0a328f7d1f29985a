package services

import (
	"strings"
	"time"

	"eta/internal/core/domain/model/estimate"
	"eta/internal/core/domain/model/policy"
	"eta/internal/core/domain/model/sla"
)

// EstimateComposer produces base (handling only) and advanced (handling plus
// carrier transit) estimates.
type EstimateComposer struct {
	base     BaseEstimator
	resolver SlaResolver
}

func NewEstimateComposer() EstimateComposer {
	return EstimateComposer{
		base:     NewBaseEstimator(),
		resolver: NewSlaResolver(),
	}
}

// Base is the BaseEstimator result for region.
func (c EstimateComposer) Base(p *policy.ShippingPolicy, now time.Time, region string) (estimate.Estimate, error) {
	return c.base.Estimate(p, now, region)
}

// Advanced adds the resolved transit window to the base ship dates, in
// calendar days. The carrier used to filter rules is the requested one, or
// the region override's carrier when none is requested. The estimate carries
// the carrier of the matched rule. On a default table fallback it keeps that
// filter carrier, and takes the table's carrier only when there is none.
func (c EstimateComposer) Advanced(
	p *policy.ShippingPolicy,
	now time.Time,
	dest sla.Destination,
	carrier string,
	rules *sla.RuleSet,
) (estimate.Estimate, error) {
	base, err := c.base.Estimate(p, now, dest.Region)
	if err != nil {
		return estimate.Estimate{}, err
	}

	if strings.TrimSpace(carrier) == "" {
		carrier = base.Carrier()
	}
	transit := c.resolver.Resolve(dest, carrier, rules)
	resolvedCarrier := transit.Carrier()
	if transit.FromDefault() && strings.TrimSpace(carrier) != "" {
		resolvedCarrier = carrier
	}

	advanced, err := estimate.NewEstimate(estimate.Params{
		MinDays:     base.MinDays(),
		MaxDays:     base.MaxDays(),
		ShipMinDate: base.ShipMinDate(),
		ShipMaxDate: base.ShipMaxDate(),
		Carrier:     resolvedCarrier,
		Note:        base.Note(),
		Transit:     &estimate.Transit{Min: transit.Min(), Max: transit.Max()},
	})
	if err != nil {
		return estimate.Estimate{}, err
	}

	return advanced.WithFormattedRange(FormatRange(advanced.MinDate(), advanced.MaxDate())), nil
}
