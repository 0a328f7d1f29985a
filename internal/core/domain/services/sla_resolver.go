package services

import (
	"eta/internal/core/domain/model/sla"
)

// SlaResolver finds the transit window for a destination.
//
// Rules whose carrier differs from the requested one are ignored. Among the
// rest, the rule matching the most specific tier of sla.Tiers wins; ties go
// to the rule declared first. When nothing matches, the default table entry
// of the destination region (or OTHER) is returned, so Resolve never comes
// back empty.
type SlaResolver struct{}

func NewSlaResolver() SlaResolver {
	return SlaResolver{}
}

// Resolve returns the transit window for dest. A nil rules set behaves like
// sla.EmptyRuleSet.
func (SlaResolver) Resolve(dest sla.Destination, carrier string, rules *sla.RuleSet) sla.Transit {
	var (
		best     sla.Rule
		bestTier = sla.TierNone
	)

	for _, r := range rules.Rules() {
		if !r.ServesCarrier(carrier) {
			continue
		}
		if tier := r.Scope().BestTier(dest); tier.MoreSpecificThan(bestTier) {
			best, bestTier = r, tier
		}
	}

	if bestTier == sla.TierNone {
		return sla.NewDefaultTransit(rules.Defaults().Lookup(dest.Region))
	}

	lo, hi := best.Transit()
	return sla.NewTransit(lo, hi, best.Carrier(), bestTier)
}
