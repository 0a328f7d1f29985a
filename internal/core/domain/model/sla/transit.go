package sla

// Transit is a resolved transit window.
type Transit struct {
	min         int
	max         int
	carrier     string
	tier        Tier
	fromDefault bool
}

// NewTransit describes a window resolved from a matching rule at tier.
func NewTransit(lo, hi int, carrier string, tier Tier) Transit {
	return Transit{min: lo, max: hi, carrier: carrier, tier: tier}
}

// NewDefaultTransit describes a window taken from the default table.
func NewDefaultTransit(d DefaultTransit) Transit {
	return Transit{min: d.TransitMin, max: d.TransitMax, carrier: d.Carrier, tier: TierNone, fromDefault: true}
}

func (t Transit) Min() int { return t.min }

func (t Transit) Max() int { return t.max }

func (t Transit) Carrier() string { return t.carrier }

// Tier is the matched scope tier, TierNone for default table results.
func (t Transit) Tier() Tier { return t.tier }

func (t Transit) FromDefault() bool { return t.fromDefault }
