package sla

// Tier is a scope specificity level.
type Tier int

const (
	// TierNone means no scope field matched.
	TierNone Tier = iota
	TierRegion
	TierProvince
	TierDistrict
	TierPostal
)

// Tiers lists the scope tiers from most to least specific. A rule matching
// an earlier tier always beats a rule matching a later one.
var Tiers = []Tier{TierPostal, TierDistrict, TierProvince, TierRegion}

func getTierStrings() map[Tier]string {
	return map[Tier]string{
		TierNone:     "none",
		TierRegion:   "region",
		TierProvince: "province",
		TierDistrict: "district",
		TierPostal:   "postal",
	}
}

func (t Tier) String() string {
	if str, ok := getTierStrings()[t]; ok {
		return str
	}
	return "none"
}

// Rank is the position of t in Tiers counted from the least specific end,
// so higher is more specific. TierNone and unknown tiers rank 0.
func (t Tier) Rank() int {
	for i, tier := range Tiers {
		if tier == t {
			return len(Tiers) - i
		}
	}
	return 0
}

// MoreSpecificThan reports whether t outranks other.
func (t Tier) MoreSpecificThan(other Tier) bool {
	return t.Rank() > other.Rank()
}
