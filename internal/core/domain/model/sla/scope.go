package sla

import (
	"path"
	"strings"

	"eta/internal/core/domain/model/kernel"
)

// Destination is where a package is delivered. Every field is optional.
type Destination struct {
	PostalCode string
	District   string
	Province   string
	Region     string
}

// Scope is the part of the map a Rule applies to. Empty fields are not declared.
type Scope struct {
	postalPattern string
	district      string
	province      string
	region        string
}

// NewScope trims every field and upper-cases the region code.
func NewScope(postalPattern, district, province, region string) Scope {
	return Scope{
		postalPattern: strings.TrimSpace(postalPattern),
		district:      strings.TrimSpace(district),
		province:      strings.TrimSpace(province),
		region:        kernel.NormalizeRegion(region),
	}
}

func (s Scope) PostalPattern() string { return s.postalPattern }

func (s Scope) District() string { return s.district }

func (s Scope) Province() string { return s.province }

func (s Scope) Region() string { return s.region }

// IsEmpty reports whether no scope field is declared.
func (s Scope) IsEmpty() bool {
	return s.postalPattern == "" && s.district == "" && s.province == "" && s.region == ""
}

// Matches reports whether the field of tier is declared and matches dest.
// Postal patterns use shell glob syntax ("34*", "0?100"); names compare case-insensitively.
func (s Scope) Matches(tier Tier, dest Destination) bool {
	switch tier {
	case TierPostal:
		if s.postalPattern == "" || dest.PostalCode == "" {
			return false
		}
		ok, err := path.Match(s.postalPattern, strings.TrimSpace(dest.PostalCode))
		return err == nil && ok
	case TierDistrict:
		return s.district != "" && strings.EqualFold(s.district, strings.TrimSpace(dest.District))
	case TierProvince:
		return s.province != "" && strings.EqualFold(s.province, strings.TrimSpace(dest.Province))
	case TierRegion:
		return s.region != "" && s.region == kernel.NormalizeRegion(dest.Region)
	case TierNone:
		return false
	}
	return false
}

// BestTier returns the most specific tier at which s matches dest, or TierNone.
func (s Scope) BestTier(dest Destination) Tier {
	for _, tier := range Tiers {
		if s.Matches(tier, dest) {
			return tier
		}
	}
	return TierNone
}
