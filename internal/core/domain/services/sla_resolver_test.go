package services_test

import (
	"testing"

	"eta/internal/core/domain/model/sla"
	"eta/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rule(t *testing.T, scope sla.Scope, carrier string, lo, hi int) sla.Rule {
	t.Helper()
	r, err := sla.NewRule(sla.RuleParams{Scope: scope, Carrier: carrier, TransitMin: lo, TransitMax: hi})
	require.NoError(t, err)
	return r
}

func ruleSet(t *testing.T, rules ...sla.Rule) *sla.RuleSet {
	t.Helper()
	set, err := sla.NewRuleSet(rules, sla.BuiltinDefaultTable())
	require.NoError(t, err)
	return set
}

func TestSlaResolver_Resolve(t *testing.T) {
	rules := ruleSet(t,
		rule(t, sla.NewScope("", "", "", "DOMESTIC"), "Yurtici", 2, 3),
		rule(t, sla.NewScope("", "", "Istanbul", ""), "Yurtici", 1, 2),
		rule(t, sla.NewScope("", "Kadikoy", "", ""), "Aras", 1, 1),
		rule(t, sla.NewScope("347*", "", "", ""), "Courier Co", 0, 1),
		rule(t, sla.NewScope("", "", "Istanbul", ""), "MNG", 3, 4),
	)
	resolver := services.NewSlaResolver()

	tests := []struct {
		name        string
		dest        sla.Destination
		carrier     string
		wantCarrier string
		wantTier    sla.Tier
		wantMin     int
	}{
		{
			name:        "postal beats everything",
			dest:        sla.Destination{PostalCode: "34710", District: "Kadikoy", Province: "Istanbul", Region: "DOMESTIC"},
			wantCarrier: "Courier Co", wantTier: sla.TierPostal, wantMin: 0,
		},
		{
			name:        "district beats province",
			dest:        sla.Destination{PostalCode: "34000", District: "kadikoy", Province: "Istanbul"},
			wantCarrier: "Aras", wantTier: sla.TierDistrict, wantMin: 1,
		},
		{
			name:        "province tie goes to the first declared",
			dest:        sla.Destination{Province: "Istanbul", Region: "DOMESTIC"},
			wantCarrier: "Yurtici", wantTier: sla.TierProvince, wantMin: 1,
		},
		{
			name:        "carrier filter excludes better rules",
			dest:        sla.Destination{PostalCode: "34710", District: "Kadikoy", Province: "Istanbul"},
			carrier:     "mng",
			wantCarrier: "MNG", wantTier: sla.TierProvince, wantMin: 3,
		},
		{
			name:        "region match",
			dest:        sla.Destination{Province: "Ankara", Region: "domestic"},
			wantCarrier: "Yurtici", wantTier: sla.TierRegion, wantMin: 2,
		},
		{
			name:        "no match uses default table",
			dest:        sla.Destination{Region: "MENA"},
			wantCarrier: "Aramex", wantTier: sla.TierNone, wantMin: 3,
		},
		{
			name:        "unknown region defaults to OTHER",
			dest:        sla.Destination{Region: "ANTARCTICA"},
			wantCarrier: "Standard International", wantTier: sla.TierNone, wantMin: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolver.Resolve(tt.dest, tt.carrier, rules)

			assert.Equal(t, tt.wantCarrier, got.Carrier())
			assert.Equal(t, tt.wantTier, got.Tier())
			assert.Equal(t, tt.wantMin, got.Min())
			assert.Equal(t, tt.wantTier == sla.TierNone, got.FromDefault())
		})
	}
}

func TestSlaResolver_AlwaysResolves(t *testing.T) {
	resolver := services.NewSlaResolver()
	rules := ruleSet(t, rule(t, sla.NewScope("", "", "", "EU"), "DHL", 2, 4))

	for _, region := range []string{"", "EU", "US", "MENA", "DOMESTIC", "OTHER", "XX"} {
		for _, carrier := range []string{"", "DHL", "UPS"} {
			got := resolver.Resolve(sla.Destination{Region: region}, carrier, rules)
			assert.NotEmpty(t, got.Carrier(), "region %q carrier %q", region, carrier)
			assert.LessOrEqual(t, got.Min(), got.Max())
		}
	}

	assert.Equal(t, "FedEx", resolver.Resolve(sla.Destination{Region: "US"}, "", nil).Carrier())
}

func TestSlaResolver_RemoteAreaFactor(t *testing.T) {
	remote, err := sla.NewRule(sla.RuleParams{
		Scope: sla.NewScope("", "", "", "EU"), Carrier: "DHL", TransitMin: 3, TransitMax: 5, RemoteAreaFactor: 1.5,
	})
	require.NoError(t, err)

	got := services.NewSlaResolver().Resolve(sla.Destination{Region: "EU"}, "", ruleSet(t, remote))

	assert.Equal(t, 5, got.Min())
	assert.Equal(t, 8, got.Max())
}
