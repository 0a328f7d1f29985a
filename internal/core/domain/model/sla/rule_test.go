package sla_test

import (
	"testing"

	"eta/internal/core/domain/model/sla"
	"eta/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRule(t *testing.T) {
	tests := []struct {
		name    string
		params  sla.RuleParams
		wantErr error
	}{
		{
			name: "region rule",
			params: sla.RuleParams{
				Scope: sla.NewScope("", "", "", "eu"), Carrier: "DHL", TransitMin: 2, TransitMax: 4,
			},
		},
		{
			name: "postal glob with remote factor",
			params: sla.RuleParams{
				Scope: sla.NewScope("34*", "", "", ""), Carrier: "Yurtici", TransitMin: 1, TransitMax: 2, RemoteAreaFactor: 1.5,
			},
		},
		{
			name:    "empty scope",
			params:  sla.RuleParams{Carrier: "DHL", TransitMin: 1, TransitMax: 2},
			wantErr: errs.ErrValueIsRequired,
		},
		{
			name:    "missing carrier",
			params:  sla.RuleParams{Scope: sla.NewScope("", "", "", "US"), TransitMin: 1, TransitMax: 2},
			wantErr: errs.ErrValueIsRequired,
		},
		{
			name:    "max below min",
			params:  sla.RuleParams{Scope: sla.NewScope("", "", "", "US"), Carrier: "UPS", TransitMin: 5, TransitMax: 2},
			wantErr: errs.ErrValueIsInvalid,
		},
		{
			name: "remote factor above range",
			params: sla.RuleParams{
				Scope: sla.NewScope("", "", "", "US"), Carrier: "UPS", TransitMin: 1, TransitMax: 2, RemoteAreaFactor: 3.5,
			},
			wantErr: errs.ErrValueIsOutOfRange,
		},
		{
			name:    "malformed postal pattern",
			params:  sla.RuleParams{Scope: sla.NewScope("[0-", "", "", ""), Carrier: "UPS", TransitMin: 1, TransitMax: 2},
			wantErr: errs.ErrValueIsInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := sla.NewRule(tt.params)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, sla.ErrRuleIsNotConstructed, rule.Validate())
				return
			}
			require.NoError(t, err)
			require.NoError(t, rule.Validate())
		})
	}
}

func TestRule_Transit(t *testing.T) {
	plain, err := sla.NewRule(sla.RuleParams{Scope: sla.NewScope("", "", "", "EU"), Carrier: "DHL", TransitMin: 2, TransitMax: 5})
	require.NoError(t, err)
	lo, hi := plain.Transit()
	assert.Equal(t, 2, lo)
	assert.Equal(t, 5, hi)
	assert.InDelta(t, 1.0, plain.RemoteAreaFactor(), 1e-9)

	remote, err := sla.NewRule(sla.RuleParams{
		Scope: sla.NewScope("", "", "", "EU"), Carrier: "DHL", TransitMin: 2, TransitMax: 5, RemoteAreaFactor: 1.5,
	})
	require.NoError(t, err)
	lo, hi = remote.Transit()
	assert.Equal(t, 3, lo)
	assert.Equal(t, 8, hi)
}

func TestRule_ServesCarrier(t *testing.T) {
	rule, err := sla.NewRule(sla.RuleParams{Scope: sla.NewScope("", "", "", "EU"), Carrier: "DHL", TransitMin: 2, TransitMax: 5})
	require.NoError(t, err)

	assert.True(t, rule.ServesCarrier(""))
	assert.True(t, rule.ServesCarrier("dhl"))
	assert.False(t, rule.ServesCarrier("UPS"))
}

func TestScope_BestTier(t *testing.T) {
	scope := sla.NewScope("34*", "Kadikoy", "Istanbul", "domestic")

	assert.Equal(t, sla.TierPostal, scope.BestTier(sla.Destination{PostalCode: "34710", Region: "DOMESTIC"}))
	assert.Equal(t, sla.TierDistrict, scope.BestTier(sla.Destination{PostalCode: "06100", District: "kadikoy"}))
	assert.Equal(t, sla.TierProvince, scope.BestTier(sla.Destination{Province: "ISTANBUL"}))
	assert.Equal(t, sla.TierRegion, scope.BestTier(sla.Destination{Region: " Domestic "}))
	assert.Equal(t, sla.TierNone, scope.BestTier(sla.Destination{Region: "EU"}))
	assert.Equal(t, sla.TierNone, scope.BestTier(sla.Destination{}))
}

func TestTiers_Ranking(t *testing.T) {
	for i := 1; i < len(sla.Tiers); i++ {
		assert.True(t, sla.Tiers[i-1].MoreSpecificThan(sla.Tiers[i]), "%s must outrank %s", sla.Tiers[i-1], sla.Tiers[i])
	}
	assert.True(t, sla.TierRegion.MoreSpecificThan(sla.TierNone))
	assert.Equal(t, 0, sla.TierNone.Rank())
	assert.Equal(t, "postal", sla.TierPostal.String())
}
