package policy_test

import (
	"testing"

	"eta/internal/core/domain/model/policy"
	"eta/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegionOverride(t *testing.T) {
	t.Run("range override", func(t *testing.T) {
		o, err := policy.NewRegionOverride(policy.RegionOverrideParams{
			Region: "mena", Mode: policy.Range, MinDays: intPtr(3), MaxDays: intPtr(6), Note: " customs ",
		})
		require.NoError(t, err)

		assert.Equal(t, "MENA", o.Region())
		lo, _ := o.MinDays()
		hi, _ := o.MaxDays()
		assert.Equal(t, 3, lo)
		assert.Equal(t, 6, hi)
		assert.Equal(t, "customs", o.Note())
		assert.Empty(t, o.Carrier())
		_, hasFixed := o.FixedDays()
		assert.False(t, hasFixed)
	})

	t.Run("rule based is not allowed", func(t *testing.T) {
		_, err := policy.NewRegionOverride(policy.RegionOverrideParams{Region: "US", Mode: policy.RuleBased})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("missing region and days", func(t *testing.T) {
		o, err := policy.NewRegionOverride(policy.RegionOverrideParams{Mode: policy.Fixed})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, policy.ErrRegionOverrideIsNotConstructed, o.Validate())
	})

	t.Run("input pointers are copied", func(t *testing.T) {
		days := 4
		o, err := policy.NewRegionOverride(policy.RegionOverrideParams{Region: "EU", Mode: policy.Fixed, FixedDays: &days})
		require.NoError(t, err)

		days = 40
		got, _ := o.FixedDays()
		assert.Equal(t, 4, got)
	})
}

func TestParseEnums(t *testing.T) {
	mode, err := policy.ParseEstimateMode("ruleBased")
	require.NoError(t, err)
	assert.Equal(t, policy.RuleBased, mode)
	assert.Equal(t, "ruleBased", mode.String())

	_, err = policy.ParseEstimateMode("weekly")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	kind, err := policy.ParseProductionKind("handmade")
	require.NoError(t, err)
	assert.Equal(t, policy.Handmade, kind)

	_, err = policy.ParseProductionKind("")
	require.Error(t, err)

	assert.Equal(t, "unknown", policy.EstimateMode(42).String())
	require.ErrorIs(t, policy.ProductionKind(42).Validate(), errs.ErrValueIsInvalid)
}
