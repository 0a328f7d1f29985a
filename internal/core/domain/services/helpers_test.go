package services_test

import (
	"testing"
	"time"

	"eta/internal/core/domain/model/kernel"
	"eta/internal/core/domain/model/policy"

	"github.com/stretchr/testify/require"
)

// Monday, October 12 2026.
var monday = time.Date(2026, time.October, 12, 0, 0, 0, 0, time.UTC)

func at(day time.Time, hour int) time.Time {
	return day.Add(time.Duration(hour) * time.Hour)
}

func days(n int) *int { return &n }

func factor(f float64) *float64 { return &f }

func calendarDate(t *testing.T, y int, m time.Month, d int) kernel.CalendarDate {
	t.Helper()
	cd, err := kernel.NewCalendarDate(y, m, d)
	require.NoError(t, err)
	return cd
}

// scenarioPolicy is stocked, fixed 1 business day, no weekend dispatch, cutoff 16:00.
func scenarioPolicy(t *testing.T, mutate ...func(p *policy.Params)) *policy.ShippingPolicy {
	t.Helper()
	params := policy.Params{
		ID:               kernel.NewUUID(),
		Name:             "Scenario",
		ProductionKind:   policy.Stocked,
		EstimateMode:     policy.Fixed,
		BusinessDaysOnly: true,
		CutoffHour:       16,
		FixedDays:        days(1),
	}
	for _, m := range mutate {
		m(&params)
	}
	sp, err := policy.NewShippingPolicy(params)
	require.NoError(t, err)
	return sp
}

func euOverride(t *testing.T) policy.RegionOverride {
	t.Helper()
	o, err := policy.NewRegionOverride(policy.RegionOverrideParams{
		Region: "EU", Mode: policy.Fixed, FixedDays: days(5), Carrier: "DHL", Note: "Customs may add a day.",
	})
	require.NoError(t, err)
	return o
}
