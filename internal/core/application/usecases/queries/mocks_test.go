package queries_test

import (
	"context"
	"testing"
	"time"

	"eta/internal/core/domain/model/kernel"
	"eta/internal/core/domain/model/policy"
	"eta/internal/core/domain/model/sla"
	"eta/internal/core/domain/model/warehouse"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Monday, October 12 2026, 10:00 UTC.
var mondayMorning = time.Date(2026, time.October, 12, 10, 0, 0, 0, time.UTC)

type MockPolicyReader struct {
	mock.Mock
}

func (m *MockPolicyReader) Get(ctx context.Context, id kernel.UUID) (*policy.ShippingPolicy, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*policy.ShippingPolicy)
	return p, args.Error(1)
}

type MockWarehouseReader struct {
	mock.Mock
}

func (m *MockWarehouseReader) GetAllActive(ctx context.Context) ([]*warehouse.Warehouse, error) {
	args := m.Called(ctx)
	ws, _ := args.Get(0).([]*warehouse.Warehouse)
	return ws, args.Error(1)
}

type staticRules struct {
	set *sla.RuleSet
}

func (s staticRules) Current() *sla.RuleSet { return s.set }

func intPtr(v int) *int { return &v }

// stockedParams is stocked, fixed 1 business day, no weekend dispatch, cutoff 16:00.
func stockedParams() policy.Params {
	return policy.Params{
		Name:             "Stocked",
		ProductionKind:   policy.Stocked,
		EstimateMode:     policy.Fixed,
		BusinessDaysOnly: true,
		CutoffHour:       16,
		FixedDays:        intPtr(1),
	}
}

func storedPolicy(t *testing.T) *policy.ShippingPolicy {
	t.Helper()
	params := stockedParams()
	params.ID = kernel.NewUUID()
	p, err := policy.NewShippingPolicy(params)
	require.NoError(t, err)
	return p
}

func istanbulRules(t *testing.T) *sla.RuleSet {
	t.Helper()
	r, err := sla.NewRule(sla.RuleParams{
		Scope:      sla.NewScope("", "", "Istanbul", ""),
		Carrier:    "Yurtici",
		TransitMin: 2,
		TransitMax: 4,
	})
	require.NoError(t, err)
	set, err := sla.NewRuleSet([]sla.Rule{r}, sla.BuiltinDefaultTable())
	require.NoError(t, err)
	return set
}

func newWarehouse(t *testing.T, code string, lat, lon float64, cutoff int) *warehouse.Warehouse {
	t.Helper()
	loc, err := kernel.NewCoordinates(lat, lon)
	require.NoError(t, err)
	w, err := warehouse.NewWarehouse(warehouse.Params{Code: code, Location: loc, CutoffHour: cutoff, IsActive: true})
	require.NoError(t, err)
	return w
}

func lineItem(t *testing.T, product string, qty int) warehouse.LineItem {
	t.Helper()
	item, err := warehouse.NewLineItem(product, "", qty)
	require.NoError(t, err)
	return item
}
