package queries_test

import (
	"errors"
	"testing"

	"eta/internal/core/application/usecases/queries"
	"eta/internal/core/domain/model/kernel"
	"eta/internal/core/domain/model/sla"
	"eta/internal/core/domain/model/warehouse"
	"eta/internal/core/domain/services"
	"eta/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAllocationStrategy(t *testing.T) {
	tests := []struct {
		in      string
		want    queries.AllocationStrategy
		wantErr bool
	}{
		{in: "", want: queries.RoundRobin},
		{in: "roundRobin", want: queries.RoundRobin},
		{in: "nearest", want: queries.Nearest},
		{in: "stockAware", want: queries.StockAware},
		{in: "random", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := queries.ParseAllocationStrategy(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.String(), got.String())
		})
	}
}

func TestNewPlanShipmentQuery_Validation(t *testing.T) {
	// Act
	_, err := queries.NewPlanShipmentQuery(queries.PlanShipmentParams{})

	// Assert
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "items")
	assert.Contains(t, err.Error(), "now")
}

func TestPlanShipmentQueryHandler_Handle_RoundRobin(t *testing.T) {
	// Arrange
	ctx := t.Context()
	stored := storedPolicy(t)
	ist := newWarehouse(t, "IST", 41.01, 28.97, 16)
	ank := newWarehouse(t, "ANK", 39.93, 32.85, 9)

	q, err := queries.NewPlanShipmentQuery(queries.PlanShipmentParams{
		PolicyID: stored.ID(),
		Items: []warehouse.LineItem{
			lineItem(t, "mug", 1),
			lineItem(t, "plate", 2),
			lineItem(t, "bowl", 1),
		},
		Now:      mondayMorning,
		Strategy: queries.RoundRobin,
	})
	require.NoError(t, err)

	policies := new(MockPolicyReader)
	policies.On("Get", ctx, stored.ID()).Return(stored, nil).Once()
	warehouses := new(MockWarehouseReader)
	warehouses.On("GetAllActive", ctx).Return([]*warehouse.Warehouse{ist, ank}, nil).Once()

	handler := queries.NewPlanShipmentQueryHandler(policies, warehouses, staticRules{set: sla.EmptyRuleSet()})

	// Act
	plan, err := handler.Handle(ctx, q)

	// Assert
	require.NoError(t, err)
	require.Equal(t, 2, plan.TotalPackages())
	assert.Equal(t, "IST", plan.Packages[0].Warehouse.Code())
	assert.Len(t, plan.Packages[0].Items, 2)
	assert.Equal(t, "ANK", plan.Packages[1].Warehouse.Code())
	// ANK's 09:00 cutoff has passed, so its package ships a day later.
	assert.True(t, plan.Packages[1].Estimate.MaxDate().After(plan.Packages[0].Estimate.MaxDate()))
	assert.Equal(t, plan.Packages[1].Estimate.MaxDate(), plan.MaxDate)
	policies.AssertExpectations(t)
	warehouses.AssertExpectations(t)
}

func TestPlanShipmentQueryHandler_Handle_NoActiveWarehouses(t *testing.T) {
	// Arrange
	ctx := t.Context()
	stored := storedPolicy(t)
	q, err := queries.NewPlanShipmentQuery(queries.PlanShipmentParams{
		PolicyID: stored.ID(),
		Items:    []warehouse.LineItem{lineItem(t, "mug", 1)},
		Now:      mondayMorning,
	})
	require.NoError(t, err)

	policies := new(MockPolicyReader)
	policies.On("Get", ctx, stored.ID()).Return(stored, nil).Once()
	warehouses := new(MockWarehouseReader)
	warehouses.On("GetAllActive", ctx).Return([]*warehouse.Warehouse{}, nil).Once()

	handler := queries.NewPlanShipmentQueryHandler(policies, warehouses, staticRules{set: sla.EmptyRuleSet()})

	// Act
	_, err = handler.Handle(ctx, q)

	// Assert
	require.ErrorIs(t, err, services.ErrNoActiveWarehouses)
}

func TestPlanShipmentQueryHandler_Handle_ReaderFailure(t *testing.T) {
	// Arrange
	ctx := t.Context()
	stored := storedPolicy(t)
	q, err := queries.NewPlanShipmentQuery(queries.PlanShipmentParams{
		PolicyID: stored.ID(),
		Items:    []warehouse.LineItem{lineItem(t, "mug", 1)},
		Now:      mondayMorning,
		Strategy: queries.Nearest,
	})
	require.NoError(t, err)

	dbErr := errors.New("connection reset")
	policies := new(MockPolicyReader)
	policies.On("Get", ctx, stored.ID()).Return(stored, nil).Once()
	warehouses := new(MockWarehouseReader)
	warehouses.On("GetAllActive", ctx).Return(nil, dbErr).Once()

	handler := queries.NewPlanShipmentQueryHandler(policies, warehouses, staticRules{})

	// Act
	_, err = handler.Handle(ctx, q)

	// Assert
	require.ErrorIs(t, err, dbErr)
}

func TestPlanShipmentQueryHandler_Handle_NearestUsesDestination(t *testing.T) {
	// Arrange
	ctx := t.Context()
	stored := storedPolicy(t)
	ist := newWarehouse(t, "IST", 41.01, 28.97, 16)
	ank := newWarehouse(t, "ANK", 39.93, 32.85, 16)
	nearAnkara, err := kernel.NewCoordinates(39.9, 32.8)
	require.NoError(t, err)

	q, err := queries.NewPlanShipmentQuery(queries.PlanShipmentParams{
		PolicyID:            stored.ID(),
		Items:               []warehouse.LineItem{lineItem(t, "mug", 1), lineItem(t, "plate", 1)},
		Now:                 mondayMorning,
		DestinationLocation: nearAnkara,
		Strategy:            queries.Nearest,
	})
	require.NoError(t, err)

	policies := new(MockPolicyReader)
	policies.On("Get", ctx, stored.ID()).Return(stored, nil).Once()
	warehouses := new(MockWarehouseReader)
	warehouses.On("GetAllActive", ctx).Return([]*warehouse.Warehouse{ist, ank}, nil).Once()

	handler := queries.NewPlanShipmentQueryHandler(policies, warehouses, staticRules{set: sla.EmptyRuleSet()})

	// Act
	plan, err := handler.Handle(ctx, q)

	// Assert
	require.NoError(t, err)
	require.Equal(t, 1, plan.TotalPackages())
	assert.Equal(t, "ANK", plan.Packages[0].Warehouse.Code())
}
