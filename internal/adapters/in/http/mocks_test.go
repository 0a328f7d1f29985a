package http_test

import (
	"context"

	"eta/internal/core/application/usecases/commands"
	"eta/internal/core/application/usecases/queries"
	"eta/internal/core/domain/model/policy"
	"eta/internal/core/domain/model/sla"
	"eta/internal/core/domain/services"

	"github.com/stretchr/testify/mock"
)

type MockCreatePolicyHandler struct {
	mock.Mock
}

func (m *MockCreatePolicyHandler) Handle(ctx context.Context, cmd commands.CreatePolicyCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockUpdatePolicyHandler struct {
	mock.Mock
}

func (m *MockUpdatePolicyHandler) Handle(ctx context.Context, cmd commands.UpdatePolicyCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockDeletePolicyHandler struct {
	mock.Mock
}

func (m *MockDeletePolicyHandler) Handle(ctx context.Context, cmd commands.DeletePolicyCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockCreateWarehouseHandler struct {
	mock.Mock
}

func (m *MockCreateWarehouseHandler) Handle(ctx context.Context, cmd commands.CreateWarehouseCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockGetPolicyHandler struct {
	mock.Mock
}

func (m *MockGetPolicyHandler) Handle(ctx context.Context, query queries.GetPolicyQuery) (*policy.ShippingPolicy, error) {
	args := m.Called(ctx, query)
	p, _ := args.Get(0).(*policy.ShippingPolicy)
	return p, args.Error(1)
}

type MockGetPolicyEstimateHandler struct {
	mock.Mock
}

func (m *MockGetPolicyEstimateHandler) Handle(
	ctx context.Context,
	query queries.GetPolicyEstimateQuery,
) (queries.EstimateResponse, error) {
	args := m.Called(ctx, query)
	resp, _ := args.Get(0).(queries.EstimateResponse)
	return resp, args.Error(1)
}

type MockPlanShipmentHandler struct {
	mock.Mock
}

func (m *MockPlanShipmentHandler) Handle(ctx context.Context, query queries.PlanShipmentQuery) (services.Plan, error) {
	args := m.Called(ctx, query)
	plan, _ := args.Get(0).(services.Plan)
	return plan, args.Error(1)
}

type MockGetActiveWarehousesHandler struct {
	mock.Mock
}

func (m *MockGetActiveWarehousesHandler) Handle(
	ctx context.Context,
	query queries.GetActiveWarehousesQuery,
) ([]queries.GetActiveWarehousesQueryResponse, error) {
	args := m.Called(ctx, query)
	ws, _ := args.Get(0).([]queries.GetActiveWarehousesQueryResponse)
	return ws, args.Error(1)
}

type staticRules struct {
	set *sla.RuleSet
}

func (s staticRules) Current() *sla.RuleSet { return s.set }
