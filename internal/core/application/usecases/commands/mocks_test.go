package commands_test

import (
	"context"

	"eta/internal/core/application/usecases/commands"
	"eta/internal/core/domain/model/kernel"
	"eta/internal/core/domain/model/policy"
	"eta/internal/core/domain/model/warehouse"
	"eta/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Mock implementations for testing.
type MockPolicyRepository struct {
	mock.Mock
}

func (m *MockPolicyRepository) Add(ctx context.Context, p *policy.ShippingPolicy) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPolicyRepository) Update(ctx context.Context, p *policy.ShippingPolicy) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPolicyRepository) Get(ctx context.Context, id kernel.UUID) (*policy.ShippingPolicy, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*policy.ShippingPolicy)
	return p, args.Error(1)
}

func (m *MockPolicyRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockWarehouseRepository struct {
	mock.Mock
}

func (m *MockWarehouseRepository) Add(ctx context.Context, w *warehouse.Warehouse) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockWarehouseRepository) Get(ctx context.Context, code string) (*warehouse.Warehouse, error) {
	args := m.Called(ctx, code)
	w, _ := args.Get(0).(*warehouse.Warehouse)
	return w, args.Error(1)
}

func (m *MockWarehouseRepository) GetAllActive(ctx context.Context) ([]*warehouse.Warehouse, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*warehouse.Warehouse), args.Error(1)
}

type MockTx struct {
	mock.Mock
}

func (m *MockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockPolicyUoW struct {
	MockTx
}

func (m *MockPolicyUoW) PolicyRepository() ports.PolicyRepository {
	args := m.Called()
	return args.Get(0).(ports.PolicyRepository)
}

type MockPolicyUoWFactory struct {
	mock.Mock
}

func (m *MockPolicyUoWFactory) Create() commands.PolicyUoW {
	args := m.Called()
	return args.Get(0).(commands.PolicyUoW)
}

type MockWarehouseUoW struct {
	MockTx
}

func (m *MockWarehouseUoW) WarehouseRepository() ports.WarehouseRepository {
	args := m.Called()
	return args.Get(0).(ports.WarehouseRepository)
}

type MockWarehouseUoWFactory struct {
	mock.Mock
}

func (m *MockWarehouseUoWFactory) Create() commands.WarehouseUoW {
	args := m.Called()
	return args.Get(0).(commands.WarehouseUoW)
}

func intPtr(v int) *int {
	return &v
}

func fixedPolicyParams() policy.Params {
	return policy.Params{
		Name:           "Default",
		ProductionKind: policy.Stocked,
		EstimateMode:   policy.Fixed,
		CutoffHour:     16,
		FixedDays:      intPtr(2),
	}
}
