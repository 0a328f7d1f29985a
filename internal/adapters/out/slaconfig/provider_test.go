package slaconfig_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"eta/internal/adapters/out/slaconfig"
	"eta/internal/core/domain/model/sla"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLoader struct {
	mock.Mock
}

func (m *MockLoader) Load(ctx context.Context) (*sla.RuleSet, error) {
	args := m.Called(ctx)
	set, _ := args.Get(0).(*sla.RuleSet)
	return set, args.Error(1)
}

func TestProvider_StartsWithDefaults(t *testing.T) {
	p := slaconfig.NewProvider(new(MockLoader), nil)

	require.NotNil(t, p.Current())
	assert.Equal(t, 0, p.Current().Len())
}

func TestProvider_Reload(t *testing.T) {
	// Arrange
	ctx := t.Context()
	first := sla.EmptyRuleSet()
	r, err := sla.NewRule(sla.RuleParams{Scope: sla.NewScope("", "", "", "EU"), Carrier: "DHL", TransitMin: 1, TransitMax: 2})
	require.NoError(t, err)
	second, err := sla.NewRuleSet([]sla.Rule{r}, sla.BuiltinDefaultTable())
	require.NoError(t, err)

	loader := new(MockLoader)
	loader.On("Load", ctx).Return(second, nil).Once()
	loader.On("Load", ctx).Return(nil, errors.New("bad yaml")).Once()
	p := slaconfig.NewProvider(loader, first)

	// Act
	got, err := p.Reload(ctx)

	// Assert
	require.NoError(t, err)
	assert.Same(t, second, got)
	assert.Same(t, second, p.Current())

	_, err = p.Reload(ctx)
	require.Error(t, err)
	assert.Same(t, second, p.Current(), "failed reload keeps the previous set")
	loader.AssertExpectations(t)
}

func TestProvider_ConcurrentReadsDuringReload(t *testing.T) {
	loader := new(MockLoader)
	loader.On("Load", mock.Anything).Return(sla.EmptyRuleSet(), nil)
	p := slaconfig.NewProvider(loader, nil)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NotNil(t, p.Current())
		}()
		go func() {
			defer wg.Done()
			_, err := p.Reload(context.Background())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}
