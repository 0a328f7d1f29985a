package policyrepo_test

import (
	"context"
	"testing"
	"time"

	"eta/internal/adapters/out/postgres"
	"eta/internal/adapters/out/postgres/pgtest"
	"eta/internal/adapters/out/postgres/policyrepo"
	"eta/internal/core/domain/model/kernel"
	"eta/internal/core/domain/model/policy"
	"eta/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(key string, aggregate any) {
	m.Called(key, aggregate)
}

type PolicyRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *tcpostgres.PostgresContainer
	db         *gorm.DB
	repository *policyrepo.GormPolicyRepository
	tracker    *MockAggregateTracker
}

func (suite *PolicyRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background(), postgres.Migrate)
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *PolicyRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))

	suite.tracker = new(MockAggregateTracker)
	suite.repository = policyrepo.NewGormPolicyRepository(suite.db, suite.tracker)
}

func (suite *PolicyRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PolicyRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTripsEveryField() {
	ctx := context.Background()
	p := suite.handmadePolicy()
	suite.tracker.On("TrackAggregate", p.ID().String(), p).Once()

	suite.Require().NoError(suite.repository.Add(ctx, p))
	got, err := suite.repository.Get(ctx, p.ID())

	suite.Require().NoError(err)
	suite.True(got.ID().IsEqual(p.ID()))
	suite.Equal("Ceramics", got.Name())
	suite.Equal(policy.Handmade, got.ProductionKind())
	suite.Equal(policy.RuleBased, got.EstimateMode())
	suite.Equal(14, got.CutoffHour())
	suite.True(got.BusinessDaysOnly())
	capacity, ok := got.DailyCapacity()
	suite.True(ok)
	suite.Equal(5, capacity)
	suite.True(got.HasCapacityFactor())
	suite.InDelta(1.5, got.CapacityFactor(), 1e-9)

	override, ok := got.OverrideFor("eu")
	suite.Require().True(ok)
	suite.Equal("DHL", override.Carrier())
	lo, _ := override.MinDays()
	hi, _ := override.MaxDays()
	suite.Equal([2]int{4, 6}, [2]int{lo, hi})

	suite.Require().Len(got.BlackoutDates(), 2)
	suite.Equal("2026-12-24", got.BlackoutDates()[0].Date().String())
	suite.InDelta(1.0, got.BlackoutDates()[0].CapacityFactor(), 1e-9)
	suite.InDelta(0.5, got.BlackoutDates()[1].CapacityFactor(), 1e-9)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PolicyRepositoryIntegrationTestSuite) TestAdd_InvalidPolicy_Rejected() {
	err := suite.repository.Add(context.Background(), &policy.ShippingPolicy{})

	suite.Require().ErrorIs(err, policy.ErrShippingPolicyIsNotConstructed)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *PolicyRepositoryIntegrationTestSuite) TestUpdate_ReplacesColumns() {
	ctx := context.Background()
	p := suite.handmadePolicy()
	suite.tracker.On("TrackAggregate", p.ID().String(), mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, p))

	fixed := 3
	updated, err := policy.NewShippingPolicy(policy.Params{
		ID:             p.ID(),
		Name:           "Ceramics v2",
		ProductionKind: policy.Stocked,
		EstimateMode:   policy.Fixed,
		CutoffHour:     9,
		FixedDays:      &fixed,
	})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Update(ctx, updated))
	got, err := suite.repository.Get(ctx, p.ID())

	suite.Require().NoError(err)
	suite.Equal("Ceramics v2", got.Name())
	suite.Equal(policy.Fixed, got.EstimateMode())
	suite.False(got.HasCapacityFactor())
	suite.Empty(got.RegionOverrides())
	suite.Empty(got.BlackoutDates())
}

func (suite *PolicyRepositoryIntegrationTestSuite) TestUpdate_Missing_ReturnsNotFound() {
	err := suite.repository.Update(context.Background(), suite.handmadePolicy())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PolicyRepositoryIntegrationTestSuite) TestGet_Missing_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PolicyRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	p := suite.handmadePolicy()
	suite.tracker.On("TrackAggregate", p.ID().String(), p).Once()
	suite.Require().NoError(suite.repository.Add(ctx, p))

	suite.Require().NoError(suite.repository.Delete(ctx, p.ID()))

	_, err := suite.repository.Get(ctx, p.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Require().ErrorIs(suite.repository.Delete(ctx, p.ID()), errs.ErrObjectNotFound)
}

func (suite *PolicyRepositoryIntegrationTestSuite) TestNilTracker_IsAllowed() {
	repo := policyrepo.NewGormPolicyRepository(suite.db, nil)

	suite.Require().NoError(repo.Add(context.Background(), suite.handmadePolicy()))
}

func (suite *PolicyRepositoryIntegrationTestSuite) handmadePolicy() *policy.ShippingPolicy {
	capacity, backlog, factor := 5, 9, 1.5
	lo, hi := 4, 6

	override, err := policy.NewRegionOverride(policy.RegionOverrideParams{
		Region: "EU", Mode: policy.Range, MinDays: &lo, MaxDays: &hi, Carrier: "DHL",
	})
	suite.Require().NoError(err)

	christmasEve, err := kernel.NewCalendarDate(2026, time.December, 24)
	suite.Require().NoError(err)
	newYear, err := kernel.NewCalendarDate(2027, time.January, 1)
	suite.Require().NoError(err)
	b1, err := policy.NewBlackoutDate(christmasEve, 0)
	suite.Require().NoError(err)
	b2, err := policy.NewBlackoutDate(newYear, 0.5)
	suite.Require().NoError(err)

	p, err := policy.NewShippingPolicy(policy.Params{
		ID:               kernel.NewUUID(),
		Name:             "Ceramics",
		ProductionKind:   policy.Handmade,
		EstimateMode:     policy.RuleBased,
		BusinessDaysOnly: true,
		CutoffHour:       14,
		DailyCapacity:    &capacity,
		BacklogUnits:     &backlog,
		CapacityFactor:   &factor,
		RegionOverrides:  []policy.RegionOverride{override},
		BlackoutDates:    []policy.BlackoutDate{b2, b1},
	})
	suite.Require().NoError(err)
	return p
}

func TestPolicyRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	suite.Run(t, new(PolicyRepositoryIntegrationTestSuite))
}
