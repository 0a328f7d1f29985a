package cmd

import (
	"log/slog"
	"time"

	httpin "eta/internal/adapters/in/http"
	"eta/internal/adapters/in/http/openapi"
	"eta/internal/adapters/out/postgres"
	"eta/internal/adapters/out/postgres/policyrepo"
	"eta/internal/adapters/out/postgres/warehouserepo"
	"eta/internal/adapters/out/slaconfig"
	"eta/internal/core/application/usecases/commands"
	"eta/internal/core/application/usecases/queries"
	"eta/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	slaRules   *slaconfig.Provider
	location   *time.Location
	logger     *slog.Logger
}

func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	slaRules *slaconfig.Provider,
	location *time.Location,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		slaRules:   slaRules,
		location:   location,
		logger:     logger,
	}
}

func (c *CompositionRoot) policyUoWFactory() commands.PolicyUoWFactory {
	return FuncPolicyUoWFactory(func() commands.PolicyUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) warehouseUoWFactory() commands.WarehouseUoWFactory {
	return FuncWarehouseUoWFactory(func() commands.WarehouseUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreatePolicyCommandHandler() commands.CreatePolicyCommandHandler {
	return commands.NewCreatePolicyCommandHandler(c.policyUoWFactory())
}

func (c *CompositionRoot) CreateUpdatePolicyCommandHandler() commands.UpdatePolicyCommandHandler {
	return commands.NewUpdatePolicyCommandHandler(c.policyUoWFactory())
}

func (c *CompositionRoot) CreateDeletePolicyCommandHandler() commands.DeletePolicyCommandHandler {
	return commands.NewDeletePolicyCommandHandler(c.policyUoWFactory())
}

func (c *CompositionRoot) CreateCreateWarehouseCommandHandler() commands.CreateWarehouseCommandHandler {
	return commands.NewCreateWarehouseCommandHandler(c.warehouseUoWFactory())
}

func (c *CompositionRoot) CreateComputeEstimateQueryHandler() queries.ComputeEstimateQueryHandler {
	return queries.NewComputeEstimateQueryHandler(c.slaRules)
}

func (c *CompositionRoot) CreateGetPolicyQueryHandler() queries.GetPolicyQueryHandler {
	return queries.NewGetPolicyQueryHandler(policyrepo.NewGormPolicyRepository(c.gormDB, nil))
}

func (c *CompositionRoot) CreateGetPolicyEstimateQueryHandler() queries.GetPolicyEstimateQueryHandler {
	return queries.NewGetPolicyEstimateQueryHandler(policyrepo.NewGormPolicyRepository(c.gormDB, nil), c.slaRules)
}

func (c *CompositionRoot) CreatePlanShipmentQueryHandler() queries.PlanShipmentQueryHandler {
	return queries.NewPlanShipmentQueryHandler(
		policyrepo.NewGormPolicyRepository(c.gormDB, nil),
		warehouserepo.NewGormWarehouseRepository(c.gormDB, nil),
		c.slaRules,
	)
}

func (c *CompositionRoot) CreateGetActiveWarehousesQueryHandler() queries.GetActiveWarehousesQueryHandler {
	return queries.NewGetActiveWarehousesQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every use case into the HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer(contract *openapi.Validator) (*httpin.Server, error) {
	createPolicy := c.CreateCreatePolicyCommandHandler()
	updatePolicy := c.CreateUpdatePolicyCommandHandler()
	deletePolicy := c.CreateDeletePolicyCommandHandler()
	createWarehouse := c.CreateCreateWarehouseCommandHandler()

	return httpin.NewServer(httpin.Handlers{
		CreatePolicy:        &createPolicy,
		UpdatePolicy:        &updatePolicy,
		DeletePolicy:        &deletePolicy,
		CreateWarehouse:     &createWarehouse,
		ComputeEstimate:     c.CreateComputeEstimateQueryHandler(),
		GetPolicy:           c.CreateGetPolicyQueryHandler(),
		GetPolicyEstimate:   c.CreateGetPolicyEstimateQueryHandler(),
		PlanShipment:        c.CreatePlanShipmentQueryHandler(),
		GetActiveWarehouses: c.CreateGetActiveWarehousesQueryHandler(),
	}, contract, c.logger, httpin.WithLocation(c.location))
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.slaRules, c.configs.SlaReloadSchedule, c.logger)
}

type FuncPolicyUoWFactory func() commands.PolicyUoW

func (f FuncPolicyUoWFactory) Create() commands.PolicyUoW {
	return f()
}

type FuncWarehouseUoWFactory func() commands.WarehouseUoW

func (f FuncWarehouseUoWFactory) Create() commands.WarehouseUoW {
	return f()
}
