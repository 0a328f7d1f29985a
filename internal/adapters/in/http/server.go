package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"eta/internal/adapters/in/http/openapi"
	"eta/internal/core/application/usecases/commands"
	"eta/internal/core/application/usecases/queries"
	"eta/internal/core/domain/model/kernel"
	"eta/internal/core/domain/model/policy"
	"eta/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const contentTypeLDJSON = "application/ld+json"

// Server maps HTTP requests of the estimate API to application use cases.
type Server struct {
	handlers Handlers
	contract *openapi.Validator
	logger   *slog.Logger
	metrics  *Metrics

	// location applies to estimates requested without a timezone
	location *time.Location
	clock    func() time.Time
}

type Option func(*Server)

// WithClock replaces time.Now as the source of the customer's current instant.
func WithClock(clock func() time.Time) Option {
	return func(s *Server) {
		s.clock = clock
	}
}

func WithLocation(loc *time.Location) Option {
	return func(s *Server) {
		s.location = loc
	}
}

func WithMetrics(m *Metrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, contract *openapi.Validator, logger *slog.Logger, opts ...Option) (*Server, error) {
	if err := errors.Join(
		handlers.validate(),
		required("contract", contract == nil),
		required("logger", logger == nil),
	); err != nil {
		return nil, err
	}

	s := &Server{
		handlers: handlers,
		contract: contract,
		logger:   logger.With("component", "http"),
		location: time.UTC,
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = NewMetrics()
	}

	return s, nil
}

// Register installs middleware, the error handler and every route on e.
func (s *Server) Register(e *echo.Echo) error {
	if err := registerSwaggerDoc(s.contract.Document()); err != nil {
		return err
	}

	e.HTTPErrorHandler = s.errorHandler
	e.Validator = NewRequestValidator()

	e.Use(middleware.Recover())
	e.Use(s.requestLogger())
	e.Use(s.metrics.Middleware())

	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(s.metrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1", s.contractMiddleware())
	api.GET("/estimate", s.ComputeEstimate)
	api.POST("/policies", s.CreatePolicy)
	api.GET("/policies/:id", s.GetPolicy)
	api.PUT("/policies/:id", s.UpdatePolicy)
	api.DELETE("/policies/:id", s.DeletePolicy)
	api.GET("/policies/:id/estimate", s.GetPolicyEstimate)
	api.GET("/policies/:id/structured-data", s.GetPolicyStructuredData)
	api.POST("/policies/:id/plan", s.PlanShipment)
	api.GET("/warehouses", s.GetActiveWarehouses)
	api.POST("/warehouses", s.CreateWarehouse)

	return nil
}

func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// ComputeEstimate handles GET /api/v1/estimate - estimates a policy described in the query string.
func (s *Server) ComputeEstimate(c echo.Context) error {
	var (
		inline inlinePolicyParams
		params estimateParams
	)
	b := &queryBinder{values: c.QueryParams()}
	inline.bind(b)
	params.bind(b)
	if b.err != nil {
		return b.err
	}
	if err := c.Validate(&inline); err != nil {
		return err
	}

	opts, err := s.estimateOptions(c, params)
	if err != nil {
		return err
	}
	policyParams, err := inline.params()
	if err != nil {
		return err
	}

	query, err := queries.NewComputeEstimateQuery(policyParams, opts)
	if err != nil {
		return err
	}

	resp, err := s.handlers.ComputeEstimate.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	s.metrics.observeEstimate(opts.Advanced)

	return c.JSON(http.StatusOK, envelopeFromResponse(resp))
}

// CreatePolicy handles POST /api/v1/policies.
func (s *Server) CreatePolicy(c echo.Context) error {
	params, err := bindPolicyInput(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreatePolicyCommand(params)
	if err != nil {
		return err
	}
	if err := s.handlers.CreatePolicy.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, policyFromDomain(cmd.Policy()))
}

// GetPolicy handles GET /api/v1/policies/:id.
func (s *Server) GetPolicy(c echo.Context) error {
	id, err := policyID(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetPolicyQuery(id)
	if err != nil {
		return err
	}
	p, err := s.handlers.GetPolicy.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, policyFromDomain(p))
}

// UpdatePolicy handles PUT /api/v1/policies/:id - replaces the whole policy.
func (s *Server) UpdatePolicy(c echo.Context) error {
	id, err := policyID(c)
	if err != nil {
		return err
	}
	params, err := bindPolicyInput(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdatePolicyCommand(id, params)
	if err != nil {
		return err
	}
	if err := s.handlers.UpdatePolicy.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, policyFromDomain(cmd.Policy()))
}

// DeletePolicy handles DELETE /api/v1/policies/:id.
func (s *Server) DeletePolicy(c echo.Context) error {
	id, err := policyID(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeletePolicyCommand(id)
	if err != nil {
		return err
	}
	if err := s.handlers.DeletePolicy.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// GetPolicyEstimate handles GET /api/v1/policies/:id/estimate.
func (s *Server) GetPolicyEstimate(c echo.Context) error {
	resp, err := s.storedPolicyEstimate(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelopeFromResponse(resp))
}

// GetPolicyStructuredData handles GET /api/v1/policies/:id/structured-data - the
// JSON-LD block of the product page.
func (s *Server) GetPolicyStructuredData(c echo.Context) error {
	resp, err := s.storedPolicyEstimate(c)
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentType, contentTypeLDJSON)
	return c.JSON(http.StatusOK, resp.StructuredData)
}

func (s *Server) storedPolicyEstimate(c echo.Context) (queries.EstimateResponse, error) {
	id, err := policyID(c)
	if err != nil {
		return queries.EstimateResponse{}, err
	}

	var params estimateParams
	b := &queryBinder{values: c.QueryParams()}
	params.bind(b)
	if b.err != nil {
		return queries.EstimateResponse{}, b.err
	}
	opts, err := s.estimateOptions(c, params)
	if err != nil {
		return queries.EstimateResponse{}, err
	}

	query, err := queries.NewGetPolicyEstimateQuery(id, opts)
	if err != nil {
		return queries.EstimateResponse{}, err
	}
	resp, err := s.handlers.GetPolicyEstimate.Handle(c.Request().Context(), query)
	if err != nil {
		return queries.EstimateResponse{}, err
	}
	s.metrics.observeEstimate(opts.Advanced)

	return resp, nil
}

// PlanShipment handles POST /api/v1/policies/:id/plan - splits an order across
// the active warehouses.
func (s *Server) PlanShipment(c echo.Context) error {
	id, err := policyID(c)
	if err != nil {
		return err
	}

	var in PlanInput
	if err := c.Bind(&in); err != nil {
		return err
	}
	if err := c.Validate(&in); err != nil {
		return err
	}

	now, err := s.resolveNow(in.Now, in.Timezone)
	if err != nil {
		return err
	}
	params, err := in.params(id, now)
	if err != nil {
		return err
	}

	query, err := queries.NewPlanShipmentQuery(params)
	if err != nil {
		return err
	}
	plan, err := s.handlers.PlanShipment.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	s.metrics.observePlan(plan.TotalPackages())

	return c.JSON(http.StatusOK, planFromDomain(plan))
}

// CreateWarehouse handles POST /api/v1/warehouses. An existing code is overwritten.
func (s *Server) CreateWarehouse(c echo.Context) error {
	var in WarehouseInput
	if err := c.Bind(&in); err != nil {
		return err
	}
	if err := c.Validate(&in); err != nil {
		return err
	}

	params, err := in.params()
	if err != nil {
		return err
	}
	cmd, err := commands.NewCreateWarehouseCommand(params)
	if err != nil {
		return err
	}
	if err := s.handlers.CreateWarehouse.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, warehouseFromDomain(cmd.Warehouse()))
}

// GetActiveWarehouses handles GET /api/v1/warehouses.
func (s *Server) GetActiveWarehouses(c echo.Context) error {
	warehouses, err := s.handlers.GetActiveWarehouses.Handle(
		c.Request().Context(),
		queries.NewGetActiveWarehousesQuery(),
	)
	if err != nil {
		return err
	}

	response := make([]Warehouse, len(warehouses))
	for i, w := range warehouses {
		response[i] = warehouseFromReadModel(w)
	}

	return c.JSON(http.StatusOK, response)
}

func (s *Server) estimateOptions(c echo.Context, p estimateParams) (queries.EstimateOptions, error) {
	if err := c.Validate(&p); err != nil {
		return queries.EstimateOptions{}, err
	}
	now, err := s.resolveNow(p.Now, p.Timezone)
	if err != nil {
		return queries.EstimateOptions{}, err
	}

	return queries.EstimateOptions{
		Now:           now,
		Destination:   p.Destination.toDomain(),
		Carrier:       p.Carrier,
		Advanced:      deref(p.Advanced),
		WithCountdown: deref(p.Countdown),
		ProductName:   p.ProductName,
	}, nil
}

// resolveNow picks the instant an estimate is computed for. An explicit
// instant keeps its own offset unless a timezone is given.
func (s *Server) resolveNow(now *time.Time, timezone string) (time.Time, error) {
	loc := s.location
	if timezone != "" {
		l, err := time.LoadLocation(timezone)
		if err != nil {
			return time.Time{}, errs.NewValueIsInvalidErrorWithCause("timezone", err)
		}
		loc = l
	}

	switch {
	case now == nil:
		return s.clock().In(loc), nil
	case timezone == "":
		return *now, nil
	default:
		return now.In(loc), nil
	}
}

func (s *Server) contractMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := s.contract.ValidateRequest(c.Request())
			if err != nil && !errors.Is(err, openapi.ErrUnknownRoute) {
				return newOpenAPIError(err)
			}
			return next(c)
		}
	}
}

func (s *Server) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogRoutePath: true,
		LogStatus:    true,
		LogLatency:   true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			switch {
			case v.Status >= http.StatusInternalServerError:
				level = slog.LevelError
			case v.Status >= http.StatusBadRequest:
				level = slog.LevelWarn
			}
			s.logger.LogAttrs(c.Request().Context(), level, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.String("route", v.RoutePath),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	})
}

func bindPolicyInput(c echo.Context) (policy.Params, error) {
	var in PolicyInput
	if err := c.Bind(&in); err != nil {
		return policy.Params{}, err
	}
	if err := c.Validate(&in); err != nil {
		return policy.Params{}, err
	}
	return in.params()
}

func policyID(c echo.Context) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return id, nil
}
