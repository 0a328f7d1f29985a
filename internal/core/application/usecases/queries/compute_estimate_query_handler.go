package queries

import (
	"context"

	"eta/internal/core/ports"
)

// ComputeEstimateQueryHandler estimates inline policies. Advanced estimates
// use the rule snapshot current at the start of Handle.
type ComputeEstimateQueryHandler struct {
	rules   ports.SlaRuleProvider
	builder estimateBuilder
}

func NewComputeEstimateQueryHandler(rules ports.SlaRuleProvider) ComputeEstimateQueryHandler {
	return ComputeEstimateQueryHandler{
		rules:   rules,
		builder: newEstimateBuilder(),
	}
}

func (h ComputeEstimateQueryHandler) Handle(_ context.Context, query ComputeEstimateQuery) (EstimateResponse, error) {
	if err := query.Validate(); err != nil {
		return EstimateResponse{}, err
	}

	return h.builder.build(query.Policy(), query.Options(), h.rules.Current())
}
