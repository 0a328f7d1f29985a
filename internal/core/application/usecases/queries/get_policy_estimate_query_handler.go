package queries

import (
	"context"

	"eta/internal/core/ports"
)

type GetPolicyEstimateQueryHandler struct {
	policies PolicyReader
	rules    ports.SlaRuleProvider
	builder  estimateBuilder
}

func NewGetPolicyEstimateQueryHandler(policies PolicyReader, rules ports.SlaRuleProvider) GetPolicyEstimateQueryHandler {
	return GetPolicyEstimateQueryHandler{
		policies: policies,
		rules:    rules,
		builder:  newEstimateBuilder(),
	}
}

func (h GetPolicyEstimateQueryHandler) Handle(ctx context.Context, query GetPolicyEstimateQuery) (EstimateResponse, error) {
	if err := query.Validate(); err != nil {
		return EstimateResponse{}, err
	}

	p, err := h.policies.Get(ctx, query.PolicyID())
	if err != nil {
		return EstimateResponse{}, err
	}

	return h.builder.build(p, query.Options(), h.rules.Current())
}
