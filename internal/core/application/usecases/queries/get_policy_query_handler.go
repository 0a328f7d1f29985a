package queries

import (
	"context"

	"eta/internal/core/domain/model/policy"
)

type GetPolicyQueryHandler struct {
	policies PolicyReader
}

func NewGetPolicyQueryHandler(policies PolicyReader) GetPolicyQueryHandler {
	return GetPolicyQueryHandler{policies: policies}
}

// Handle returns the policy or errs.ObjectNotFoundError.
func (h GetPolicyQueryHandler) Handle(ctx context.Context, query GetPolicyQuery) (*policy.ShippingPolicy, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.policies.Get(ctx, query.PolicyID())
}
