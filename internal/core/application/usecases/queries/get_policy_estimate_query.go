package queries

import (
	"errors"

	"eta/internal/core/domain/model/kernel"
	"eta/internal/pkg/guard"
)

var ErrGetPolicyEstimateQueryIsNotConstructed = errors.New(
	"GetPolicyEstimateQuery must be created via NewGetPolicyEstimateQuery constructor",
)

// GetPolicyEstimateQuery estimates delivery for a stored policy. It backs
// both the estimate and the structured data endpoints.
type GetPolicyEstimateQuery struct {
	policyID kernel.UUID
	options  EstimateOptions

	guard guard.ConstructorGuard
}

func NewGetPolicyEstimateQuery(policyID kernel.UUID, opts EstimateOptions) (GetPolicyEstimateQuery, error) {
	if err := errors.Join(policyID.Validate(), opts.validate()); err != nil {
		return GetPolicyEstimateQuery{}, err
	}

	return GetPolicyEstimateQuery{
		policyID: policyID,
		options:  opts.normalized(),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetPolicyEstimateQuery) Validate() error {
	return q.guard.Validate(ErrGetPolicyEstimateQueryIsNotConstructed)
}

func (q GetPolicyEstimateQuery) PolicyID() kernel.UUID {
	return q.policyID
}

func (q GetPolicyEstimateQuery) Options() EstimateOptions {
	return q.options
}
