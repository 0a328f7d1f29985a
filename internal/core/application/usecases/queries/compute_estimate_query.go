package queries

import (
	"errors"

	"eta/internal/core/domain/model/kernel"
	"eta/internal/core/domain/model/policy"
	"eta/internal/pkg/guard"
)

var ErrComputeEstimateQueryIsNotConstructed = errors.New(
	"ComputeEstimateQuery must be created via NewComputeEstimateQuery constructor",
)

// ComputeEstimateQuery estimates delivery for a policy supplied inline with
// the request instead of a stored one.
//
// Example:
//
//	query, err := NewComputeEstimateQuery(policyParams, EstimateOptions{
//	    Now:         time.Now().In(loc),
//	    Destination: sla.Destination{Region: "EU"},
//	})
//	if err != nil {
//	    return err
//	}
//	resp, err := handler.Handle(ctx, query)
type ComputeEstimateQuery struct {
	policy  *policy.ShippingPolicy
	options EstimateOptions

	guard guard.ConstructorGuard
}

// NewComputeEstimateQuery validates params and options. Inline policies are
// anonymous, so a missing ID is replaced by a fresh one.
func NewComputeEstimateQuery(params policy.Params, opts EstimateOptions) (ComputeEstimateQuery, error) {
	if params.ID.Validate() != nil {
		params.ID = kernel.NewUUID()
	}

	p, err := policy.NewShippingPolicy(params)
	if err = errors.Join(err, opts.validate()); err != nil {
		return ComputeEstimateQuery{}, err
	}

	return ComputeEstimateQuery{
		policy:  p,
		options: opts.normalized(),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q ComputeEstimateQuery) Validate() error {
	return q.guard.Validate(ErrComputeEstimateQueryIsNotConstructed)
}

func (q ComputeEstimateQuery) Policy() *policy.ShippingPolicy {
	return q.policy
}

func (q ComputeEstimateQuery) Options() EstimateOptions {
	return q.options
}
