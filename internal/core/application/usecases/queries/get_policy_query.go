package queries

import (
	"errors"

	"eta/internal/core/domain/model/kernel"
	"eta/internal/pkg/guard"
)

var ErrGetPolicyQueryIsNotConstructed = errors.New(
	"GetPolicyQuery must be created via NewGetPolicyQuery constructor",
)

// GetPolicyQuery retrieves one stored shipping policy.
type GetPolicyQuery struct {
	policyID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetPolicyQuery(policyID kernel.UUID) (GetPolicyQuery, error) {
	if err := policyID.Validate(); err != nil {
		return GetPolicyQuery{}, err
	}

	return GetPolicyQuery{
		policyID: policyID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetPolicyQuery) Validate() error {
	return q.guard.Validate(ErrGetPolicyQueryIsNotConstructed)
}

func (q GetPolicyQuery) PolicyID() kernel.UUID {
	return q.policyID
}
