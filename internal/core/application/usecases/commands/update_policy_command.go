package commands

import (
	"errors"

	"eta/internal/core/domain/model/kernel"
	"eta/internal/core/domain/model/policy"
	"eta/internal/pkg/guard"
)

var ErrUpdatePolicyCommandIsNotConstructed = errors.New(
	"UpdatePolicyCommand must be created via NewUpdatePolicyCommand constructor",
)

// UpdatePolicyCommand replaces the configuration of a stored policy.
type UpdatePolicyCommand struct { //nolint:recvcheck //using for validation
	policy *policy.ShippingPolicy

	guard guard.ConstructorGuard
}

// NewUpdatePolicyCommand validates params as the new state of policy id.
// Any ID already present in params is replaced by id.
func NewUpdatePolicyCommand(id kernel.UUID, params policy.Params) (UpdatePolicyCommand, error) {
	command := UpdatePolicyCommand{
		guard: guard.NewConstructorGuard(),
	}

	params.ID = id
	if err := command.setPolicy(params); err != nil {
		return UpdatePolicyCommand{}, err
	}

	return command, nil
}

func (c UpdatePolicyCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePolicyCommandIsNotConstructed)
}

func (c UpdatePolicyCommand) PolicyID() kernel.UUID {
	return c.policy.ID()
}

func (c UpdatePolicyCommand) Policy() *policy.ShippingPolicy {
	return c.policy
}

func (c *UpdatePolicyCommand) setPolicy(params policy.Params) error {
	p, err := policy.NewShippingPolicy(params)
	if err != nil {
		return err
	}

	c.policy = p
	return nil
}
