package commands

import (
	"errors"

	"eta/internal/core/domain/model/kernel"
	"eta/internal/pkg/guard"
)

var ErrDeletePolicyCommandIsNotConstructed = errors.New(
	"DeletePolicyCommand must be created via NewDeletePolicyCommand constructor",
)

// DeletePolicyCommand removes a stored policy.
type DeletePolicyCommand struct { //nolint:recvcheck //using for validation
	policyID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeletePolicyCommand(policyID kernel.UUID) (DeletePolicyCommand, error) {
	command := DeletePolicyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setPolicyID(policyID); err != nil {
		return DeletePolicyCommand{}, err
	}

	return command, nil
}

func (c DeletePolicyCommand) Validate() error {
	return c.guard.Validate(ErrDeletePolicyCommandIsNotConstructed)
}

func (c DeletePolicyCommand) PolicyID() kernel.UUID {
	return c.policyID
}

func (c *DeletePolicyCommand) setPolicyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.policyID = id
	return nil
}
