package commands

import (
	"errors"

	"eta/internal/core/domain/model/kernel"
	"eta/internal/core/domain/model/policy"
	"eta/internal/pkg/guard"
)

var ErrCreatePolicyCommandIsNotConstructed = errors.New(
	"CreatePolicyCommand must be created via NewCreatePolicyCommand constructor",
)

// CreatePolicyCommand represents a request to store a new shipping policy.
// The policy is validated when the command is built, so a constructed command
// always carries a consistent configuration.
//
// Example:
//
//	cmd, err := NewCreatePolicyCommand(policy.Params{
//	    Name:           "Default",
//	    ProductionKind: policy.Stocked,
//	    EstimateMode:   policy.Fixed,
//	    FixedDays:      &one,
//	    CutoffHour:     16,
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid policy: %w", err)
//	}
//
//	handler := NewCreatePolicyCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create policy: %w", err)
//	}
//	fmt.Printf("Created policy with ID: %s", cmd.PolicyID())
type CreatePolicyCommand struct { //nolint:recvcheck //using for validation
	policy *policy.ShippingPolicy

	guard guard.ConstructorGuard
}

// NewCreatePolicyCommand assigns a fresh ID to params and validates the policy.
func NewCreatePolicyCommand(params policy.Params) (CreatePolicyCommand, error) {
	command := CreatePolicyCommand{
		guard: guard.NewConstructorGuard(),
	}

	params.ID = kernel.NewUUID()
	if err := command.setPolicy(params); err != nil {
		return CreatePolicyCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePolicyCommand) Validate() error {
	return c.guard.Validate(ErrCreatePolicyCommandIsNotConstructed)
}

func (c CreatePolicyCommand) PolicyID() kernel.UUID {
	return c.policy.ID()
}

func (c CreatePolicyCommand) Policy() *policy.ShippingPolicy {
	return c.policy
}

func (c *CreatePolicyCommand) setPolicy(params policy.Params) error {
	p, err := policy.NewShippingPolicy(params)
	if err != nil {
		return err
	}

	c.policy = p
	return nil
}
