package commands

import (
	"context"
)

// UpdatePolicyCommandHandler replaces stored policies.
type UpdatePolicyCommandHandler struct {
	uowFactory PolicyUoWFactory
}

func NewUpdatePolicyCommandHandler(uowFactory PolicyUoWFactory) UpdatePolicyCommandHandler {
	return UpdatePolicyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the policy to make sure it exists, then overwrites it.
// A missing policy surfaces as errs.ObjectNotFoundError from the repository.
func (h *UpdatePolicyCommandHandler) Handle(ctx context.Context, cmd UpdatePolicyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PolicyRepository()
	if _, err := repo.Get(ctx, cmd.PolicyID()); err != nil {
		return err
	}

	if err := repo.Update(ctx, cmd.Policy()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
