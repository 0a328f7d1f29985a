package commands

import (
	"context"
)

// CreatePolicyCommandHandler persists new shipping policies.
type CreatePolicyCommandHandler struct {
	uowFactory PolicyUoWFactory
}

func NewCreatePolicyCommandHandler(uowFactory PolicyUoWFactory) CreatePolicyCommandHandler {
	return CreatePolicyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stores the command's policy within a transaction.
// Automatically rolls back on any error to prevent partial data.
func (h *CreatePolicyCommandHandler) Handle(ctx context.Context, cmd CreatePolicyCommand) error {
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

	if err := uow.PolicyRepository().Add(ctx, cmd.Policy()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
