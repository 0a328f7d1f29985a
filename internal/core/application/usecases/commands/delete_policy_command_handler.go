package commands

import (
	"context"
)

// DeletePolicyCommandHandler removes stored policies.
type DeletePolicyCommandHandler struct {
	uowFactory PolicyUoWFactory
}

func NewDeletePolicyCommandHandler(uowFactory PolicyUoWFactory) DeletePolicyCommandHandler {
	return DeletePolicyCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *DeletePolicyCommandHandler) Handle(ctx context.Context, cmd DeletePolicyCommand) error {
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

	if err := uow.PolicyRepository().Delete(ctx, cmd.PolicyID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
