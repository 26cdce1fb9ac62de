package commands

import (
	"context"
)

// RegisterWithdrawalCommandHandler records a cash withdrawal from the
// day's open register.
type RegisterWithdrawalCommandHandler struct {
	uowFactory RegisterUoWFactory
}

// NewRegisterWithdrawalCommandHandler creates a handler for register withdrawals.
func NewRegisterWithdrawalCommandHandler(uowFactory RegisterUoWFactory) RegisterWithdrawalCommandHandler {
	return RegisterWithdrawalCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the open register, appends the withdrawal and persists it.
func (h *RegisterWithdrawalCommandHandler) Handle(ctx context.Context, cmd RegisterWithdrawalCommand) error {
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

	registerRepo := uow.RegisterRepository()

	aggregate, err := registerRepo.GetOpenByDate(ctx, cmd.Date())
	if err != nil {
		return err
	}

	if err = aggregate.Withdraw(cmd.Movement()); err != nil {
		return err
	}

	if err = registerRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
