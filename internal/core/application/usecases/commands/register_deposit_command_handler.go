package commands

import (
	"context"
)

// RegisterDepositCommandHandler records a cash deposit into the day's open
// register.
type RegisterDepositCommandHandler struct {
	uowFactory RegisterUoWFactory
}

// NewRegisterDepositCommandHandler creates a handler for register deposits.
func NewRegisterDepositCommandHandler(uowFactory RegisterUoWFactory) RegisterDepositCommandHandler {
	return RegisterDepositCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the open register, appends the deposit and persists it.
func (h *RegisterDepositCommandHandler) Handle(ctx context.Context, cmd RegisterDepositCommand) error {
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

	if err = aggregate.Deposit(cmd.Movement()); err != nil {
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
