package commands

import (
	"context"
)

// CloseRegisterCommandHandler closes the day's register. Closing computes
// the closing balance from the opening balance, the synced settlement
// totals and the day's movements, then freezes it.
type CloseRegisterCommandHandler struct {
	uowFactory RegisterUoWFactory
}

// NewCloseRegisterCommandHandler creates a handler for closing the register.
func NewCloseRegisterCommandHandler(uowFactory RegisterUoWFactory) CloseRegisterCommandHandler {
	return CloseRegisterCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the open register for the date, closes it and persists the
// frozen balance. Fails with a not-found error if no open register exists
// for that date.
func (h *CloseRegisterCommandHandler) Handle(ctx context.Context, cmd CloseRegisterCommand) error {
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

	if err = aggregate.Close(cmd.Notes()); err != nil {
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
