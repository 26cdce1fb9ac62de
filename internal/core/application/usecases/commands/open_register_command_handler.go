package commands

import (
	"context"
	"errors"

	"entregas/internal/core/domain/model/register"
	"entregas/internal/pkg/errs"
)

// OpenRegisterCommandHandler opens the cash register for a date.
// A date with any existing register, open or closed, cannot be opened
// again.
type OpenRegisterCommandHandler struct {
	uowFactory RegisterUoWFactory
}

// NewOpenRegisterCommandHandler creates a handler for opening the register.
func NewOpenRegisterCommandHandler(uowFactory RegisterUoWFactory) OpenRegisterCommandHandler {
	return OpenRegisterCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle opens the register, failing with a conflict error when the date
// already has one. The date uniqueness is also enforced by the storage
// layer, so concurrent opens cannot both commit.
func (h *OpenRegisterCommandHandler) Handle(ctx context.Context, cmd OpenRegisterCommand) error {
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

	_, err := registerRepo.GetByDate(ctx, cmd.Date())
	if err == nil {
		return errs.NewConflictError("register for date", cmd.Date().String())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	aggregate, err := register.NewRegister(cmd.RegisterID(), cmd.Date(), cmd.OpeningBalance())
	if err != nil {
		return err
	}

	if err = registerRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
