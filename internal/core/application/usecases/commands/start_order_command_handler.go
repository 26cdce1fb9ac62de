package commands

import (
	"context"
)

// StartOrderCommandHandler moves an assigned order into in_progress status.
type StartOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewStartOrderCommandHandler creates a handler for starting delivery runs.
func NewStartOrderCommandHandler(uowFactory OrderUoWFactory) StartOrderCommandHandler {
	return StartOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, starts the run and persists the change.
func (h *StartOrderCommandHandler) Handle(ctx context.Context, cmd StartOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Start(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
