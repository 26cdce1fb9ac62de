package commands

import (
	"context"
)

// AssignOrderCommandHandler moves a pending order into assigned status.
// Assignment is explicit: the caller names the driver, there is no
// dispatch optimization.
type AssignOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAssignOrderCommandHandler creates a handler for order assignment operations.
func NewAssignOrderCommandHandler(uowFactory OrderUoWFactory) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies the assignment and persists the change.
// Fails with a not-found error for unknown orders and an invalid-transition
// error when the order is not pending.
func (h *AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) error {
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

	if err = aggregate.Assign(cmd.DriverID()); err != nil {
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
