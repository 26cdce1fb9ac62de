package commands

import (
	"context"
)

// RemoveTripCostCommandHandler drops a booked expense from an order and
// persists the recomputed net amount.
type RemoveTripCostCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemoveTripCostCommandHandler creates a handler for removing trip costs.
func NewRemoveTripCostCommandHandler(uowFactory OrderUoWFactory) RemoveTripCostCommandHandler {
	return RemoveTripCostCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, removes the expense at the given position and
// persists the change. Fails with an out-of-range error for a stale index.
func (h *RemoveTripCostCommandHandler) Handle(ctx context.Context, cmd RemoveTripCostCommand) error {
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

	if err = aggregate.RemoveTripCost(cmd.Index()); err != nil {
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
