package commands

import (
	"context"
)

// AddTripCostCommandHandler books a delivery expense against an order and
// persists the recomputed net amount.
type AddTripCostCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddTripCostCommandHandler creates a handler for booking trip costs.
func NewAddTripCostCommandHandler(uowFactory OrderUoWFactory) AddTripCostCommandHandler {
	return AddTripCostCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, appends the expense and persists the change.
// Fails with an invalid-transition error unless the order is assigned or
// in progress.
func (h *AddTripCostCommandHandler) Handle(ctx context.Context, cmd AddTripCostCommand) error {
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

	if err = aggregate.AddTripCost(cmd.Cost()); err != nil {
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
