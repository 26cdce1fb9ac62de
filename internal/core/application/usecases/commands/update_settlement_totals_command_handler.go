package commands

import (
	"context"
	"errors"

	"entregas/internal/core/domain/services"
	"entregas/internal/pkg/errs"
)

// UpdateSettlementTotalsCommandHandler recomputes a day's settlement from
// its orders and pushes the totals into the open register. The write is
// last-write-wins: totals are an overwrite, never an increment, so
// repeated syncs converge on the truth even after order fixes.
//
// A date without an open register is not an error; the sync simply has
// nowhere to write and leaves everything untouched.
type UpdateSettlementTotalsCommandHandler struct {
	uowFactory SettlementUoWFactory
}

// NewUpdateSettlementTotalsCommandHandler creates a handler for settlement syncs.
func NewUpdateSettlementTotalsCommandHandler(uowFactory SettlementUoWFactory) UpdateSettlementTotalsCommandHandler {
	return UpdateSettlementTotalsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle reads the day's orders and the open register in one transaction,
// folds the orders through the settlement calculator and persists the
// overwritten totals.
func (h *UpdateSettlementTotalsCommandHandler) Handle(ctx context.Context, cmd UpdateSettlementTotalsCommand) error {
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
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	orders, err := uow.OrderRepository().GetAllByDate(ctx, cmd.Date())
	if err != nil {
		return err
	}

	settlement, err := services.NewSettlementCalculator().Calculate(orders)
	if err != nil {
		return err
	}

	if err = aggregate.SetSettlementTotals(settlement.TotalCash, settlement.TotalPix); err != nil {
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
