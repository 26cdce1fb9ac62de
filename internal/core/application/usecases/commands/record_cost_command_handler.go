package commands

import (
	"context"

	"entregas/internal/core/domain/model/cost"
)

// RecordCostCommandHandler records an operational expense entry. Costs
// feed the daily cost view only and are never netted against orders.
type RecordCostCommandHandler struct {
	uowFactory CostUoWFactory
}

// NewRecordCostCommandHandler creates a handler for recording expenses.
func NewRecordCostCommandHandler(uowFactory CostUoWFactory) RecordCostCommandHandler {
	return RecordCostCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the expense entry and persists it.
func (h *RecordCostCommandHandler) Handle(ctx context.Context, cmd RecordCostCommand) error {
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

	aggregate, err := cost.NewCost(
		cmd.CostID(),
		cmd.Date(),
		cmd.Description(),
		cmd.Amount(),
		cmd.Category(),
		cmd.Notes(),
	)
	if err != nil {
		return err
	}

	if err = uow.CostRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
