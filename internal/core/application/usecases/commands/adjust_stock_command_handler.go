package commands

import (
	"context"
)

// AdjustStockCommandHandler books a stock movement and persists the
// updated level, committing both together.
type AdjustStockCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewAdjustStockCommandHandler creates a handler for stock adjustments.
func NewAdjustStockCommandHandler(uowFactory ProductUoWFactory) AdjustStockCommandHandler {
	return AdjustStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the product, applies the movement and persists entry and
// level in one transaction.
func (h *AdjustStockCommandHandler) Handle(ctx context.Context, cmd AdjustStockCommand) error {
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

	productRepo := uow.ProductRepository()

	aggregate, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if err = aggregate.RecordMovement(cmd.Movement()); err != nil {
		return err
	}

	if err = productRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = productRepo.AddMovement(ctx, aggregate.ID(), cmd.Movement()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
