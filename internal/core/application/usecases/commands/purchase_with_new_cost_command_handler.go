package commands

import (
	"context"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/core/domain/model/product"
)

// PurchaseWithNewCostCommandHandler forks a product variant for a purchase
// at a new cost price. The variant shares the original's name, description
// and selling price, carries the new cost price, and receives the purchased
// quantity as an increase movement. The original product is untouched so
// its remaining stock keeps its old margin.
type PurchaseWithNewCostCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewPurchaseWithNewCostCommandHandler creates a handler for purchases at a
// new cost price.
func NewPurchaseWithNewCostCommandHandler(uowFactory ProductUoWFactory) PurchaseWithNewCostCommandHandler {
	return PurchaseWithNewCostCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the original product, forks the variant and books the
// purchase against it, all in one transaction.
func (h *PurchaseWithNewCostCommandHandler) Handle(ctx context.Context, cmd PurchaseWithNewCostCommand) error {
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

	original, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	variant, err := original.ForkVariant(cmd.VariantID(), cmd.CostPrice())
	if err != nil {
		return err
	}

	purchase, err := product.NewMovement(kernel.NewUUID(), product.MovementIncrease, cmd.Quantity(), product.ReasonCostedPurchase)
	if err != nil {
		return err
	}

	if err = variant.RecordMovement(purchase); err != nil {
		return err
	}

	if err = productRepo.Add(ctx, variant); err != nil {
		return err
	}

	if err = productRepo.AddMovement(ctx, variant.ID(), purchase); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
