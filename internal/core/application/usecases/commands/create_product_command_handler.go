package commands

import (
	"context"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/core/domain/model/product"
)

// CreateProductCommandHandler adds a product to the stock ledger. If an
// initial stock was given, an opening increase movement is booked in the
// same transaction so the level stays the fold of its movements.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewCreateProductCommandHandler creates a handler for product creation.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the product and, for a positive initial stock, the
// opening movement.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
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

	aggregate, err := product.NewProduct(
		cmd.ProductID(),
		cmd.Name(),
		cmd.Description(),
		cmd.CostPrice(),
		cmd.SellingPrice(),
	)
	if err != nil {
		return err
	}

	if cmd.InitialStock() > 0 {
		opening, err := product.NewMovement(kernel.NewUUID(), product.MovementIncrease, cmd.InitialStock(), product.ReasonOpeningStock)
		if err != nil {
			return err
		}
		if err = aggregate.RecordMovement(opening); err != nil {
			return err
		}
		if err = productRepo.Add(ctx, aggregate); err != nil {
			return err
		}
		if err = productRepo.AddMovement(ctx, aggregate.ID(), opening); err != nil {
			return err
		}
	} else if err = productRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
