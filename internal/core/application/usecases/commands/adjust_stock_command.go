package commands

import (
	"errors"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/core/domain/model/product"
	"entregas/internal/pkg/guard"
)

var ErrAdjustStockCommandIsNotConstructed = errors.New(
	"AdjustStockCommand must be created via NewAdjustStockCommand constructor",
)

// AdjustStockCommand represents a request to book a stock movement against
// a product. The resulting level may go negative.
type AdjustStockCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	movement  product.Movement

	guard guard.ConstructorGuard
}

// NewAdjustStockCommand creates a command to adjust a product's stock.
func NewAdjustStockCommand(productID kernel.UUID, movement product.Movement) (AdjustStockCommand, error) {
	cmd := AdjustStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setMovement(movement),
	); err != nil {
		return AdjustStockCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdjustStockCommand) Validate() error {
	return c.guard.Validate(ErrAdjustStockCommandIsNotConstructed)
}

// ProductID returns the product being adjusted.
func (c AdjustStockCommand) ProductID() kernel.UUID {
	return c.productID
}

// Movement returns the stock movement to book.
func (c AdjustStockCommand) Movement() product.Movement {
	return c.movement
}

func (c *AdjustStockCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AdjustStockCommand) setMovement(movement product.Movement) error {
	if err := movement.Validate(); err != nil {
		return err
	}

	c.movement = movement
	return nil
}
