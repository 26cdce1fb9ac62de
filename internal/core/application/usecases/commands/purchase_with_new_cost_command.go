package commands

import (
	"errors"
	"fmt"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/pkg/errs"
	"entregas/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrPurchaseWithNewCostCommandIsNotConstructed = errors.New(
	"PurchaseWithNewCostCommand must be created via NewPurchaseWithNewCostCommand constructor",
)

// PurchaseWithNewCostCommand represents a stock purchase at a cost price
// different from the product's current one. Instead of repricing, the
// purchase forks a variant product and books the quantity against it.
type PurchaseWithNewCostCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	variantID kernel.UUID
	costPrice decimal.Decimal
	quantity  int

	guard guard.ConstructorGuard
}

// NewPurchaseWithNewCostCommand creates a command for a purchase at a new
// cost price.
func NewPurchaseWithNewCostCommand(
	productID kernel.UUID,
	variantID kernel.UUID,
	costPrice decimal.Decimal,
	quantity int,
) (PurchaseWithNewCostCommand, error) {
	cmd := PurchaseWithNewCostCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setVariantID(variantID),
		cmd.setCostPrice(costPrice),
		cmd.setQuantity(quantity),
	); err != nil {
		return PurchaseWithNewCostCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PurchaseWithNewCostCommand) Validate() error {
	return c.guard.Validate(ErrPurchaseWithNewCostCommandIsNotConstructed)
}

// ProductID returns the product whose purchase came at a new cost.
func (c PurchaseWithNewCostCommand) ProductID() kernel.UUID {
	return c.productID
}

// VariantID returns the identifier for the forked variant.
func (c PurchaseWithNewCostCommand) VariantID() kernel.UUID {
	return c.variantID
}

// CostPrice returns the new purchase cost per unit.
func (c PurchaseWithNewCostCommand) CostPrice() decimal.Decimal {
	return c.costPrice
}

// Quantity returns the purchased quantity.
func (c PurchaseWithNewCostCommand) Quantity() int {
	return c.quantity
}

func (c *PurchaseWithNewCostCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *PurchaseWithNewCostCommand) setVariantID(variantID kernel.UUID) error {
	if err := variantID.Validate(); err != nil {
		return err
	}

	c.variantID = variantID
	return nil
}

func (c *PurchaseWithNewCostCommand) setCostPrice(costPrice decimal.Decimal) error {
	if costPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("cost price", fmt.Errorf("%s is negative", costPrice))
	}

	c.costPrice = costPrice
	return nil
}

func (c *PurchaseWithNewCostCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	c.quantity = quantity
	return nil
}
