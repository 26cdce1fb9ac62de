package commands

import (
	"errors"
	"fmt"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/pkg/errs"
	"entregas/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents a request to add a product to the stock
// ledger. A positive initial stock is booked as an opening increase
// movement.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID    kernel.UUID
	name         string
	description  string
	costPrice    decimal.Decimal
	sellingPrice decimal.Decimal
	initialStock int

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a product.
func NewCreateProductCommand(
	productID kernel.UUID,
	name string,
	description string,
	costPrice decimal.Decimal,
	sellingPrice decimal.Decimal,
	initialStock int,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setName(name),
		cmd.setCostPrice(costPrice),
		cmd.setSellingPrice(sellingPrice),
		cmd.setInitialStock(initialStock),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the identifier for the new product.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the product name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Description returns the product description.
func (c CreateProductCommand) Description() string {
	return c.description
}

// CostPrice returns the purchase cost per unit.
func (c CreateProductCommand) CostPrice() decimal.Decimal {
	return c.costPrice
}

// SellingPrice returns the sale price per unit.
func (c CreateProductCommand) SellingPrice() decimal.Decimal {
	return c.sellingPrice
}

// InitialStock returns the opening stock quantity. Zero means no opening
// movement is booked.
func (c CreateProductCommand) InitialStock() int {
	return c.initialStock
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setCostPrice(costPrice decimal.Decimal) error {
	if costPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("cost price", fmt.Errorf("%s is negative", costPrice))
	}

	c.costPrice = costPrice
	return nil
}

func (c *CreateProductCommand) setSellingPrice(sellingPrice decimal.Decimal) error {
	if sellingPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("selling price", fmt.Errorf("%s is negative", sellingPrice))
	}

	c.sellingPrice = sellingPrice
	return nil
}

func (c *CreateProductCommand) setInitialStock(initialStock int) error {
	if initialStock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("initial stock", fmt.Errorf("%d is negative", initialStock))
	}

	c.initialStock = initialStock
	return nil
}
