package product

import (
	"errors"
	"fmt"
	"time"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not created
	// through proper constructors.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Product is a stock-ledger item. The stock level is derived: it is always
// the fold of all signed movement quantities, and it may go negative when
// sales are recorded ahead of a purchase.
//
// A purchase at a different cost price does not reprice the product; it
// forks a variant: a new product id sharing name, description and selling
// price, carrying the new cost price, with the purchased quantity booked
// against the new id. Old stock keeps selling at the old margin.
type Product struct {
	id           kernel.UUID
	name         string
	description  string
	costPrice    decimal.Decimal
	sellingPrice decimal.Decimal
	stock        int
	createdAt    time.Time
	updatedAt    time.Time

	isConstructed bool
}

// NewProduct creates a product with zero stock. The initial stock, if any,
// is booked by the caller as an opening increase movement.
func NewProduct(id kernel.UUID, name, description string, costPrice, sellingPrice decimal.Decimal) (*Product, error) {
	p := &Product{
		description:   description,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setCostPrice(costPrice),
		p.setSellingPrice(sellingPrice),
	); err != nil {
		return nil, err
	}

	now := time.Now()
	p.createdAt = now
	p.updatedAt = now

	return p, nil
}

// RestoreProduct recreates a Product from persistence with its stored
// stock level.
func RestoreProduct(
	id kernel.UUID,
	name string,
	description string,
	costPrice decimal.Decimal,
	sellingPrice decimal.Decimal,
	stock int,
	createdAt time.Time,
	updatedAt time.Time,
) (*Product, error) {
	p := &Product{
		description:   description,
		stock:         stock,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setCostPrice(costPrice),
		p.setSellingPrice(sellingPrice),
	); err != nil {
		return nil, err
	}

	p.createdAt = createdAt
	p.updatedAt = updatedAt

	return p, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// IsEqual compares products by identity.
func (p *Product) IsEqual(other *Product) bool {
	return p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the product's description.
func (p *Product) Description() string {
	return p.description
}

// CostPrice returns the purchase cost per unit.
func (p *Product) CostPrice() decimal.Decimal {
	return p.costPrice
}

// SellingPrice returns the sale price per unit.
func (p *Product) SellingPrice() decimal.Decimal {
	return p.sellingPrice
}

// Stock returns the current stock level. It may be negative.
func (p *Product) Stock() int {
	return p.stock
}

// CreatedAt returns when the product was created.
func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns when the product was last modified.
func (p *Product) UpdatedAt() time.Time {
	return p.updatedAt
}

// RecordMovement applies a stock movement's signed quantity to the stock
// level. The caller persists the movement and the updated level in one
// transaction. Stock is allowed to go negative.
func (p *Product) RecordMovement(movement Movement) error {
	if err := movement.Validate(); err != nil {
		return err
	}

	p.stock += movement.SignedQuantity()
	p.touch()
	return nil
}

// ForkVariant creates a new product sharing this product's name,
// description and selling price, carrying the given cost price and zero
// stock. The caller books the purchased quantity against the new id.
func (p *Product) ForkVariant(id kernel.UUID, costPrice decimal.Decimal) (*Product, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return NewProduct(id, p.name, p.description, costPrice, p.sellingPrice)
}

func (p *Product) touch() {
	p.updatedAt = time.Now()
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

func (p *Product) setCostPrice(costPrice decimal.Decimal) error {
	if costPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"cost price",
			fmt.Errorf("%s is negative", costPrice),
		)
	}
	p.costPrice = costPrice
	return nil
}

func (p *Product) setSellingPrice(sellingPrice decimal.Decimal) error {
	if sellingPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"selling price",
			fmt.Errorf("%s is negative", sellingPrice),
		)
	}
	p.sellingPrice = sellingPrice
	return nil
}
