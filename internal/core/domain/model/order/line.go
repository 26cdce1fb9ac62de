package order

import (
	"fmt"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/pkg/errs"
	"entregas/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrLineIsNotConstructed is returned when a Line was not created through NewLine.
var ErrLineIsNotConstructed = errs.NewValueIsRequiredError("Line must be created via NewLine")

// Line is a single order line item: a product reference with the quantity sold
// and the unit price charged. The product name is a snapshot taken at order
// creation and does not follow later product edits.
//
// Lines are immutable after the order is created; the order total is fixed by
// its lines at creation time.
type Line struct {
	productID   kernel.UUID
	productName string
	quantity    int
	unitPrice   decimal.Decimal

	guard guard.ConstructorGuard
}

// NewLine creates an order line. Quantity must be positive and the unit price
// must not be negative (free give-aways are representable with a zero price).
func NewLine(productID kernel.UUID, productName string, quantity int, unitPrice decimal.Decimal) (Line, error) {
	line := Line{
		guard: guard.NewConstructorGuard(),
	}

	if err := line.setProductID(productID); err != nil {
		return Line{}, err
	}
	if err := line.setProductName(productName); err != nil {
		return Line{}, err
	}
	if err := line.setQuantity(quantity); err != nil {
		return Line{}, err
	}
	if err := line.setUnitPrice(unitPrice); err != nil {
		return Line{}, err
	}

	return line, nil
}

// Validate ensures the line was created through NewLine.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// ProductID returns the referenced product's identifier.
func (l Line) ProductID() kernel.UUID {
	return l.productID
}

// ProductName returns the product name snapshot taken at order creation.
func (l Line) ProductName() string {
	return l.productName
}

// Quantity returns the number of units sold.
func (l Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the price charged per unit.
func (l Line) UnitPrice() decimal.Decimal {
	return l.unitPrice
}

// Subtotal returns quantity times unit price.
func (l Line) Subtotal() decimal.Decimal {
	return l.unitPrice.Mul(decimal.NewFromInt(int64(l.quantity)))
}

func (l *Line) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	l.productID = productID
	return nil
}

func (l *Line) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	l.productName = productName
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}

func (l *Line) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unit price", fmt.Errorf("%s is negative", unitPrice))
	}
	l.unitPrice = unitPrice
	return nil
}
