package cost

import (
	"errors"
	"fmt"
	"time"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrCostIsNotConstructed is returned when a Cost instance was not created
	// through proper constructors.
	ErrCostIsNotConstructed = errors.New("Cost must be created via NewCost constructor")
)

// Cost is a dated operational expense entry. Costs are independent of
// orders: they feed the daily cost view and are never netted against
// order amounts.
type Cost struct {
	id          kernel.UUID
	date        kernel.Date
	description string
	amount      decimal.Decimal
	category    Category
	notes       string
	createdAt   time.Time
	updatedAt   time.Time

	isConstructed bool
}

// NewCost creates an expense entry. Description and a positive amount are
// required; notes are optional.
func NewCost(
	id kernel.UUID,
	date kernel.Date,
	description string,
	amount decimal.Decimal,
	category Category,
	notes string,
) (*Cost, error) {
	c := &Cost{
		notes:         notes,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setDate(date),
		c.setDescription(description),
		c.setAmount(amount),
		c.setCategory(category),
	); err != nil {
		return nil, err
	}

	now := time.Now()
	c.createdAt = now
	c.updatedAt = now

	return c, nil
}

// RestoreCost recreates a Cost from persistence.
func RestoreCost(
	id kernel.UUID,
	date kernel.Date,
	description string,
	amount decimal.Decimal,
	category Category,
	notes string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Cost, error) {
	c := &Cost{
		notes:         notes,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setDate(date),
		c.setDescription(description),
		c.setAmount(amount),
		c.setCategory(category),
	); err != nil {
		return nil, err
	}

	c.createdAt = createdAt
	c.updatedAt = updatedAt

	return c, nil
}

// Validate ensures the Cost instance was properly constructed.
func (c *Cost) Validate() error {
	if !c.isConstructed {
		return ErrCostIsNotConstructed
	}
	return nil
}

// IsEqual compares costs by identity.
func (c *Cost) IsEqual(other *Cost) bool {
	return c.id.IsEqual(other.id)
}

// ID returns the entry's unique identifier.
func (c *Cost) ID() kernel.UUID {
	return c.id
}

// Date returns the day the expense belongs to.
func (c *Cost) Date() kernel.Date {
	return c.date
}

// Description returns the expense description.
func (c *Cost) Description() string {
	return c.description
}

// Amount returns the expense amount.
func (c *Cost) Amount() decimal.Decimal {
	return c.amount
}

// Category returns the expense category.
func (c *Cost) Category() Category {
	return c.category
}

// Notes returns the optional free-text notes.
func (c *Cost) Notes() string {
	return c.notes
}

// CreatedAt returns when the entry was recorded.
func (c *Cost) CreatedAt() time.Time {
	return c.createdAt
}

// UpdatedAt returns when the entry was last modified.
func (c *Cost) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Cost) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Cost) setDate(date kernel.Date) error {
	if err := date.Validate(); err != nil {
		return err
	}
	c.date = date
	return nil
}

func (c *Cost) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("cost description")
	}
	c.description = description
	return nil
}

func (c *Cost) setAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"cost amount",
			fmt.Errorf("%s is not greater than 0", amount),
		)
	}
	c.amount = amount
	return nil
}

func (c *Cost) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	c.category = category
	return nil
}
