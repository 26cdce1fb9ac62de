package commands

import (
	"errors"
	"fmt"

	"entregas/internal/core/domain/model/cost"
	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/pkg/errs"
	"entregas/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrRecordCostCommandIsNotConstructed = errors.New(
	"RecordCostCommand must be created via NewRecordCostCommand constructor",
)

// RecordCostCommand represents a request to record a dated operational
// expense under one of the closed categories.
type RecordCostCommand struct { //nolint:recvcheck //using for validation
	costID      kernel.UUID
	date        kernel.Date
	description string
	amount      decimal.Decimal
	category    cost.Category
	notes       string

	guard guard.ConstructorGuard
}

// NewRecordCostCommand creates a command to record an expense.
func NewRecordCostCommand(
	costID kernel.UUID,
	date kernel.Date,
	description string,
	amount decimal.Decimal,
	category cost.Category,
	notes string,
) (RecordCostCommand, error) {
	cmd := RecordCostCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCostID(costID),
		cmd.setDate(date),
		cmd.setDescription(description),
		cmd.setAmount(amount),
		cmd.setCategory(category),
	); err != nil {
		return RecordCostCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordCostCommand) Validate() error {
	return c.guard.Validate(ErrRecordCostCommandIsNotConstructed)
}

// CostID returns the identifier for the expense entry.
func (c RecordCostCommand) CostID() kernel.UUID {
	return c.costID
}

// Date returns the day the expense belongs to.
func (c RecordCostCommand) Date() kernel.Date {
	return c.date
}

// Description returns the expense description.
func (c RecordCostCommand) Description() string {
	return c.description
}

// Amount returns the expense amount.
func (c RecordCostCommand) Amount() decimal.Decimal {
	return c.amount
}

// Category returns the expense category.
func (c RecordCostCommand) Category() cost.Category {
	return c.category
}

// Notes returns the optional notes.
func (c RecordCostCommand) Notes() string {
	return c.notes
}

func (c *RecordCostCommand) setCostID(costID kernel.UUID) error {
	if err := costID.Validate(); err != nil {
		return err
	}

	c.costID = costID
	return nil
}

func (c *RecordCostCommand) setDate(date kernel.Date) error {
	if err := date.Validate(); err != nil {
		return err
	}

	c.date = date
	return nil
}

func (c *RecordCostCommand) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("cost description")
	}

	c.description = description
	return nil
}

func (c *RecordCostCommand) setAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("cost amount", fmt.Errorf("%s is not greater than 0", amount))
	}

	c.amount = amount
	return nil
}

func (c *RecordCostCommand) setCategory(category cost.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	c.category = category
	return nil
}
