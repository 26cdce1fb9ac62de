package commands

import (
	"errors"
	"fmt"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/pkg/errs"
	"entregas/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrOpenRegisterCommandIsNotConstructed = errors.New(
	"OpenRegisterCommand must be created via NewOpenRegisterCommand constructor",
)

// OpenRegisterCommand represents a request to open the cash register for a
// date. Only one register may exist per date.
type OpenRegisterCommand struct { //nolint:recvcheck //using for validation
	registerID     kernel.UUID
	date           kernel.Date
	openingBalance decimal.Decimal

	guard guard.ConstructorGuard
}

// NewOpenRegisterCommand creates a command to open the register.
func NewOpenRegisterCommand(
	registerID kernel.UUID,
	date kernel.Date,
	openingBalance decimal.Decimal,
) (OpenRegisterCommand, error) {
	cmd := OpenRegisterCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRegisterID(registerID),
		cmd.setDate(date),
		cmd.setOpeningBalance(openingBalance),
	); err != nil {
		return OpenRegisterCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c OpenRegisterCommand) Validate() error {
	return c.guard.Validate(ErrOpenRegisterCommandIsNotConstructed)
}

// RegisterID returns the identifier for the new register.
func (c OpenRegisterCommand) RegisterID() kernel.UUID {
	return c.registerID
}

// Date returns the day the register covers.
func (c OpenRegisterCommand) Date() kernel.Date {
	return c.date
}

// OpeningBalance returns the cash in the drawer at open.
func (c OpenRegisterCommand) OpeningBalance() decimal.Decimal {
	return c.openingBalance
}

func (c *OpenRegisterCommand) setRegisterID(registerID kernel.UUID) error {
	if err := registerID.Validate(); err != nil {
		return err
	}

	c.registerID = registerID
	return nil
}

func (c *OpenRegisterCommand) setDate(date kernel.Date) error {
	if err := date.Validate(); err != nil {
		return err
	}

	c.date = date
	return nil
}

func (c *OpenRegisterCommand) setOpeningBalance(openingBalance decimal.Decimal) error {
	if openingBalance.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"opening balance",
			fmt.Errorf("%s is negative", openingBalance),
		)
	}

	c.openingBalance = openingBalance
	return nil
}
