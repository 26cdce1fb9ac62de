package commands

import (
	"errors"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/core/domain/model/register"
	"entregas/internal/pkg/guard"
)

var ErrRegisterDepositCommandIsNotConstructed = errors.New(
	"RegisterDepositCommand must be created via NewRegisterDepositCommand constructor",
)

// RegisterDepositCommand represents a request to put cash into the day's
// open register.
type RegisterDepositCommand struct { //nolint:recvcheck //using for validation
	date     kernel.Date
	movement register.Movement

	guard guard.ConstructorGuard
}

// NewRegisterDepositCommand creates a command to record a deposit.
func NewRegisterDepositCommand(date kernel.Date, movement register.Movement) (RegisterDepositCommand, error) {
	cmd := RegisterDepositCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDate(date),
		cmd.setMovement(movement),
	); err != nil {
		return RegisterDepositCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterDepositCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDepositCommandIsNotConstructed)
}

// Date returns the day whose register takes the deposit.
func (c RegisterDepositCommand) Date() kernel.Date {
	return c.date
}

// Movement returns the deposit to record.
func (c RegisterDepositCommand) Movement() register.Movement {
	return c.movement
}

func (c *RegisterDepositCommand) setDate(date kernel.Date) error {
	if err := date.Validate(); err != nil {
		return err
	}

	c.date = date
	return nil
}

func (c *RegisterDepositCommand) setMovement(movement register.Movement) error {
	if err := movement.Validate(); err != nil {
		return err
	}

	c.movement = movement
	return nil
}
