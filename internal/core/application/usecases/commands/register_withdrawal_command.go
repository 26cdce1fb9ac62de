package commands

import (
	"errors"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/core/domain/model/register"
	"entregas/internal/pkg/guard"
)

var ErrRegisterWithdrawalCommandIsNotConstructed = errors.New(
	"RegisterWithdrawalCommand must be created via NewRegisterWithdrawalCommand constructor",
)

// RegisterWithdrawalCommand represents a request to take cash out of the
// day's open register. There is no ceiling on the amount.
type RegisterWithdrawalCommand struct { //nolint:recvcheck //using for validation
	date     kernel.Date
	movement register.Movement

	guard guard.ConstructorGuard
}

// NewRegisterWithdrawalCommand creates a command to record a withdrawal.
func NewRegisterWithdrawalCommand(date kernel.Date, movement register.Movement) (RegisterWithdrawalCommand, error) {
	cmd := RegisterWithdrawalCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDate(date),
		cmd.setMovement(movement),
	); err != nil {
		return RegisterWithdrawalCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterWithdrawalCommand) Validate() error {
	return c.guard.Validate(ErrRegisterWithdrawalCommandIsNotConstructed)
}

// Date returns the day whose register takes the withdrawal.
func (c RegisterWithdrawalCommand) Date() kernel.Date {
	return c.date
}

// Movement returns the withdrawal to record.
func (c RegisterWithdrawalCommand) Movement() register.Movement {
	return c.movement
}

func (c *RegisterWithdrawalCommand) setDate(date kernel.Date) error {
	if err := date.Validate(); err != nil {
		return err
	}

	c.date = date
	return nil
}

func (c *RegisterWithdrawalCommand) setMovement(movement register.Movement) error {
	if err := movement.Validate(); err != nil {
		return err
	}

	c.movement = movement
	return nil
}
