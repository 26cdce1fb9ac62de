package commands

import (
	"errors"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/pkg/guard"
)

var ErrCloseRegisterCommandIsNotConstructed = errors.New(
	"CloseRegisterCommand must be created via NewCloseRegisterCommand constructor",
)

// CloseRegisterCommand represents a request to close the register for a
// date, freezing its closing balance.
type CloseRegisterCommand struct { //nolint:recvcheck //using for validation
	date  kernel.Date
	notes string

	guard guard.ConstructorGuard
}

// NewCloseRegisterCommand creates a command to close the register.
// Notes are optional closing remarks.
func NewCloseRegisterCommand(date kernel.Date, notes string) (CloseRegisterCommand, error) {
	if err := date.Validate(); err != nil {
		return CloseRegisterCommand{}, err
	}

	return CloseRegisterCommand{
		date:  date,
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseRegisterCommand) Validate() error {
	return c.guard.Validate(ErrCloseRegisterCommandIsNotConstructed)
}

// Date returns the day whose register is closed.
func (c CloseRegisterCommand) Date() kernel.Date {
	return c.date
}

// Notes returns the closing remarks.
func (c CloseRegisterCommand) Notes() string {
	return c.notes
}
