package commands

import (
	"errors"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/pkg/errs"
	"entregas/internal/pkg/guard"
)

var ErrProcessReturnCommandIsNotConstructed = errors.New(
	"ProcessReturnCommand must be created via NewProcessReturnCommand constructor",
)

// ProcessReturnCommand represents a request to open a return for a
// delivered order. Returns are recorded as intent only; they do not touch
// order amounts or the ledgers.
type ProcessReturnCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

// NewProcessReturnCommand creates a command to open a return.
func NewProcessReturnCommand(orderID kernel.UUID, reason string) (ProcessReturnCommand, error) {
	cmd := ProcessReturnCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setReason(reason),
	); err != nil {
		return ProcessReturnCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessReturnCommand) Validate() error {
	return c.guard.Validate(ErrProcessReturnCommandIsNotConstructed)
}

// OrderID returns the order being returned.
func (c ProcessReturnCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Reason returns why the return was opened.
func (c ProcessReturnCommand) Reason() string {
	return c.reason
}

func (c *ProcessReturnCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ProcessReturnCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("return reason")
	}

	c.reason = reason
	return nil
}
