package commands

import (
	"errors"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/pkg/guard"
)

var ErrStartOrderCommandIsNotConstructed = errors.New(
	"StartOrderCommand must be created via NewStartOrderCommand constructor",
)

// StartOrderCommand represents a request to start the delivery run for an
// assigned order.
type StartOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartOrderCommand creates a command to start an order's delivery run.
func NewStartOrderCommand(orderID kernel.UUID) (StartOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return StartOrderCommand{}, err
	}

	return StartOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartOrderCommand) Validate() error {
	return c.guard.Validate(ErrStartOrderCommandIsNotConstructed)
}

// OrderID returns the order to start.
func (c StartOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
