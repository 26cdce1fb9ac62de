package commands

import (
	"errors"
	"fmt"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/pkg/errs"
	"entregas/internal/pkg/guard"
)

var ErrRemoveTripCostCommandIsNotConstructed = errors.New(
	"RemoveTripCostCommand must be created via NewRemoveTripCostCommand constructor",
)

// RemoveTripCostCommand represents a request to drop a previously booked
// trip cost, addressed by its position in the order's cost list.
type RemoveTripCostCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	index   int

	guard guard.ConstructorGuard
}

// NewRemoveTripCostCommand creates a command to remove a trip cost.
// The index must not be negative; the upper bound is checked against the
// loaded order.
func NewRemoveTripCostCommand(orderID kernel.UUID, index int) (RemoveTripCostCommand, error) {
	cmd := RemoveTripCostCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setIndex(index),
	); err != nil {
		return RemoveTripCostCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveTripCostCommand) Validate() error {
	return c.guard.Validate(ErrRemoveTripCostCommandIsNotConstructed)
}

// OrderID returns the order dropping the expense.
func (c RemoveTripCostCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Index returns the position of the expense in the order's cost list.
func (c RemoveTripCostCommand) Index() int {
	return c.index
}

func (c *RemoveTripCostCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RemoveTripCostCommand) setIndex(index int) error {
	if index < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"trip cost index",
			fmt.Errorf("%d is negative", index),
		)
	}

	c.index = index
	return nil
}
