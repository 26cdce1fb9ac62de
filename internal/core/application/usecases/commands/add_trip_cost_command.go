package commands

import (
	"errors"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/core/domain/model/order"
	"entregas/internal/pkg/guard"
)

var ErrAddTripCostCommandIsNotConstructed = errors.New(
	"AddTripCostCommand must be created via NewAddTripCostCommand constructor",
)

// AddTripCostCommand represents a request to book a delivery expense
// against an active order. Adding a cost lowers the order's net amount.
type AddTripCostCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	cost    order.TripCost

	guard guard.ConstructorGuard
}

// NewAddTripCostCommand creates a command to add a trip cost to an order.
func NewAddTripCostCommand(orderID kernel.UUID, cost order.TripCost) (AddTripCostCommand, error) {
	cmd := AddTripCostCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCost(cost),
	); err != nil {
		return AddTripCostCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddTripCostCommand) Validate() error {
	return c.guard.Validate(ErrAddTripCostCommandIsNotConstructed)
}

// OrderID returns the order taking the expense.
func (c AddTripCostCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Cost returns the expense to book.
func (c AddTripCostCommand) Cost() order.TripCost {
	return c.cost
}

func (c *AddTripCostCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddTripCostCommand) setCost(cost order.TripCost) error {
	if err := cost.Validate(); err != nil {
		return err
	}

	c.cost = cost
	return nil
}
