package commands

import (
	"errors"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/core/domain/model/order"
	"entregas/internal/pkg/errs"
	"entregas/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to create a new delivery order.
// Carries the customer snapshot, optional notes and the order lines with
// their product-name and price snapshots.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, snapshot, "leave at gate", lines)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	customer order.CustomerSnapshot
	notes    string
	lines    []order.Line

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new delivery order.
// The customer snapshot and every line must be valid, and at least one
// line is required.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customer order.CustomerSnapshot,
	notes string,
	lines []order.Line,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomer(customer),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Customer returns the customer snapshot for the order.
func (c CreateOrderCommand) Customer() order.CustomerSnapshot {
	return c.customer
}

// Notes returns the free-text delivery notes.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

// Lines returns the order lines.
func (c CreateOrderCommand) Lines() []order.Line {
	out := make([]order.Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomer(customer order.CustomerSnapshot) error {
	if err := customer.Validate(); err != nil {
		return err
	}

	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setLines(lines []order.Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order lines")
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	c.lines = make([]order.Line, len(lines))
	copy(c.lines, lines)
	return nil
}
