package commands

import (
	"errors"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/core/domain/model/order"
	"entregas/internal/pkg/guard"
)

var ErrAddPaymentCommandIsNotConstructed = errors.New(
	"AddPaymentCommand must be created via NewAddPaymentCommand constructor",
)

// AddPaymentCommand represents a request to record a payment against an
// order. Payments are append-only; partial and over-payments are accepted.
type AddPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	payment order.Payment

	guard guard.ConstructorGuard
}

// NewAddPaymentCommand creates a command to record a payment.
func NewAddPaymentCommand(orderID kernel.UUID, payment order.Payment) (AddPaymentCommand, error) {
	cmd := AddPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPayment(payment),
	); err != nil {
		return AddPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddPaymentCommand) Validate() error {
	return c.guard.Validate(ErrAddPaymentCommandIsNotConstructed)
}

// OrderID returns the order receiving the payment.
func (c AddPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Payment returns the payment to record.
func (c AddPaymentCommand) Payment() order.Payment {
	return c.payment
}

func (c *AddPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddPaymentCommand) setPayment(payment order.Payment) error {
	if err := payment.Validate(); err != nil {
		return err
	}

	c.payment = payment
	return nil
}
