package commands

import (
	"errors"
	"fmt"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/pkg/errs"
	"entregas/internal/pkg/guard"
)

var ErrUpdateReturnStatusCommandIsNotConstructed = errors.New(
	"UpdateReturnStatusCommand must be created via NewUpdateReturnStatusCommand constructor",
)

// ReturnStatus is the resolution state of a return request.
type ReturnStatus string

const (
	ReturnPending  ReturnStatus = "pending"
	ReturnApproved ReturnStatus = "approved"
	ReturnRejected ReturnStatus = "rejected"
)

// Validate checks the status against the closed set.
func (s ReturnStatus) Validate() error {
	switch s {
	case ReturnPending, ReturnApproved, ReturnRejected:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"return status",
			fmt.Errorf("%q is not a valid return status", string(s)),
		)
	}
}

// UpdateReturnStatusCommand represents a request to move a return through
// its resolution states. Like the return itself, the update is journaled
// only.
type UpdateReturnStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  ReturnStatus

	guard guard.ConstructorGuard
}

// NewUpdateReturnStatusCommand creates a command to update a return's status.
func NewUpdateReturnStatusCommand(orderID kernel.UUID, status ReturnStatus) (UpdateReturnStatusCommand, error) {
	cmd := UpdateReturnStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
	); err != nil {
		return UpdateReturnStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateReturnStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateReturnStatusCommandIsNotConstructed)
}

// OrderID returns the order whose return is updated.
func (c UpdateReturnStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the new return status.
func (c UpdateReturnStatusCommand) Status() ReturnStatus {
	return c.status
}

func (c *UpdateReturnStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateReturnStatusCommand) setStatus(status ReturnStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
