package commands

import (
	"errors"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/pkg/errs"
	"entregas/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand represents a request to open a customer credit
// account.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	name       string
	phone      string
	address    string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to open a customer account.
func NewCreateCustomerCommand(customerID kernel.UUID, name, phone, address string) (CreateCustomerCommand, error) {
	cmd := CreateCustomerCommand{
		phone:   phone,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setName(name),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// CustomerID returns the identifier for the new account.
func (c CreateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Name returns the customer's name.
func (c CreateCustomerCommand) Name() string {
	return c.name
}

// Phone returns the customer's phone number.
func (c CreateCustomerCommand) Phone() string {
	return c.phone
}

// Address returns the customer's address.
func (c CreateCustomerCommand) Address() string {
	return c.address
}

func (c *CreateCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateCustomerCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}

	c.name = name
	return nil
}
