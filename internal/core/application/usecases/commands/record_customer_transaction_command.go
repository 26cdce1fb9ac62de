package commands

import (
	"errors"

	"entregas/internal/core/domain/model/customer"
	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/pkg/guard"
)

var ErrRecordCustomerTransactionCommandIsNotConstructed = errors.New(
	"RecordCustomerTransactionCommand must be created via NewRecordCustomerTransactionCommand constructor",
)

// RecordCustomerTransactionCommand represents a request to append a ledger
// entry to a customer account. Entry and resulting balance commit together.
type RecordCustomerTransactionCommand struct { //nolint:recvcheck //using for validation
	customerID  kernel.UUID
	transaction customer.Transaction

	guard guard.ConstructorGuard
}

// NewRecordCustomerTransactionCommand creates a command to record a ledger
// entry.
func NewRecordCustomerTransactionCommand(
	customerID kernel.UUID,
	transaction customer.Transaction,
) (RecordCustomerTransactionCommand, error) {
	cmd := RecordCustomerTransactionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setTransaction(transaction),
	); err != nil {
		return RecordCustomerTransactionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordCustomerTransactionCommand) Validate() error {
	return c.guard.Validate(ErrRecordCustomerTransactionCommandIsNotConstructed)
}

// CustomerID returns the account taking the entry.
func (c RecordCustomerTransactionCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Transaction returns the ledger entry to record.
func (c RecordCustomerTransactionCommand) Transaction() customer.Transaction {
	return c.transaction
}

func (c *RecordCustomerTransactionCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *RecordCustomerTransactionCommand) setTransaction(transaction customer.Transaction) error {
	if err := transaction.Validate(); err != nil {
		return err
	}

	c.transaction = transaction
	return nil
}
