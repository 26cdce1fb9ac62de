package ports

import (
	"context"

	"entregas/internal/core/domain/model/customer"
	"entregas/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer credit
// accounts and their ledger entries. Ledger entries are append-only: a
// recorded transaction and the resulting balance persist in the same unit
// of work.
type CustomerRepository interface {
	// Add persists a new customer account.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer, including the
	// balance after a recorded transaction.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetAll retrieves every customer account.
	GetAll(ctx context.Context) ([]*customer.Customer, error)

	// AddTransaction appends a ledger entry for the given customer.
	// Entries are never updated or removed.
	AddTransaction(ctx context.Context, customerID kernel.UUID, transaction customer.Transaction) error

	// GetTransactions retrieves a customer's ledger entries in recorded order.
	GetTransactions(ctx context.Context, customerID kernel.UUID) ([]customer.Transaction, error)
}
