// Package customerrepo persists customer credit accounts and their ledger
// entries. The ledger table is append-only: rows are inserted, never
// updated or removed.
package customerrepo

import (
	"time"

	"entregas/internal/core/domain/model/customer"
	"entregas/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerDTO represents the database structure for persisting customer
// accounts. Balance is the folded result of the ledger, stored for cheap
// reads.
type CustomerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Phone     string
	Address   string
	Balance   decimal.Decimal `gorm:"type:decimal(20,4)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

// TransactionDTO represents one ledger entry of a customer account.
type TransactionDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID  uuid.UUID `gorm:"type:uuid;index"`
	Kind        string
	Amount      decimal.Decimal `gorm:"type:decimal(20,4)"`
	Description string
	OccurredAt  time.Time `gorm:"index"`
}

// TableName specifies the database table name for ledger entries.
func (TransactionDTO) TableName() string {
	return "customer_transactions"
}

func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Phone:     aggregate.Phone(),
		Address:   aggregate.Address(),
		Balance:   aggregate.Balance(),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(
		id,
		dto.Name,
		dto.Phone,
		dto.Address,
		dto.Balance,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func transactionFromDomain(customerID kernel.UUID, transaction customer.Transaction) TransactionDTO {
	return TransactionDTO{
		ID:          transaction.ID().Bytes(),
		CustomerID:  customerID.Bytes(),
		Kind:        string(transaction.Kind()),
		Amount:      transaction.Amount(),
		Description: transaction.Description(),
		OccurredAt:  transaction.OccurredAt(),
	}
}

func transactionToDomain(dto TransactionDTO) (customer.Transaction, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return customer.Transaction{}, err
	}

	return customer.RestoreTransaction(
		id,
		customer.TransactionKind(dto.Kind),
		dto.Amount,
		dto.Description,
		dto.OccurredAt,
	)
}
