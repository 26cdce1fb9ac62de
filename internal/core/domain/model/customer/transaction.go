package customer

import (
	"fmt"
	"time"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/pkg/errs"
	"entregas/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrTransactionIsNotConstructed is returned when a Transaction was not created
// through NewTransaction.
var ErrTransactionIsNotConstructed = errs.NewValueIsRequiredError("Transaction must be created via NewTransaction")

// TransactionKind is the direction of a ledger entry: credit raises the
// customer's balance, debit lowers it.
type TransactionKind string

const (
	TransactionCredit TransactionKind = "credit"
	TransactionDebit  TransactionKind = "debit"
)

// Validate checks the kind against the closed set of directions.
func (k TransactionKind) Validate() error {
	switch k {
	case TransactionCredit, TransactionDebit:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"transaction kind",
			fmt.Errorf("%q is not a valid transaction kind", string(k)),
		)
	}
}

// SignedAmount applies the direction to an amount: positive for credit,
// negative for debit.
func (k TransactionKind) SignedAmount(amount decimal.Decimal) decimal.Decimal {
	if k == TransactionDebit {
		return amount.Neg()
	}
	return amount
}

// Transaction is one append-only entry in a customer's credit ledger.
// Entries are never edited or removed; the customer balance is the fold
// of all signed entry amounts.
type Transaction struct {
	id          kernel.UUID
	kind        TransactionKind
	amount      decimal.Decimal
	description string
	occurredAt  time.Time

	guard guard.ConstructorGuard
}

// NewTransaction creates a ledger entry stamped with the current time.
// The amount must be positive; sign comes from the kind.
func NewTransaction(id kernel.UUID, kind TransactionKind, amount decimal.Decimal, description string) (Transaction, error) {
	return RestoreTransaction(id, kind, amount, description, time.Now())
}

// RestoreTransaction recreates an entry from persistence.
func RestoreTransaction(
	id kernel.UUID,
	kind TransactionKind,
	amount decimal.Decimal,
	description string,
	occurredAt time.Time,
) (Transaction, error) {
	if err := id.Validate(); err != nil {
		return Transaction{}, err
	}
	if err := kind.Validate(); err != nil {
		return Transaction{}, err
	}
	if !amount.IsPositive() {
		return Transaction{}, errs.NewValueIsInvalidErrorWithCause(
			"transaction amount",
			fmt.Errorf("%s is not greater than 0", amount),
		)
	}

	return Transaction{
		id:          id,
		kind:        kind,
		amount:      amount,
		description: description,
		occurredAt:  occurredAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the transaction was created through NewTransaction.
func (t Transaction) Validate() error {
	return t.guard.Validate(ErrTransactionIsNotConstructed)
}

// ID returns the entry's unique identifier.
func (t Transaction) ID() kernel.UUID {
	return t.id
}

// Kind returns the entry direction.
func (t Transaction) Kind() TransactionKind {
	return t.kind
}

// Amount returns the unsigned entry amount.
func (t Transaction) Amount() decimal.Decimal {
	return t.amount
}

// SignedAmount returns the amount with the direction applied.
func (t Transaction) SignedAmount() decimal.Decimal {
	return t.kind.SignedAmount(t.amount)
}

// Description returns the free-text description of the entry.
func (t Transaction) Description() string {
	return t.description
}

// OccurredAt returns when the entry was recorded.
func (t Transaction) OccurredAt() time.Time {
	return t.occurredAt
}
