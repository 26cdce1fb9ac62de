package customer

import (
	"errors"
	"time"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrCustomerIsNotConstructed is returned when a Customer instance was not created
	// through proper constructors.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
)

// Customer is a credit-ledger account holder. The balance is derived: it is
// always the fold of all signed transaction amounts, and every recorded
// transaction applies its delta in the same aggregate mutation so entry and
// balance persist together.
//
// The balance may go negative; a negative balance means the customer owes.
type Customer struct {
	id        kernel.UUID
	name      string
	phone     string
	address   string
	balance   decimal.Decimal
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewCustomer creates an account with a zero balance. Name is required;
// phone and address are optional contact details.
func NewCustomer(id kernel.UUID, name, phone, address string) (*Customer, error) {
	c := &Customer{
		phone:         phone,
		address:       address,
		balance:       decimal.Zero,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	now := time.Now()
	c.createdAt = now
	c.updatedAt = now

	return c, nil
}

// RestoreCustomer recreates a Customer from persistence with its stored
// balance.
func RestoreCustomer(
	id kernel.UUID,
	name string,
	phone string,
	address string,
	balance decimal.Decimal,
	createdAt time.Time,
	updatedAt time.Time,
) (*Customer, error) {
	c := &Customer{
		phone:         phone,
		address:       address,
		balance:       balance,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	c.createdAt = createdAt
	c.updatedAt = updatedAt

	return c, nil
}

// Validate ensures the Customer instance was properly constructed.
func (c *Customer) Validate() error {
	if !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// IsEqual compares customers by identity.
func (c *Customer) IsEqual(other *Customer) bool {
	return c.id.IsEqual(other.id)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's name.
func (c *Customer) Name() string {
	return c.name
}

// Phone returns the customer's phone number.
func (c *Customer) Phone() string {
	return c.phone
}

// Address returns the customer's address.
func (c *Customer) Address() string {
	return c.address
}

// Balance returns the current ledger balance.
func (c *Customer) Balance() decimal.Decimal {
	return c.balance
}

// CreatedAt returns when the account was created.
func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}

// UpdatedAt returns when the account was last modified.
func (c *Customer) UpdatedAt() time.Time {
	return c.updatedAt
}

// RecordTransaction applies a ledger entry's signed amount to the balance.
// The caller persists the entry and the updated balance in one transaction.
func (c *Customer) RecordTransaction(transaction Transaction) error {
	if err := transaction.Validate(); err != nil {
		return err
	}

	c.balance = c.balance.Add(transaction.SignedAmount())
	c.touch()
	return nil
}

func (c *Customer) touch() {
	c.updatedAt = time.Now()
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	c.name = name
	return nil
}
