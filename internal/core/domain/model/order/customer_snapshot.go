package order

import (
	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/pkg/errs"
	"entregas/internal/pkg/guard"
)

// ErrCustomerSnapshotIsNotConstructed is returned when a CustomerSnapshot was not
// created through NewCustomerSnapshot.
var ErrCustomerSnapshotIsNotConstructed = errs.NewValueIsRequiredError(
	"CustomerSnapshot must be created via NewCustomerSnapshot",
)

// CustomerSnapshot is the denormalized customer data frozen into an order at
// creation time. Later edits to the customer record do not follow into orders
// already created.
//
// The customer reference is optional: ad-hoc walk-in orders carry only the
// snapshot. When present, the reference is not checked against the customer
// directory; a dangling reference is not an error at write time.
type CustomerSnapshot struct {
	customerID *kernel.UUID
	name       string
	address    string
	phone      string

	guard guard.ConstructorGuard
}

// NewCustomerSnapshot creates a customer snapshot. Name and address are
// required; the phone and the customer reference are optional.
func NewCustomerSnapshot(customerID *kernel.UUID, name, address, phone string) (CustomerSnapshot, error) {
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return CustomerSnapshot{}, err
		}
	}
	if name == "" {
		return CustomerSnapshot{}, errs.NewValueIsRequiredError("customer name")
	}
	if address == "" {
		return CustomerSnapshot{}, errs.NewValueIsRequiredError("customer address")
	}

	return CustomerSnapshot{
		customerID: customerID,
		name:       name,
		address:    address,
		phone:      phone,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the snapshot was created through NewCustomerSnapshot.
func (s CustomerSnapshot) Validate() error {
	return s.guard.Validate(ErrCustomerSnapshotIsNotConstructed)
}

// CustomerID returns the optional customer directory reference.
// Returns nil for ad-hoc orders.
func (s CustomerSnapshot) CustomerID() *kernel.UUID {
	return s.customerID
}

// Name returns the customer name at order creation.
func (s CustomerSnapshot) Name() string {
	return s.name
}

// Address returns the delivery address at order creation.
func (s CustomerSnapshot) Address() string {
	return s.address
}

// Phone returns the customer phone at order creation, or "" if none was given.
func (s CustomerSnapshot) Phone() string {
	return s.phone
}
