package kernel

import (
	"fmt"

	"entregas/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates that a UUID was not properly initialized
// through one of the constructor functions. This error is returned when
// validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError(
	"UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes",
)

// UUID is a value object identifying every aggregate in the system: orders,
// products and their variants, customers, cost entries and register days.
// It wraps github.com/google/uuid so the domain never handles raw identifier
// types directly.
//
// The zero value of UUID is invalid and must be constructed using NewUUID,
// UUIDFromString or UUIDFromBytes. UUID is immutable and safe for concurrent
// use.
//
// Example usage:
//
//	orderID := kernel.NewUUID()
//
//	driverID, err := kernel.UUIDFromString("9b2f8a44-0d3c-4f6e-9a11-7c25b0a4d2e1")
//	if err != nil {
//	    // handle error
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random (version 4) identifier. All aggregate ids
// are minted this way, including the variant id produced by a purchase at a
// new cost price.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses a UUID from its canonical string representation.
// Used for ids arriving on the wire: path parameters and request bodies.
// Returns an error if the string is not a valid UUID.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes reconstructs a UUID from its 16-byte form, the shape the
// postgres uuid columns scan into. Unlike UUIDFromString it also rejects the
// nil UUID, since a nil id read back from storage is always a data fault.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
// A zero-value UUID renders as all zeros.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying uuid.UUID, which the DTO layer stores in
// uuid-typed columns. Slice it (`u.Bytes()[:]`) for a raw byte form.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether both UUIDs carry the same value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the zero value, so aggregate
// constructors can reject ids that skipped the factory functions.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
