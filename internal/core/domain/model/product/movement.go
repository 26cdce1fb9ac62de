package product

import (
	"fmt"
	"time"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/pkg/errs"
	"entregas/internal/pkg/guard"
)

// ErrMovementIsNotConstructed is returned when a Movement was not created through NewMovement.
var ErrMovementIsNotConstructed = errs.NewValueIsRequiredError("Movement must be created via NewMovement")

// MovementKind is the direction of a stock movement.
type MovementKind string

const (
	MovementIncrease MovementKind = "increase"
	MovementDecrease MovementKind = "decrease"
)

// Reasons stamped on movements the application records on its own, as
// opposed to reasons typed in by the operator.
const (
	ReasonOpeningStock   = "estoque inicial"
	ReasonCostedPurchase = "compra com novo custo"
)

// Validate checks the kind against the closed set of directions.
func (k MovementKind) Validate() error {
	switch k {
	case MovementIncrease, MovementDecrease:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"movement kind",
			fmt.Errorf("%q is not a valid movement kind", string(k)),
		)
	}
}

// SignedQuantity applies the direction to a quantity: positive for
// increase, negative for decrease.
func (k MovementKind) SignedQuantity(quantity int) int {
	if k == MovementDecrease {
		return -quantity
	}
	return quantity
}

// Movement is one append-only entry in a product's stock ledger. The
// product's stock level is the fold of all signed movement quantities.
// Movements survive product deletion; the history is never cascaded.
type Movement struct {
	id         kernel.UUID
	kind       MovementKind
	quantity   int
	reason     string
	occurredAt time.Time

	guard guard.ConstructorGuard
}

// NewMovement creates a stock movement stamped with the current time.
// The quantity must be positive; direction comes from the kind.
func NewMovement(id kernel.UUID, kind MovementKind, quantity int, reason string) (Movement, error) {
	return RestoreMovement(id, kind, quantity, reason, time.Now())
}

// RestoreMovement recreates a movement from persistence.
func RestoreMovement(
	id kernel.UUID,
	kind MovementKind,
	quantity int,
	reason string,
	occurredAt time.Time,
) (Movement, error) {
	if err := id.Validate(); err != nil {
		return Movement{}, err
	}
	if err := kind.Validate(); err != nil {
		return Movement{}, err
	}
	if quantity <= 0 {
		return Movement{}, errs.NewValueIsInvalidErrorWithCause(
			"movement quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	return Movement{
		id:         id,
		kind:       kind,
		quantity:   quantity,
		reason:     reason,
		occurredAt: occurredAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the movement was created through NewMovement.
func (m Movement) Validate() error {
	return m.guard.Validate(ErrMovementIsNotConstructed)
}

// ID returns the movement's unique identifier.
func (m Movement) ID() kernel.UUID {
	return m.id
}

// Kind returns the movement direction.
func (m Movement) Kind() MovementKind {
	return m.kind
}

// Quantity returns the unsigned moved quantity.
func (m Movement) Quantity() int {
	return m.quantity
}

// SignedQuantity returns the quantity with the direction applied.
func (m Movement) SignedQuantity() int {
	return m.kind.SignedQuantity(m.quantity)
}

// Reason returns the free-text reason for the movement.
func (m Movement) Reason() string {
	return m.reason
}

// OccurredAt returns when the movement was recorded.
func (m Movement) OccurredAt() time.Time {
	return m.occurredAt
}
