package register

import (
	"fmt"
	"time"

	"entregas/internal/pkg/errs"
	"entregas/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMovementIsNotConstructed is returned when a Movement was not created through NewMovement.
var ErrMovementIsNotConstructed = errs.NewValueIsRequiredError("Movement must be created via NewMovement")

// Movement is a single cash deposit into or withdrawal out of the register
// drawer. Movements are owned by their register day, kept as ordered
// append-only lists, and carry the moment they happened.
type Movement struct {
	amount     decimal.Decimal
	reason     string
	occurredAt time.Time

	guard guard.ConstructorGuard
}

// NewMovement creates a movement stamped with the current time. The amount
// must be positive; direction comes from the list it is appended to.
func NewMovement(amount decimal.Decimal, reason string) (Movement, error) {
	return RestoreMovement(amount, reason, time.Now())
}

// RestoreMovement recreates a movement from persistence with its original
// timestamp.
func RestoreMovement(amount decimal.Decimal, reason string, occurredAt time.Time) (Movement, error) {
	if !amount.IsPositive() {
		return Movement{}, errs.NewValueIsInvalidErrorWithCause(
			"movement amount",
			fmt.Errorf("%s is not greater than 0", amount),
		)
	}

	return Movement{
		amount:     amount,
		reason:     reason,
		occurredAt: occurredAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the movement was created through NewMovement.
func (m Movement) Validate() error {
	return m.guard.Validate(ErrMovementIsNotConstructed)
}

// Amount returns the moved amount.
func (m Movement) Amount() decimal.Decimal {
	return m.amount
}

// Reason returns the free-text reason for the movement.
func (m Movement) Reason() string {
	return m.reason
}

// OccurredAt returns when the movement happened.
func (m Movement) OccurredAt() time.Time {
	return m.occurredAt
}
