package order

import (
	"fmt"

	"entregas/internal/pkg/errs"
	"entregas/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrTripCostIsNotConstructed is returned when a TripCost was not created through NewTripCost.
var ErrTripCostIsNotConstructed = errs.NewValueIsRequiredError("TripCost must be created via NewTripCost")

// TripCost is an expense incurred while delivering an order (tolls, fuel, a
// helping hand). Trip costs are owned exclusively by their order, kept as an
// ordered list, and addressed by position; they have no independent identity.
//
// Every trip-cost mutation recomputes the order's net amount:
// net = total − Σ trip costs.
type TripCost struct {
	amount      decimal.Decimal
	description string

	guard guard.ConstructorGuard
}

// NewTripCost creates a trip cost. The amount must be positive; the
// description is free text.
func NewTripCost(amount decimal.Decimal, description string) (TripCost, error) {
	if !amount.IsPositive() {
		return TripCost{}, errs.NewValueIsInvalidErrorWithCause(
			"trip cost amount",
			fmt.Errorf("%s is not greater than 0", amount),
		)
	}

	return TripCost{
		amount:      amount,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the trip cost was created through NewTripCost.
func (c TripCost) Validate() error {
	return c.guard.Validate(ErrTripCostIsNotConstructed)
}

// Amount returns the expense amount.
func (c TripCost) Amount() decimal.Decimal {
	return c.amount
}

// Description returns the free-text description of the expense.
func (c TripCost) Description() string {
	return c.description
}
