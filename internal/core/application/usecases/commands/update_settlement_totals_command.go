package commands

import (
	"errors"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/pkg/guard"
)

var ErrUpdateSettlementTotalsCommandIsNotConstructed = errors.New(
	"UpdateSettlementTotalsCommand must be created via NewUpdateSettlementTotalsCommand constructor",
)

// UpdateSettlementTotalsCommand represents a request to recompute the
// settlement totals for a date and push them into its open register.
type UpdateSettlementTotalsCommand struct { //nolint:recvcheck //using for validation
	date kernel.Date

	guard guard.ConstructorGuard
}

// NewUpdateSettlementTotalsCommand creates a command to sync settlement totals.
func NewUpdateSettlementTotalsCommand(date kernel.Date) (UpdateSettlementTotalsCommand, error) {
	if err := date.Validate(); err != nil {
		return UpdateSettlementTotalsCommand{}, err
	}

	return UpdateSettlementTotalsCommand{
		date:  date,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateSettlementTotalsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateSettlementTotalsCommandIsNotConstructed)
}

// Date returns the day to sync.
func (c UpdateSettlementTotalsCommand) Date() kernel.Date {
	return c.date
}
