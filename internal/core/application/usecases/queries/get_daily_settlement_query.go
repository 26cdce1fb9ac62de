package queries

import (
	"errors"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetDailySettlementQueryIsNotConstructed = errors.New(
	"GetDailySettlementQuery must be created via NewGetDailySettlementQuery constructor",
)

// GetDailySettlementQuery retrieves the settlement totals for the orders
// created on one calendar day.
type GetDailySettlementQuery struct {
	date kernel.Date

	guard guard.ConstructorGuard
}

// NewGetDailySettlementQuery creates a query for a day's settlement.
func NewGetDailySettlementQuery(date kernel.Date) (GetDailySettlementQuery, error) {
	if err := date.Validate(); err != nil {
		return GetDailySettlementQuery{}, err
	}

	return GetDailySettlementQuery{
		date:  date,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDailySettlementQuery) Validate() error {
	return q.guard.Validate(ErrGetDailySettlementQueryIsNotConstructed)
}

// Date returns the day being settled.
func (q GetDailySettlementQuery) Date() kernel.Date {
	return q.date
}

// GetDailySettlementQueryResponse carries a day's settlement totals.
// TotalPending tracks money still on the street; it never enters a
// closing balance.
type GetDailySettlementQueryResponse struct {
	Date         kernel.Date
	TotalCash    decimal.Decimal
	TotalPix     decimal.Decimal
	TotalPending decimal.Decimal
}
