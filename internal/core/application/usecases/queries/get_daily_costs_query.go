package queries

import (
	"errors"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetDailyCostsQueryIsNotConstructed = errors.New(
	"GetDailyCostsQuery must be created via NewGetDailyCostsQuery constructor",
)

// GetDailyCostsQuery retrieves one day's expenses totalled per category.
type GetDailyCostsQuery struct {
	date kernel.Date

	guard guard.ConstructorGuard
}

// NewGetDailyCostsQuery creates a query for a day's cost totals.
func NewGetDailyCostsQuery(date kernel.Date) (GetDailyCostsQuery, error) {
	if err := date.Validate(); err != nil {
		return GetDailyCostsQuery{}, err
	}

	return GetDailyCostsQuery{
		date:  date,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDailyCostsQuery) Validate() error {
	return q.guard.Validate(ErrGetDailyCostsQueryIsNotConstructed)
}

// Date returns the day whose costs are totalled.
func (q GetDailyCostsQuery) Date() kernel.Date {
	return q.date
}

// CategoryCostResponse is one category's total for the day.
type CategoryCostResponse struct {
	Category string
	Total    decimal.Decimal
}

// GetDailyCostsQueryResponse carries a day's expenses per category.
type GetDailyCostsQueryResponse struct {
	Date       kernel.Date
	Categories []CategoryCostResponse
	Total      decimal.Decimal
}
