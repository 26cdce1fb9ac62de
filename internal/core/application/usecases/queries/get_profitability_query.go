package queries

import (
	"errors"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetProfitabilityQueryIsNotConstructed = errors.New(
	"GetProfitabilityQuery must be created via NewGetProfitabilityQuery constructor",
)

// GetProfitabilityQuery retrieves the per-product profitability view over
// every order ever placed.
type GetProfitabilityQuery struct {
	guard guard.ConstructorGuard
}

// NewGetProfitabilityQuery creates a profitability query. This is a
// parameterless query.
func NewGetProfitabilityQuery() GetProfitabilityQuery {
	return GetProfitabilityQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetProfitabilityQuery) Validate() error {
	return q.guard.Validate(ErrGetProfitabilityQueryIsNotConstructed)
}

// ProductProfitabilityResponse is one product's row of the profitability
// view. Completed figures cover delivered orders; pending figures cover
// everything still in flight. Margin is profit over combined revenue, in
// percent.
type ProductProfitabilityResponse struct {
	ProductID         kernel.UUID
	ProductName       string
	CompletedQuantity int
	CompletedRevenue  decimal.Decimal
	CompletedProfit   decimal.Decimal
	PendingQuantity   int
	PendingRevenue    decimal.Decimal
	PendingProfit     decimal.Decimal
	Margin            decimal.Decimal
}
