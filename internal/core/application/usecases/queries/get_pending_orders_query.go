package queries

import (
	"errors"
	"time"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetPendingOrdersQueryIsNotConstructed = errors.New(
	"GetPendingOrdersQuery must be created via NewGetPendingOrdersQuery constructor",
)

// GetPendingOrdersQuery retrieves all orders still waiting for a driver.
type GetPendingOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingOrdersQuery creates a query for the pending order list.
// This is a parameterless query.
func NewGetPendingOrdersQuery() GetPendingOrdersQuery {
	return GetPendingOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrdersQueryIsNotConstructed)
}

// OrderSummaryResponse is one row of an order list view.
type OrderSummaryResponse struct {
	ID           kernel.UUID
	CustomerName string
	Status       string
	TotalAmount  decimal.Decimal
	NetAmount    decimal.Decimal
	CreatedAt    time.Time
}
