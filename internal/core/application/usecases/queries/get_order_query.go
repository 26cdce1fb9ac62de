// Package queries contains read-only operations for the CQRS architecture.
// Query handlers rebuild their views on demand with raw SQL over the
// transactional tables; nothing here ever writes.
package queries

import (
	"errors"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its full detail: lines, trip
// costs, payments and amounts.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the order to fetch.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderLineResponse is one line of an order view.
type OrderLineResponse struct {
	ProductID   kernel.UUID
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// OrderTripCostResponse is one booked expense of an order view.
type OrderTripCostResponse struct {
	Amount      decimal.Decimal
	Description string
}

// OrderPaymentResponse is one recorded payment of an order view.
type OrderPaymentResponse struct {
	Kind   string
	Amount decimal.Decimal
}

// GetOrderQueryResponse represents the full order view.
type GetOrderQueryResponse struct {
	ID              kernel.UUID
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	DriverID        *kernel.UUID
	Status          string
	Notes           string
	Lines           []OrderLineResponse
	TotalAmount     decimal.Decimal
	TripCosts       []OrderTripCostResponse
	NetAmount       decimal.Decimal
	Payments        []OrderPaymentResponse
}
