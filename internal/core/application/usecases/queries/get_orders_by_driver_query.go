package queries

import (
	"errors"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/pkg/guard"
)

var ErrGetOrdersByDriverQueryIsNotConstructed = errors.New(
	"GetOrdersByDriverQuery must be created via NewGetOrdersByDriverQuery constructor",
)

// GetOrdersByDriverQuery retrieves every order assigned to one driver,
// whatever its current status.
type GetOrdersByDriverQuery struct {
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersByDriverQuery creates a query for a driver's order list.
func NewGetOrdersByDriverQuery(driverID kernel.UUID) (GetOrdersByDriverQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetOrdersByDriverQuery{}, err
	}

	return GetOrdersByDriverQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByDriverQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByDriverQueryIsNotConstructed)
}

// DriverID returns the driver whose orders are listed.
func (q GetOrdersByDriverQuery) DriverID() kernel.UUID {
	return q.driverID
}
