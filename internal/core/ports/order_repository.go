// Package ports defines repository interfaces for the delivery ledger
// domain. These interfaces establish contracts between the domain layer
// and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its lines, trip costs and payments.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order from storage. Callers enforce the
	// pending-only rule before deleting.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetAllPending retrieves all orders still waiting for a driver.
	GetAllPending(ctx context.Context) ([]*order.Order, error)

	// GetAllByDriver retrieves all orders assigned to the given driver.
	GetAllByDriver(ctx context.Context, driverID kernel.UUID) ([]*order.Order, error)

	// GetAllByDate retrieves all orders created on the given calendar day.
	// Used by the settlement aggregation.
	GetAllByDate(ctx context.Context, date kernel.Date) ([]*order.Order, error)
}
