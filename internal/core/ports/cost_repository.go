package ports

import (
	"context"

	"entregas/internal/core/domain/model/cost"
	"entregas/internal/core/domain/model/kernel"
)

// CostRepository defines the persistence contract for operational expense
// entries.
type CostRepository interface {
	// Add persists a new expense entry.
	Add(ctx context.Context, aggregate *cost.Cost) error

	// Get retrieves an expense entry by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*cost.Cost, error)

	// GetAllByDate retrieves all expense entries for a calendar day.
	GetAllByDate(ctx context.Context, date kernel.Date) ([]*cost.Cost, error)
}
