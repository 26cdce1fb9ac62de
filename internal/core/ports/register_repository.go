package ports

import (
	"context"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/core/domain/model/register"
)

// RegisterRepository defines the persistence contract for daily cash
// register aggregates. At most one register exists per date; Add must
// fail on a duplicate date.
type RegisterRepository interface {
	// Add persists a newly opened register. Returns a conflict error if a
	// register already exists for the same date.
	Add(ctx context.Context, aggregate *register.Register) error

	// Update persists changes to an existing register aggregate.
	Update(ctx context.Context, aggregate *register.Register) error

	// GetByDate retrieves the register for a calendar day, open or closed.
	GetByDate(ctx context.Context, date kernel.Date) (*register.Register, error)

	// GetOpenByDate retrieves the register for a calendar day only if it
	// is still open. Returns a not-found error otherwise.
	GetOpenByDate(ctx context.Context, date kernel.Date) (*register.Register, error)
}
