package ports

import (
	"context"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for stock-ledger
// products and their movements. Movements are append-only and survive
// product deletion; history is never cascaded.
type ProductRepository interface {
	// Add persists a new product.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product, including the stock
	// level after a recorded movement.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAll retrieves every product.
	GetAll(ctx context.Context) ([]*product.Product, error)

	// Delete removes a product row. Its movement history stays.
	Delete(ctx context.Context, id kernel.UUID) error

	// AddMovement appends a stock movement for the given product.
	// Movements are never updated or removed.
	AddMovement(ctx context.Context, productID kernel.UUID, movement product.Movement) error

	// GetMovements retrieves a product's movements in recorded order.
	GetMovements(ctx context.Context, productID kernel.UUID) ([]product.Movement, error)
}
