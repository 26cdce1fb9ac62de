// Package productrepo persists stock-ledger products and their movements.
// Movements carry no foreign key constraint on purpose: deleting a product
// must leave its movement history behind.
package productrepo

import (
	"time"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting products.
// Stock is the folded result of the movement ledger, stored for cheap
// reads; it may go negative.
type ProductDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"index"`
	Description  string
	CostPrice    decimal.Decimal `gorm:"type:decimal(20,4)"`
	SellingPrice decimal.Decimal `gorm:"type:decimal(20,4)"`
	Stock        int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// MovementDTO represents one stock movement of a product.
type MovementDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;index"`
	Kind      string
	Quantity  int
	Reason    string
	OccurredAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for stock movements.
func (MovementDTO) TableName() string {
	return "stock_movements"
}

func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Description:  aggregate.Description(),
		CostPrice:    aggregate.CostPrice(),
		SellingPrice: aggregate.SellingPrice(),
		Stock:        aggregate.Stock(),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id,
		dto.Name,
		dto.Description,
		dto.CostPrice,
		dto.SellingPrice,
		dto.Stock,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func movementFromDomain(productID kernel.UUID, movement product.Movement) MovementDTO {
	return MovementDTO{
		ID:         movement.ID().Bytes(),
		ProductID:  productID.Bytes(),
		Kind:       string(movement.Kind()),
		Quantity:   movement.Quantity(),
		Reason:     movement.Reason(),
		OccurredAt: movement.OccurredAt(),
	}
}

func movementToDomain(dto MovementDTO) (product.Movement, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return product.Movement{}, err
	}

	return product.RestoreMovement(
		id,
		product.MovementKind(dto.Kind),
		dto.Quantity,
		dto.Reason,
		dto.OccurredAt,
	)
}
