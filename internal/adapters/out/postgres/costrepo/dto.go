// Package costrepo persists operational expense entries.
package costrepo

import (
	"time"

	"entregas/internal/core/domain/model/cost"
	"entregas/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CostDTO represents the database structure for persisting expense entries.
type CostDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Date        time.Time `gorm:"type:date;index"`
	Description string
	Amount      decimal.Decimal `gorm:"type:decimal(20,4)"`
	Category    string          `gorm:"index"`
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the database table name for expense entries.
func (CostDTO) TableName() string {
	return "costs"
}

func fromDomain(aggregate *cost.Cost) CostDTO {
	return CostDTO{
		ID:          aggregate.ID().Bytes(),
		Date:        aggregate.Date().Time(),
		Description: aggregate.Description(),
		Amount:      aggregate.Amount(),
		Category:    string(aggregate.Category()),
		Notes:       aggregate.Notes(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

func toDomain(dto CostDTO) (*cost.Cost, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	category, err := cost.CategoryFromString(dto.Category)
	if err != nil {
		return nil, err
	}

	return cost.RestoreCost(
		id,
		kernel.DateOf(dto.Date),
		dto.Description,
		dto.Amount,
		category,
		dto.Notes,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
