package costrepo

import (
	"context"
	"errors"

	"entregas/internal/core/domain/model/cost"
	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCostRepository implements CostRepository using GORM.
type GormCostRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCostRepository creates a new GORM cost repository.
func NewGormCostRepository(db *gorm.DB, tracker aggregateTracker) *GormCostRepository {
	return &GormCostRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new expense entry to the database.
func (r *GormCostRepository) Add(ctx context.Context, aggregate *cost.Cost) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an expense entry by ID.
func (r *GormCostRepository) Get(ctx context.Context, id kernel.UUID) (*cost.Cost, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CostDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cost", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByDate retrieves all expense entries for a calendar day in
// recorded order.
func (r *GormCostRepository) GetAllByDate(ctx context.Context, date kernel.Date) ([]*cost.Cost, error) {
	if err := date.Validate(); err != nil {
		return nil, err
	}

	var dtos []CostDTO
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "date = ?", date.Time()).Error
	if err != nil {
		return nil, err
	}

	costs := make([]*cost.Cost, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		costs = append(costs, aggregate)
	}

	return costs, nil
}
