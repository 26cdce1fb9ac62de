package registerrepo

import (
	"context"
	"errors"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/core/domain/model/register"
	"entregas/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRegisterRepository implements RegisterRepository using GORM.
type GormRegisterRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRegisterRepository creates a new GORM register repository.
func NewGormRegisterRepository(db *gorm.DB, tracker aggregateTracker) *GormRegisterRepository {
	return &GormRegisterRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a newly opened register. The unique index on date turns a
// concurrent double-open into a conflict error. Requires the connection to
// be opened with TranslateError so duplicate keys surface as
// gorm.ErrDuplicatedKey.
func (r *GormRegisterRepository) Add(ctx context.Context, aggregate *register.Register) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictError("register for date", aggregate.Date().String())
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing register to the database.
func (r *GormRegisterRepository) Update(ctx context.Context, aggregate *register.Register) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&RegisterDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("register", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByDate retrieves the register for a calendar day, open or closed.
func (r *GormRegisterRepository) GetByDate(ctx context.Context, date kernel.Date) (*register.Register, error) {
	if err := date.Validate(); err != nil {
		return nil, err
	}

	var dto RegisterDTO
	err := r.db.WithContext(ctx).First(&dto, "date = ?", date.Time()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("register for date", date.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetOpenByDate retrieves the register for a calendar day only if it is
// still open.
func (r *GormRegisterRepository) GetOpenByDate(ctx context.Context, date kernel.Date) (*register.Register, error) {
	if err := date.Validate(); err != nil {
		return nil, err
	}

	var dto RegisterDTO
	err := r.db.WithContext(ctx).
		First(&dto, "date = ? AND status = ?", date.Time(), register.Open.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("open register for date", date.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
