package customerrepo

import (
	"context"
	"errors"

	"entregas/internal/core/domain/model/customer"
	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCustomerRepository implements CustomerRepository using GORM.
type GormCustomerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCustomerRepository creates a new GORM customer repository.
func NewGormCustomerRepository(db *gorm.DB, tracker aggregateTracker) *GormCustomerRepository {
	return &GormCustomerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new customer account to the database.
func (r *GormCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
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

// Update saves an existing customer, including the balance after a
// recorded transaction.
func (r *GormCustomerRepository) Update(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&CustomerDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("customer", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a customer by ID.
func (r *GormCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every customer account, sorted by name.
func (r *GormCustomerRepository) GetAll(ctx context.Context) ([]*customer.Customer, error) {
	var dtos []CustomerDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	customers := make([]*customer.Customer, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		customers = append(customers, aggregate)
	}

	return customers, nil
}

// AddTransaction appends a ledger entry for the given customer.
func (r *GormCustomerRepository) AddTransaction(
	ctx context.Context,
	customerID kernel.UUID,
	transaction customer.Transaction,
) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	if err := transaction.Validate(); err != nil {
		return err
	}

	dto := transactionFromDomain(customerID, transaction)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetTransactions retrieves a customer's ledger entries in recorded order.
func (r *GormCustomerRepository) GetTransactions(
	ctx context.Context,
	customerID kernel.UUID,
) ([]customer.Transaction, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TransactionDTO
	err := r.db.WithContext(ctx).
		Order("occurred_at").
		Find(&dtos, "customer_id = ?", customerID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	transactions := make([]customer.Transaction, 0, len(dtos))
	for _, dto := range dtos {
		transaction, err := transactionToDomain(dto)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}

	return transactions, nil
}
