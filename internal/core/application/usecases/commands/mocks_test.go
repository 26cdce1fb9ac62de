package commands_test

import (
	"context"

	"entregas/internal/core/application/usecases/commands"
	"entregas/internal/core/domain/model/cost"
	"entregas/internal/core/domain/model/customer"
	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/core/domain/model/order"
	"entregas/internal/core/domain/model/product"
	"entregas/internal/core/domain/model/register"
	"entregas/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockOrderRepository) GetAllPending(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetAllByDriver(ctx context.Context, driverID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetAllByDate(ctx context.Context, date kernel.Date) ([]*order.Order, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockRegisterRepository struct{ mock.Mock }

func (m *MockRegisterRepository) Add(ctx context.Context, r *register.Register) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockRegisterRepository) Update(ctx context.Context, r *register.Register) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockRegisterRepository) GetByDate(ctx context.Context, date kernel.Date) (*register.Register, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*register.Register), args.Error(1)
}
func (m *MockRegisterRepository) GetOpenByDate(ctx context.Context, date kernel.Date) (*register.Register, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*register.Register), args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}
func (m *MockCustomerRepository) GetAll(ctx context.Context) ([]*customer.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*customer.Customer), args.Error(1)
}
func (m *MockCustomerRepository) AddTransaction(ctx context.Context, customerID kernel.UUID, tx customer.Transaction) error {
	args := m.Called(ctx, customerID, tx)
	return args.Error(0)
}
func (m *MockCustomerRepository) GetTransactions(ctx context.Context, customerID kernel.UUID) ([]customer.Transaction, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]customer.Transaction), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}
func (m *MockProductRepository) GetAll(ctx context.Context) ([]*product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}
func (m *MockProductRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockProductRepository) AddMovement(ctx context.Context, productID kernel.UUID, mv product.Movement) error {
	args := m.Called(ctx, productID, mv)
	return args.Error(0)
}
func (m *MockProductRepository) GetMovements(ctx context.Context, productID kernel.UUID) ([]product.Movement, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]product.Movement), args.Error(1)
}

type MockCostRepository struct{ mock.Mock }

func (m *MockCostRepository) Add(ctx context.Context, c *cost.Cost) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCostRepository) Get(ctx context.Context, id kernel.UUID) (*cost.Cost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cost.Cost), args.Error(1)
}
func (m *MockCostRepository) GetAllByDate(ctx context.Context, date kernel.Date) ([]*cost.Cost, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cost.Cost), args.Error(1)
}

// MockUoW serves every UoW shape the handlers need; tests wire only the
// repositories a handler touches.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockUoW) RegisterRepository() ports.RegisterRepository {
	args := m.Called()
	return args.Get(0).(ports.RegisterRepository)
}
func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}
func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}
func (m *MockUoW) CostRepository() ports.CostRepository {
	args := m.Called()
	return args.Get(0).(ports.CostRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockRegisterUoWFactory struct{ mock.Mock }

func (m *MockRegisterUoWFactory) Create() commands.RegisterUoW {
	args := m.Called()
	return args.Get(0).(commands.RegisterUoW)
}

type MockCustomerUoWFactory struct{ mock.Mock }

func (m *MockCustomerUoWFactory) Create() commands.CustomerUoW {
	args := m.Called()
	return args.Get(0).(commands.CustomerUoW)
}

type MockProductUoWFactory struct{ mock.Mock }

func (m *MockProductUoWFactory) Create() commands.ProductUoW {
	args := m.Called()
	return args.Get(0).(commands.ProductUoW)
}

type MockCostUoWFactory struct{ mock.Mock }

func (m *MockCostUoWFactory) Create() commands.CostUoW {
	args := m.Called()
	return args.Get(0).(commands.CostUoW)
}

type MockSettlementUoWFactory struct{ mock.Mock }

func (m *MockSettlementUoWFactory) Create() commands.SettlementUoW {
	args := m.Called()
	return args.Get(0).(commands.SettlementUoW)
}
