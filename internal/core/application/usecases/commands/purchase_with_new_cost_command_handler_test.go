package commands_test

import (
	"testing"

	"entregas/internal/core/application/usecases/commands"
	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testProduct(t *testing.T) *product.Product {
	t.Helper()
	p, err := product.NewProduct(
		kernel.NewUUID(),
		"Galao 20L",
		"Agua mineral galao 20 litros",
		decimal.RequireFromString("8.00"),
		decimal.RequireFromString("15.00"),
	)
	require.NoError(t, err)
	return p
}

func TestPurchaseWithNewCostCommandHandler_Handle_ForksVariant(t *testing.T) {
	ctx := t.Context()
	original := testProduct(t)
	variantID := kernel.NewUUID()
	cmd, err := commands.NewPurchaseWithNewCostCommand(original.ID(), variantID, decimal.RequireFromString("9.50"), 30)
	require.NoError(t, err)

	var added *product.Product
	var movement product.Movement
	repo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, original.ID()).Return(original, nil).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*product.Product")).Run(func(args mock.Arguments) {
			added = args.Get(1).(*product.Product)
		}).Return(nil).Once(),
		repo.On("AddMovement", mock.Anything, variantID, mock.AnythingOfType("product.Movement")).Run(func(args mock.Arguments) {
			movement = args.Get(2).(product.Movement)
		}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPurchaseWithNewCostCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.NotNil(t, added)
	assert.True(t, added.ID().IsEqual(variantID))
	assert.Equal(t, original.Name(), added.Name())
	assert.True(t, added.CostPrice().Equal(decimal.RequireFromString("9.50")))
	assert.True(t, added.SellingPrice().Equal(original.SellingPrice()))
	assert.Equal(t, 30, added.Stock())
	assert.Equal(t, 0, original.Stock())
	assert.Equal(t, product.MovementIncrease, movement.Kind())
	assert.Equal(t, product.ReasonCostedPurchase, movement.Reason())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateProductCommandHandler_Handle_InitialStockBooksOpeningMovement(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(
		productID, "Galao 20L", "", decimal.RequireFromString("8.00"), decimal.RequireFromString("15.00"), 25,
	)
	require.NoError(t, err)

	var added *product.Product
	var movement product.Movement
	repo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*product.Product")).Run(func(args mock.Arguments) {
			added = args.Get(1).(*product.Product)
		}).Return(nil).Once(),
		repo.On("AddMovement", mock.Anything, productID, mock.AnythingOfType("product.Movement")).Run(func(args mock.Arguments) {
			movement = args.Get(2).(product.Movement)
		}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateProductCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, added)
	assert.Equal(t, 25, added.Stock())
	assert.Equal(t, product.ReasonOpeningStock, movement.Reason())
	repo.AssertExpectations(t)
}

func TestCreateProductCommandHandler_Handle_ZeroInitialStockSkipsMovement(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateProductCommand(
		kernel.NewUUID(), "Galao 20L", "", decimal.Zero, decimal.RequireFromString("15.00"), 0,
	)
	require.NoError(t, err)

	repo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*product.Product")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateProductCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertNotCalled(t, "AddMovement", mock.Anything, mock.Anything, mock.Anything)
}
