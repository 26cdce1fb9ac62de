package commands_test

import (
	"testing"

	"entregas/internal/core/application/usecases/commands"
	"entregas/internal/core/domain/model/order"
	"entregas/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func tripCost(t *testing.T, amount, description string) order.TripCost {
	t.Helper()
	c, err := order.NewTripCost(decimal.RequireFromString(amount), description)
	require.NoError(t, err)
	return c
}

func TestAddTripCostCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := assignedOrder(t)
	cmd, err := commands.NewAddTripCostCommand(aggregate.ID(), tripCost(t, "8.00", "toll"))
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddTripCostCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, aggregate.NetAmount().Equal(decimal.RequireFromString("22.00")))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddTripCostCommandHandler_Handle_PendingOrderRejected(t *testing.T) {
	ctx := t.Context()
	aggregate := pendingOrder(t)
	cmd, err := commands.NewAddTripCostCommand(aggregate.ID(), tripCost(t, "8.00", "toll"))
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddTripCostCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.True(t, aggregate.NetAmount().Equal(aggregate.TotalAmount()))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRemoveTripCostCommandHandler_Handle_StaleIndex(t *testing.T) {
	ctx := t.Context()
	aggregate := assignedOrder(t)
	cmd, err := commands.NewRemoveTripCostCommand(aggregate.ID(), 3)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveTripCostCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
