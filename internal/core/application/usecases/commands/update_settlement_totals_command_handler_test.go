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

func TestUpdateSettlementTotalsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := openTestRegister(t, "100.00")
	orders := []*order.Order{
		completedOrder(t,
			testPayment(t, order.PaymentCash, "20.00"),
			testPayment(t, order.PaymentPix, "10.00"),
		),
		pendingOrder(t),
	}

	cmd, err := commands.NewUpdateSettlementTotalsCommand(testDate(t))
	require.NoError(t, err)

	registerRepo := new(MockRegisterRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RegisterRepository").Return(registerRepo).Once(),
		registerRepo.On("GetOpenByDate", mock.Anything, testDate(t)).Return(aggregate, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllByDate", mock.Anything, testDate(t)).Return(orders, nil).Once(),
		registerRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateSettlementTotalsCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, aggregate.TotalCash().Equal(decimal.RequireFromString("20.00")))
	assert.True(t, aggregate.TotalPix().Equal(decimal.RequireFromString("10.00")))
	registerRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestUpdateSettlementTotalsCommandHandler_Handle_LastWriteWins(t *testing.T) {
	ctx := t.Context()
	aggregate := openTestRegister(t, "0.00")
	require.NoError(t, aggregate.SetSettlementTotals(
		decimal.RequireFromString("500.00"),
		decimal.RequireFromString("300.00"),
	))

	cmd, err := commands.NewUpdateSettlementTotalsCommand(testDate(t))
	require.NoError(t, err)

	registerRepo := new(MockRegisterRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RegisterRepository").Return(registerRepo).Once(),
		registerRepo.On("GetOpenByDate", mock.Anything, testDate(t)).Return(aggregate, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllByDate", mock.Anything, testDate(t)).Return([]*order.Order{}, nil).Once(),
		registerRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateSettlementTotalsCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, aggregate.TotalCash().IsZero())
	assert.True(t, aggregate.TotalPix().IsZero())
}

func TestUpdateSettlementTotalsCommandHandler_Handle_NoOpenRegister(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateSettlementTotalsCommand(testDate(t))
	require.NoError(t, err)

	registerRepo := new(MockRegisterRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RegisterRepository").Return(registerRepo).Once(),
		registerRepo.On("GetOpenByDate", mock.Anything, testDate(t)).Return(nil, errs.NewObjectNotFoundError("register", testDate(t).String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateSettlementTotalsCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	registerRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "OrderRepository")
}
