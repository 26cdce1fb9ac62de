package commands_test

import (
	"testing"

	"entregas/internal/core/application/usecases/commands"
	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOpenRegisterCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewOpenRegisterCommand(kernel.NewUUID(), testDate(t), decimal.RequireFromString("100.00"))
	require.NoError(t, err)

	repo := new(MockRegisterRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RegisterRepository").Return(repo).Once(),
		repo.On("GetByDate", mock.Anything, testDate(t)).Return(nil, errs.NewObjectNotFoundError("register", testDate(t).String())).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*register.Register")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRegisterUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewOpenRegisterCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestOpenRegisterCommandHandler_Handle_DateAlreadyOpened(t *testing.T) {
	ctx := t.Context()
	existing := openTestRegister(t, "50.00")
	cmd, err := commands.NewOpenRegisterCommand(kernel.NewUUID(), testDate(t), decimal.Zero)
	require.NoError(t, err)

	repo := new(MockRegisterRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RegisterRepository").Return(repo).Once(),
		repo.On("GetByDate", mock.Anything, testDate(t)).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRegisterUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewOpenRegisterCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestOpenRegisterCommandHandler_Handle_ClosedDateStaysClosed(t *testing.T) {
	ctx := t.Context()
	existing := openTestRegister(t, "50.00")
	require.NoError(t, existing.Close(""))
	cmd, err := commands.NewOpenRegisterCommand(kernel.NewUUID(), testDate(t), decimal.Zero)
	require.NoError(t, err)

	repo := new(MockRegisterRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RegisterRepository").Return(repo).Once(),
		repo.On("GetByDate", mock.Anything, testDate(t)).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRegisterUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewOpenRegisterCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)
}
