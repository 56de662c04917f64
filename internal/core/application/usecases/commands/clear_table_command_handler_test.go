package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClearTableCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	tbl := newOccupiedTable(t)
	cmd, err := commands.NewClearTableCommand(tbl.ID())
	require.NoError(t, err)

	tableRepo := new(MockTableRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TableRepository").Return(tableRepo).Once(),
		tableRepo.On("Get", ctx, tbl.ID()).Return(tbl, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("ExistsIncompleteByTable", ctx, tbl.ID()).Return(false, nil).Once(),
		tableRepo.On("Update", ctx, mock.AnythingOfType("*table.Table")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderTableUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewClearTableCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.True(t, tbl.IsEmpty())
	tableRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestClearTableCommandHandler_Handle_OpenOrdersExist(t *testing.T) {
	ctx := t.Context()

	tbl := newOccupiedTable(t)
	cmd, err := commands.NewClearTableCommand(tbl.ID())
	require.NoError(t, err)

	tableRepo := new(MockTableRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TableRepository").Return(tableRepo).Once(),
		tableRepo.On("Get", ctx, tbl.ID()).Return(tbl, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("ExistsIncompleteByTable", ctx, tbl.ID()).Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderTableUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewClearTableCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrOpenOrdersExist)
	require.False(t, tbl.IsEmpty())
	uow.AssertNotCalled(t, "Commit", ctx)
	tableRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}
