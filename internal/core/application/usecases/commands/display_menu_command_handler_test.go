package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/product"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDisplayMenuCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	p := newProduct(t, 10000)
	m := newDisplayedMenu(t, p, 10000)
	m.Hide()

	cmd, err := commands.NewDisplayMenuCommand(m.ID())
	require.NoError(t, err)

	menuRepo := new(MockMenuRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuRepository").Return(menuRepo).Once(),
		menuRepo.On("Get", ctx, m.ID()).Return(m, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetAllByIDs", ctx, []kernel.UUID{p.ID()}).Return([]*product.Product{p}, nil).Once(),
		menuRepo.On("Update", ctx, m).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDisplayMenuCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.True(t, m.IsDisplayed())
	menuRepo.AssertExpectations(t)
}

func TestDisplayMenuCommandHandler_Handle_PriceDriftBlocksDisplay(t *testing.T) {
	ctx := t.Context()

	p := newProduct(t, 10000)
	m := newDisplayedMenu(t, p, 10000)
	m.Hide()

	// the product got cheaper while the menu was hidden
	p.ChangePrice(money(t, 9000))

	cmd, err := commands.NewDisplayMenuCommand(m.ID())
	require.NoError(t, err)

	menuRepo := new(MockMenuRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuRepository").Return(menuRepo).Once(),
		menuRepo.On("Get", ctx, m.ID()).Return(m, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetAllByIDs", ctx, []kernel.UUID{p.ID()}).Return([]*product.Product{p}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDisplayMenuCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, menu.ErrPriceExceedsLineTotal)
	require.False(t, m.IsDisplayed())
	uow.AssertNotCalled(t, "Commit", ctx)
}
