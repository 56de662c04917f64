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

func TestChangeProductPriceCommandHandler_Handle_HidesBrokenMenus(t *testing.T) {
	ctx := t.Context()

	p := newProduct(t, 10000)
	m := newDisplayedMenu(t, p, 10000)

	// dropping the product price below the menu price breaks the invariant
	cmd, err := commands.NewChangeProductPriceCommand(p.ID(), money(t, 9000))
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	menuRepo := new(MockMenuRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, p.ID()).Return(p, nil).Once(),
		productRepo.On("Update", ctx, mock.AnythingOfType("*product.Product")).Return(nil).Once(),
		uow.On("MenuRepository").Return(menuRepo).Once(),
		menuRepo.On("GetAllByProductID", ctx, p.ID()).Return([]*menu.Menu{m}, nil).Once(),
		productRepo.On("GetAllByIDs", ctx, []kernel.UUID{p.ID()}).Return([]*product.Product{p}, nil).Once(),
		menuRepo.On("Update", ctx, mock.AnythingOfType("*menu.Menu")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewChangeProductPriceCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.True(t, p.Price().IsEqual(money(t, 9000)))
	require.False(t, m.IsDisplayed())
	productRepo.AssertExpectations(t)
	menuRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangeProductPriceCommandHandler_Handle_RaiseKeepsMenusDisplayed(t *testing.T) {
	ctx := t.Context()

	p := newProduct(t, 10000)
	m := newDisplayedMenu(t, p, 10000)

	cmd, err := commands.NewChangeProductPriceCommand(p.ID(), money(t, 12000))
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	menuRepo := new(MockMenuRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, p.ID()).Return(p, nil).Once(),
		productRepo.On("Update", ctx, mock.AnythingOfType("*product.Product")).Return(nil).Once(),
		uow.On("MenuRepository").Return(menuRepo).Once(),
		menuRepo.On("GetAllByProductID", ctx, p.ID()).Return([]*menu.Menu{m}, nil).Once(),
		productRepo.On("GetAllByIDs", ctx, []kernel.UUID{p.ID()}).Return([]*product.Product{p}, nil).Once(),
		menuRepo.On("Update", ctx, mock.AnythingOfType("*menu.Menu")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewChangeProductPriceCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.True(t, m.IsDisplayed())
}
