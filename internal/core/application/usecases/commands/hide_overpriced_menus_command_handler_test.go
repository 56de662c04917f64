package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/product"

	"github.com/stretchr/testify/require"
)

func TestHideOverpricedMenusCommandHandler_Handle_HidesOnlyBrokenMenus(t *testing.T) {
	ctx := t.Context()

	healthyProduct := newProduct(t, 10000)
	healthyMenu := newDisplayedMenu(t, healthyProduct, 10000)

	// price drop after display leaves this menu above its line total
	brokenProduct := newProduct(t, 10000)
	brokenMenu := newDisplayedMenu(t, brokenProduct, 10000)
	brokenProduct.ChangePrice(money(t, 8000))

	menuRepo := new(MockMenuRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("MenuRepository").Return(menuRepo).Once()
	uow.On("ProductRepository").Return(productRepo).Twice()
	menuRepo.On("GetAllDisplayed", ctx).Return([]*menu.Menu{healthyMenu, brokenMenu}, nil).Once()
	productRepo.On("GetAllByIDs", ctx, []kernel.UUID{healthyProduct.ID()}).
		Return([]*product.Product{healthyProduct}, nil).Once()
	productRepo.On("GetAllByIDs", ctx, []kernel.UUID{brokenProduct.ID()}).
		Return([]*product.Product{brokenProduct}, nil).Once()
	menuRepo.On("Update", ctx, brokenMenu).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewHideOverpricedMenusCommandHandler(factory, discardLogger())
	err := handler.Handle(ctx, commands.NewHideOverpricedMenusCommand())

	require.NoError(t, err)
	require.True(t, healthyMenu.IsDisplayed())
	require.False(t, brokenMenu.IsDisplayed())
	menuRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
