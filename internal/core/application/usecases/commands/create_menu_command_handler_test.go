package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/menugroup"
	"restaurant/internal/core/domain/model/product"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMenuGroup(t *testing.T) *menugroup.MenuGroup {
	t.Helper()
	g, err := menugroup.NewMenuGroup(kernel.NewUUID(), "Chicken")
	require.NoError(t, err)
	return g
}

func TestCreateMenuCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	group := newMenuGroup(t)
	p := newProduct(t, 10000)

	// two units at 10000 allow any menu price up to 20000
	cmd, err := commands.NewCreateMenuCommand(
		kernel.NewUUID(), "Chicken Set", money(t, 19000), group.ID(),
		[]commands.MenuLineItem{{ProductID: p.ID(), Quantity: 2}},
	)
	require.NoError(t, err)

	groupRepo := new(MockMenuGroupRepository)
	productRepo := new(MockProductRepository)
	menuRepo := new(MockMenuRepository)
	profanity := new(MockProfanityChecker)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuGroupRepository").Return(groupRepo).Once(),
		groupRepo.On("Get", ctx, group.ID()).Return(group, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetAllByIDs", ctx, []kernel.UUID{p.ID()}).Return([]*product.Product{p}, nil).Once(),
		profanity.On("ContainsProfanity", ctx, "Chicken Set").Return(false, nil).Once(),
		uow.On("MenuRepository").Return(menuRepo).Once(),
		menuRepo.On("Add", ctx, mock.AnythingOfType("*menu.Menu")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateMenuCommandHandler(factory, profanity)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	groupRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	menuRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateMenuCommandHandler_Handle_PriceExceedsLineTotal(t *testing.T) {
	ctx := t.Context()

	group := newMenuGroup(t)
	p := newProduct(t, 10000)

	cmd, err := commands.NewCreateMenuCommand(
		kernel.NewUUID(), "Chicken Set", money(t, 20001), group.ID(),
		[]commands.MenuLineItem{{ProductID: p.ID(), Quantity: 2}},
	)
	require.NoError(t, err)

	groupRepo := new(MockMenuGroupRepository)
	productRepo := new(MockProductRepository)
	profanity := new(MockProfanityChecker)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuGroupRepository").Return(groupRepo).Once(),
		groupRepo.On("Get", ctx, group.ID()).Return(group, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetAllByIDs", ctx, []kernel.UUID{p.ID()}).Return([]*product.Product{p}, nil).Once(),
		profanity.On("ContainsProfanity", ctx, "Chicken Set").Return(false, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateMenuCommandHandler(factory, profanity)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, menu.ErrPriceExceedsLineTotal)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateMenuCommandHandler_Handle_UnknownProduct(t *testing.T) {
	ctx := t.Context()

	group := newMenuGroup(t)
	missingID := kernel.NewUUID()

	cmd, err := commands.NewCreateMenuCommand(
		kernel.NewUUID(), "Chicken Set", money(t, 10000), group.ID(),
		[]commands.MenuLineItem{{ProductID: missingID, Quantity: 1}},
	)
	require.NoError(t, err)

	groupRepo := new(MockMenuGroupRepository)
	productRepo := new(MockProductRepository)
	profanity := new(MockProfanityChecker)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuGroupRepository").Return(groupRepo).Once(),
		groupRepo.On("Get", ctx, group.ID()).Return(group, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetAllByIDs", ctx, []kernel.UUID{missingID}).Return([]*product.Product{}, nil).Once(),
		productRepo.On("Get", ctx, missingID).Return(nil, errs.NewObjectNotFoundError("productID", missingID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateMenuCommandHandler(factory, profanity)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	profanity.AssertNotCalled(t, "ContainsProfanity", ctx, "Chicken Set")
}
