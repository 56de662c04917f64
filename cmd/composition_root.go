package cmd

import (
	"log"
	"log/slog"
	"os"

	"restaurant/internal/adapters/out/kitchenriders"
	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/adapters/out/purgomalum"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	profanity  ports.ProfanityChecker
	dispatcher ports.DeliveryDispatcher
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	profanity, err := purgomalum.NewClient(configs.ProfanityServiceURL)
	if err != nil {
		log.Fatalf("invalid profanity service URL: %v", err)
	}

	dispatcher, err := kitchenriders.NewClient(configs.DeliveryServiceURL)
	if err != nil {
		log.Fatalf("invalid delivery service URL: %v", err)
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		profanity:  profanity,
		dispatcher: dispatcher,
		logger:     slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderTableUoWFactory() commands.OrderTableUoWFactory {
	return FuncOrderTableUoWFactory(func() commands.OrderTableUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) checkoutUoWFactory() commands.CheckoutUoWFactory {
	return FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) tableUoWFactory() commands.TableUoWFactory {
	return FuncTableUoWFactory(func() commands.TableUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.catalogUoWFactory(), c.profanity)
}

func (c *CompositionRoot) CreateChangeProductPriceCommandHandler() commands.ChangeProductPriceCommandHandler {
	return commands.NewChangeProductPriceCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateCreateMenuGroupCommandHandler() commands.CreateMenuGroupCommandHandler {
	return commands.NewCreateMenuGroupCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateCreateMenuCommandHandler() commands.CreateMenuCommandHandler {
	return commands.NewCreateMenuCommandHandler(c.catalogUoWFactory(), c.profanity)
}

func (c *CompositionRoot) CreateChangeMenuPriceCommandHandler() commands.ChangeMenuPriceCommandHandler {
	return commands.NewChangeMenuPriceCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateDisplayMenuCommandHandler() commands.DisplayMenuCommandHandler {
	return commands.NewDisplayMenuCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateHideMenuCommandHandler() commands.HideMenuCommandHandler {
	return commands.NewHideMenuCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateHideOverpricedMenusCommandHandler() commands.HideOverpricedMenusCommandHandler {
	return commands.NewHideOverpricedMenusCommandHandler(c.catalogUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.checkoutUoWFactory())
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.orderUoWFactory(), c.dispatcher, c.logger)
}

func (c *CompositionRoot) CreateServeOrderCommandHandler() commands.ServeOrderCommandHandler {
	return commands.NewServeOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateStartOrderDeliveryCommandHandler() commands.StartOrderDeliveryCommandHandler {
	return commands.NewStartOrderDeliveryCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteOrderDeliveryCommandHandler() commands.CompleteOrderDeliveryCommandHandler {
	return commands.NewCompleteOrderDeliveryCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.orderTableUoWFactory())
}

func (c *CompositionRoot) CreateCreateTableCommandHandler() commands.CreateTableCommandHandler {
	return commands.NewCreateTableCommandHandler(c.tableUoWFactory())
}

func (c *CompositionRoot) CreateSitTableCommandHandler() commands.SitTableCommandHandler {
	return commands.NewSitTableCommandHandler(c.tableUoWFactory())
}

func (c *CompositionRoot) CreateClearTableCommandHandler() commands.ClearTableCommandHandler {
	return commands.NewClearTableCommandHandler(c.orderTableUoWFactory())
}

func (c *CompositionRoot) CreateChangeNumberOfGuestsCommandHandler() commands.ChangeNumberOfGuestsCommandHandler {
	return commands.NewChangeNumberOfGuestsCommandHandler(c.tableUoWFactory())
}

func (c *CompositionRoot) CreateGetAllMenuGroupsQueryHandler() queries.GetAllMenuGroupsQueryHandler {
	return queries.NewGetAllMenuGroupsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllMenusQueryHandler() queries.GetAllMenusQueryHandler {
	return queries.NewGetAllMenusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetIncompleteOrdersQueryHandler() queries.GetIncompleteOrdersQueryHandler {
	return queries.NewGetIncompleteOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllTablesQueryHandler() queries.GetAllTablesQueryHandler {
	return queries.NewGetAllTablesQueryHandler(c.gormDB)
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderTableUoWFactory func() commands.OrderTableUoW

func (f FuncOrderTableUoWFactory) Create() commands.OrderTableUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncTableUoWFactory func() commands.TableUoW

func (f FuncTableUoWFactory) Create() commands.TableUoW {
	return f()
}
