// Package http exposes the application use cases over a REST API.
package http

import (
	"errors"
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createProductHandler         commands.CreateProductCommandHandler
	changeProductPriceHandler    commands.ChangeProductPriceCommandHandler
	createMenuGroupHandler       commands.CreateMenuGroupCommandHandler
	createMenuHandler            commands.CreateMenuCommandHandler
	changeMenuPriceHandler       commands.ChangeMenuPriceCommandHandler
	displayMenuHandler           commands.DisplayMenuCommandHandler
	hideMenuHandler              commands.HideMenuCommandHandler
	createOrderHandler           commands.CreateOrderCommandHandler
	acceptOrderHandler           commands.AcceptOrderCommandHandler
	serveOrderHandler            commands.ServeOrderCommandHandler
	startOrderDeliveryHandler    commands.StartOrderDeliveryCommandHandler
	completeOrderDeliveryHandler commands.CompleteOrderDeliveryCommandHandler
	completeOrderHandler         commands.CompleteOrderCommandHandler
	createTableHandler           commands.CreateTableCommandHandler
	sitTableHandler              commands.SitTableCommandHandler
	clearTableHandler            commands.ClearTableCommandHandler
	changeGuestsHandler          commands.ChangeNumberOfGuestsCommandHandler

	// Query handlers
	getAllMenuGroupsHandler    queries.GetAllMenuGroupsQueryHandler
	getAllMenusHandler         queries.GetAllMenusQueryHandler
	getIncompleteOrdersHandler queries.GetIncompleteOrdersQueryHandler
	getAllTablesHandler        queries.GetAllTablesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createProductHandler commands.CreateProductCommandHandler,
	changeProductPriceHandler commands.ChangeProductPriceCommandHandler,
	createMenuGroupHandler commands.CreateMenuGroupCommandHandler,
	createMenuHandler commands.CreateMenuCommandHandler,
	changeMenuPriceHandler commands.ChangeMenuPriceCommandHandler,
	displayMenuHandler commands.DisplayMenuCommandHandler,
	hideMenuHandler commands.HideMenuCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	serveOrderHandler commands.ServeOrderCommandHandler,
	startOrderDeliveryHandler commands.StartOrderDeliveryCommandHandler,
	completeOrderDeliveryHandler commands.CompleteOrderDeliveryCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	createTableHandler commands.CreateTableCommandHandler,
	sitTableHandler commands.SitTableCommandHandler,
	clearTableHandler commands.ClearTableCommandHandler,
	changeGuestsHandler commands.ChangeNumberOfGuestsCommandHandler,
	getAllMenuGroupsHandler queries.GetAllMenuGroupsQueryHandler,
	getAllMenusHandler queries.GetAllMenusQueryHandler,
	getIncompleteOrdersHandler queries.GetIncompleteOrdersQueryHandler,
	getAllTablesHandler queries.GetAllTablesQueryHandler,
) *Server {
	return &Server{
		createProductHandler:         createProductHandler,
		changeProductPriceHandler:    changeProductPriceHandler,
		createMenuGroupHandler:       createMenuGroupHandler,
		createMenuHandler:            createMenuHandler,
		changeMenuPriceHandler:       changeMenuPriceHandler,
		displayMenuHandler:           displayMenuHandler,
		hideMenuHandler:              hideMenuHandler,
		createOrderHandler:           createOrderHandler,
		acceptOrderHandler:           acceptOrderHandler,
		serveOrderHandler:            serveOrderHandler,
		startOrderDeliveryHandler:    startOrderDeliveryHandler,
		completeOrderDeliveryHandler: completeOrderDeliveryHandler,
		completeOrderHandler:         completeOrderHandler,
		createTableHandler:           createTableHandler,
		sitTableHandler:              sitTableHandler,
		clearTableHandler:            clearTableHandler,
		changeGuestsHandler:          changeGuestsHandler,
		getAllMenuGroupsHandler:      getAllMenuGroupsHandler,
		getAllMenusHandler:           getAllMenusHandler,
		getIncompleteOrdersHandler:   getIncompleteOrdersHandler,
		getAllTablesHandler:          getAllTablesHandler,
	}
}

// RegisterRoutes wires all endpoints onto the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/products", s.CreateProduct)
	api.PUT("/products/:productId/price", s.ChangeProductPrice)

	api.GET("/menu-groups", s.GetMenuGroups)
	api.POST("/menu-groups", s.CreateMenuGroup)

	api.GET("/menus", s.GetMenus)
	api.POST("/menus", s.CreateMenu)
	api.PUT("/menus/:menuId/price", s.ChangeMenuPrice)
	api.PUT("/menus/:menuId/display", s.DisplayMenu)
	api.PUT("/menus/:menuId/hide", s.HideMenu)

	api.GET("/orders/incomplete", s.GetIncompleteOrders)
	api.POST("/orders", s.CreateOrder)
	api.PUT("/orders/:orderId/accept", s.AcceptOrder)
	api.PUT("/orders/:orderId/serve", s.ServeOrder)
	api.PUT("/orders/:orderId/start-delivery", s.StartOrderDelivery)
	api.PUT("/orders/:orderId/complete-delivery", s.CompleteOrderDelivery)
	api.PUT("/orders/:orderId/complete", s.CompleteOrder)

	api.GET("/tables", s.GetTables)
	api.POST("/tables", s.CreateTable)
	api.PUT("/tables/:tableId/sit", s.SitTable)
	api.PUT("/tables/:tableId/clear", s.ClearTable)
	api.PUT("/tables/:tableId/guests", s.ChangeNumberOfGuests)
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var req CreateProductRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := parseMoney(req.Price)
	if err != nil {
		return badRequest(ctx, "Invalid price: "+req.Price)
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(productID, req.Name, price)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.createProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: productID.String()})
}

// ChangeProductPrice handles PUT /api/v1/products/:productId/price.
func (s *Server) ChangeProductPrice(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("productId"))
	if err != nil {
		return badRequest(ctx, "Invalid product ID")
	}

	var req ChangePriceRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := parseMoney(req.Price)
	if err != nil {
		return badRequest(ctx, "Invalid price: "+req.Price)
	}

	cmd, err := commands.NewChangeProductPriceCommand(productID, price)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.changeProductPriceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CreateMenuGroup handles POST /api/v1/menu-groups.
func (s *Server) CreateMenuGroup(ctx echo.Context) error {
	var req CreateMenuGroupRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	menuGroupID := kernel.NewUUID()
	cmd, err := commands.NewCreateMenuGroupCommand(menuGroupID, req.Name)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.createMenuGroupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: menuGroupID.String()})
}

// GetMenuGroups handles GET /api/v1/menu-groups.
func (s *Server) GetMenuGroups(ctx echo.Context) error {
	groups, err := s.getAllMenuGroupsHandler.Handle(ctx.Request().Context(), queries.NewGetAllMenuGroupsQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve menu groups")
	}

	response := make([]MenuGroupResponse, len(groups))
	for i, g := range groups {
		response[i] = MenuGroupResponse{
			ID:   g.ID.String(),
			Name: g.Name,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetMenus handles GET /api/v1/menus.
func (s *Server) GetMenus(ctx echo.Context) error {
	menus, err := s.getAllMenusHandler.Handle(ctx.Request().Context(), queries.NewGetAllMenusQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve menus")
	}

	response := make([]MenuResponse, len(menus))
	for i, m := range menus {
		response[i] = MenuResponse{
			ID:          m.ID.String(),
			Name:        m.Name,
			Price:       m.Price.Amount().String(),
			MenuGroupID: m.MenuGroupID.String(),
			Displayed:   m.Displayed,
			LineCount:   m.LineCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateMenu handles POST /api/v1/menus.
func (s *Server) CreateMenu(ctx echo.Context) error {
	var req CreateMenuRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := parseMoney(req.Price)
	if err != nil {
		return badRequest(ctx, "Invalid price: "+req.Price)
	}

	menuGroupID, err := kernel.UUIDFromString(req.MenuGroupID)
	if err != nil {
		return badRequest(ctx, "Invalid menu group ID")
	}

	lines := make([]commands.MenuLineItem, len(req.Lines))
	for i, line := range req.Lines {
		productID, err := kernel.UUIDFromString(line.ProductID)
		if err != nil {
			return badRequest(ctx, "Invalid product ID: "+line.ProductID)
		}
		lines[i] = commands.MenuLineItem{ProductID: productID, Quantity: line.Quantity}
	}

	menuID := kernel.NewUUID()
	cmd, err := commands.NewCreateMenuCommand(menuID, req.Name, price, menuGroupID, lines)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.createMenuHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: menuID.String()})
}

// ChangeMenuPrice handles PUT /api/v1/menus/:menuId/price.
func (s *Server) ChangeMenuPrice(ctx echo.Context) error {
	menuID, err := kernel.UUIDFromString(ctx.Param("menuId"))
	if err != nil {
		return badRequest(ctx, "Invalid menu ID")
	}

	var req ChangePriceRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := parseMoney(req.Price)
	if err != nil {
		return badRequest(ctx, "Invalid price: "+req.Price)
	}

	cmd, err := commands.NewChangeMenuPriceCommand(menuID, price)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.changeMenuPriceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// DisplayMenu handles PUT /api/v1/menus/:menuId/display.
func (s *Server) DisplayMenu(ctx echo.Context) error {
	menuID, err := kernel.UUIDFromString(ctx.Param("menuId"))
	if err != nil {
		return badRequest(ctx, "Invalid menu ID")
	}

	cmd, err := commands.NewDisplayMenuCommand(menuID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.displayMenuHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// HideMenu handles PUT /api/v1/menus/:menuId/hide.
func (s *Server) HideMenu(ctx echo.Context) error {
	menuID, err := kernel.UUIDFromString(ctx.Param("menuId"))
	if err != nil {
		return badRequest(ctx, "Invalid menu ID")
	}

	cmd, err := commands.NewHideMenuCommand(menuID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.hideMenuHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetIncompleteOrders handles GET /api/v1/orders/incomplete.
func (s *Server) GetIncompleteOrders(ctx echo.Context) error {
	orders, err := s.getIncompleteOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetIncompleteOrdersQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = OrderResponse{
			ID:              o.ID.String(),
			Channel:         o.Channel.String(),
			Status:          o.Status.String(),
			DeliveryAddress: o.DeliveryAddress,
			Total:           o.Total.Amount().String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	channel, ok := parseChannel(req.Channel)
	if !ok {
		return badRequest(ctx, "Invalid channel: "+req.Channel)
	}

	lines := make([]commands.OrderLineItem, len(req.Lines))
	for i, line := range req.Lines {
		menuID, err := kernel.UUIDFromString(line.MenuID)
		if err != nil {
			return badRequest(ctx, "Invalid menu ID: "+line.MenuID)
		}
		price, err := parseMoney(line.Price)
		if err != nil {
			return badRequest(ctx, "Invalid price: "+line.Price)
		}
		lines[i] = commands.OrderLineItem{MenuID: menuID, Quantity: line.Quantity, Price: price}
	}

	var tableID *kernel.UUID
	if req.TableID != "" {
		id, err := kernel.UUIDFromString(req.TableID)
		if err != nil {
			return badRequest(ctx, "Invalid table ID")
		}
		tableID = &id
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, channel, lines, req.DeliveryAddress, tableID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: orderID.String()})
}

// AcceptOrder handles PUT /api/v1/orders/:orderId/accept.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ServeOrder handles PUT /api/v1/orders/:orderId/serve.
func (s *Server) ServeOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewServeOrderCommand(orderID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.serveOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// StartOrderDelivery handles PUT /api/v1/orders/:orderId/start-delivery.
func (s *Server) StartOrderDelivery(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewStartOrderDeliveryCommand(orderID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.startOrderDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CompleteOrderDelivery handles PUT /api/v1/orders/:orderId/complete-delivery.
func (s *Server) CompleteOrderDelivery(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewCompleteOrderDeliveryCommand(orderID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.completeOrderDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CompleteOrder handles PUT /api/v1/orders/:orderId/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetTables handles GET /api/v1/tables.
func (s *Server) GetTables(ctx echo.Context) error {
	tables, err := s.getAllTablesHandler.Handle(ctx.Request().Context(), queries.NewGetAllTablesQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve tables")
	}

	response := make([]TableResponse, len(tables))
	for i, t := range tables {
		response[i] = TableResponse{
			ID:             t.ID.String(),
			Name:           t.Name,
			NumberOfGuests: t.NumberOfGuests,
			Empty:          t.Empty,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateTable handles POST /api/v1/tables.
func (s *Server) CreateTable(ctx echo.Context) error {
	var req CreateTableRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	tableID := kernel.NewUUID()
	cmd, err := commands.NewCreateTableCommand(tableID, req.Name)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.createTableHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: tableID.String()})
}

// SitTable handles PUT /api/v1/tables/:tableId/sit.
func (s *Server) SitTable(ctx echo.Context) error {
	tableID, err := kernel.UUIDFromString(ctx.Param("tableId"))
	if err != nil {
		return badRequest(ctx, "Invalid table ID")
	}

	cmd, err := commands.NewSitTableCommand(tableID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.sitTableHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ClearTable handles PUT /api/v1/tables/:tableId/clear.
func (s *Server) ClearTable(ctx echo.Context) error {
	tableID, err := kernel.UUIDFromString(ctx.Param("tableId"))
	if err != nil {
		return badRequest(ctx, "Invalid table ID")
	}

	cmd, err := commands.NewClearTableCommand(tableID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.clearTableHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ChangeNumberOfGuests handles PUT /api/v1/tables/:tableId/guests.
func (s *Server) ChangeNumberOfGuests(ctx echo.Context) error {
	tableID, err := kernel.UUIDFromString(ctx.Param("tableId"))
	if err != nil {
		return badRequest(ctx, "Invalid table ID")
	}

	var req ChangeGuestsRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeNumberOfGuestsCommand(tableID, req.NumberOfGuests)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.changeGuestsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

func parseMoney(raw string) (kernel.Money, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return kernel.Money{}, err
	}
	return kernel.NewMoney(amount)
}

func parseChannel(raw string) (order.Channel, bool) {
	switch raw {
	case "EAT_IN":
		return order.EatIn, true
	case "TAKEOUT":
		return order.Takeout, true
	case "DELIVERY":
		return order.Delivery, true
	default:
		return order.UnknownChannel, false
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}

// errorJSON maps application and domain errors onto HTTP status codes.
func errorJSON(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, order.ErrIllegalStatus),
		errors.Is(err, table.ErrTableIsEmpty),
		errors.Is(err, commands.ErrOpenOrdersExist):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, menu.ErrPriceExceedsLineTotal),
		errors.Is(err, menu.ErrMenuHasNoLines),
		errors.Is(err, order.ErrOrderHasNoLines),
		errors.Is(err, order.ErrDeliveryAddressIsRequired),
		errors.Is(err, order.ErrTableIsRequired):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
