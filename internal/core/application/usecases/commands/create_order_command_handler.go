package commands

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrMenuIsNotDisplayed is returned when an order references a hidden menu.
	ErrMenuIsNotDisplayed = errs.NewValueIsInvalidError("menu is not displayed")

	// ErrOrderLinePriceMismatch is returned when the price snapshot sent by the
	// client disagrees with the menu's current price. Forces the client to
	// re-read the menu instead of silently charging a different amount.
	ErrOrderLinePriceMismatch = errs.NewValueIsInvalidError("order line price does not match the menu price")
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Resolves every referenced menu, verifies it is on display and that the
// client's price snapshot agrees with the current menu price, then applies the
// channel-dependent rules through the order aggregate. Eat-in orders are
// additionally pinned to an existing, occupied table.
type CreateOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(uowFactory CheckoutUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
// Menus are resolved as a batch first, then re-validated individually so a
// missing reference surfaces as a not-found error for that exact menu.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuRepo := uow.MenuRepository()

	menuIDs := make([]kernel.UUID, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		menuIDs = append(menuIDs, line.MenuID)
	}

	menus, err := menuRepo.GetAllByIDs(ctx, menuIDs)
	if err != nil {
		return err
	}

	byID := make(map[kernel.UUID]*menu.Menu, len(menus))
	for _, m := range menus {
		byID[m.ID()] = m
	}

	orderLines := make([]order.OrderLine, 0, len(cmd.Lines()))
	for _, item := range cmd.Lines() {
		m, ok := byID[item.MenuID]
		if !ok {
			if m, err = menuRepo.Get(ctx, item.MenuID); err != nil {
				return err
			}
		}

		if !m.IsDisplayed() {
			return ErrMenuIsNotDisplayed
		}
		if !item.Price.IsEqual(m.Price()) {
			return ErrOrderLinePriceMismatch
		}

		line, err := order.NewOrderLine(item.MenuID, item.Quantity, m.Price())
		if err != nil {
			return err
		}
		orderLines = append(orderLines, line)
	}

	if cmd.Channel() == order.EatIn {
		if err = h.checkTableIsOccupied(ctx, uow, cmd.TableID()); err != nil {
			return err
		}
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.Channel(), orderLines, cmd.DeliveryAddress(), cmd.TableID())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func (h CreateOrderCommandHandler) checkTableIsOccupied(
	ctx context.Context,
	uow CheckoutUoW,
	tableID *kernel.UUID,
) error {
	if tableID == nil {
		return order.ErrTableIsRequired
	}

	t, err := uow.TableRepository().Get(ctx, *tableID)
	if err != nil {
		return err
	}

	if t.IsEmpty() {
		return table.ErrTableIsEmpty
	}

	return nil
}
