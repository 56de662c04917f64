package commands

import (
	"context"
	"log/slog"
)

// HideOverpricedMenusCommandHandler sweeps displayed menus and hides every one
// whose price has drifted above its recomputed line total. Product prices can
// change while a menu is on display, this sweep is the safety net that keeps
// the invariant visible to customers.
type HideOverpricedMenusCommandHandler struct {
	uowFactory CatalogUoWFactory
	logger     *slog.Logger
}

// NewHideOverpricedMenusCommandHandler creates a handler for the sweep.
func NewHideOverpricedMenusCommandHandler(
	uowFactory CatalogUoWFactory,
	logger *slog.Logger,
) HideOverpricedMenusCommandHandler {
	return HideOverpricedMenusCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the sweep command.
func (h HideOverpricedMenusCommandHandler) Handle(ctx context.Context, cmd HideOverpricedMenusCommand) error {
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

	menus, err := menuRepo.GetAllDisplayed(ctx)
	if err != nil {
		return err
	}

	hidden := 0
	for _, m := range menus {
		if err = refreshMenuPrices(ctx, uow.ProductRepository(), m); err != nil {
			return err
		}

		if !m.Price().GreaterThan(m.LineTotal()) {
			continue
		}

		m.Hide()
		hidden++

		if err = menuRepo.Update(ctx, m); err != nil {
			return err
		}

		h.logger.WarnContext(ctx, "menu hidden by price guard",
			"menuID", m.ID().String(),
			"price", m.Price().String(),
			"lineTotal", m.LineTotal().String(),
		)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
