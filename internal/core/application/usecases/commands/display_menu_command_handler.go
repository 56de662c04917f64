package commands

import (
	"context"
)

// DisplayMenuCommandHandler handles the business logic for showing a menu.
// Display re-checks the price invariant against live product prices: a menu
// whose price has drifted above its line total cannot come back on display.
type DisplayMenuCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewDisplayMenuCommandHandler creates a handler for the display operation.
func NewDisplayMenuCommandHandler(uowFactory CatalogUoWFactory) DisplayMenuCommandHandler {
	return DisplayMenuCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the display command.
func (h DisplayMenuCommandHandler) Handle(ctx context.Context, cmd DisplayMenuCommand) error {
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

	m, err := menuRepo.Get(ctx, cmd.MenuID())
	if err != nil {
		return err
	}

	if err = refreshMenuPrices(ctx, uow.ProductRepository(), m); err != nil {
		return err
	}

	if err = m.Display(m.LineTotal()); err != nil {
		return err
	}

	if err = menuRepo.Update(ctx, m); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
