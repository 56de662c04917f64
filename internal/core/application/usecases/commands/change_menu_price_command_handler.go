package commands

import (
	"context"
)

// ChangeMenuPriceCommandHandler handles the business logic for menu repricing.
// The new price is validated against live product prices, not the snapshots
// taken when the menu was composed.
type ChangeMenuPriceCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewChangeMenuPriceCommandHandler creates a handler for menu repricing.
func NewChangeMenuPriceCommandHandler(uowFactory CatalogUoWFactory) ChangeMenuPriceCommandHandler {
	return ChangeMenuPriceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the menu repricing command.
func (h ChangeMenuPriceCommandHandler) Handle(ctx context.Context, cmd ChangeMenuPriceCommand) error {
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

	if err = m.ChangePrice(cmd.Price(), m.LineTotal()); err != nil {
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
