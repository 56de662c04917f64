package commands

import (
	"context"
)

// ChangeProductPriceCommandHandler handles the business logic for product repricing.
// Repricing a product can break the price invariant of menus that include it,
// so every affected menu is refreshed and hidden in the same transaction if its
// price now exceeds the recomputed line total. Customers never see a menu that
// is cheaper to buy piecewise.
type ChangeProductPriceCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewChangeProductPriceCommandHandler creates a handler for product repricing.
func NewChangeProductPriceCommandHandler(uowFactory CatalogUoWFactory) ChangeProductPriceCommandHandler {
	return ChangeProductPriceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product repricing command.
func (h ChangeProductPriceCommandHandler) Handle(ctx context.Context, cmd ChangeProductPriceCommand) error {
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

	productRepo := uow.ProductRepository()

	p, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	p.ChangePrice(cmd.Price())

	if err = productRepo.Update(ctx, p); err != nil {
		return err
	}

	menuRepo := uow.MenuRepository()

	menus, err := menuRepo.GetAllByProductID(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	for _, m := range menus {
		if err = refreshMenuPrices(ctx, productRepo, m); err != nil {
			return err
		}

		if m.Price().GreaterThan(m.LineTotal()) {
			m.Hide()
		}

		if err = menuRepo.Update(ctx, m); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
