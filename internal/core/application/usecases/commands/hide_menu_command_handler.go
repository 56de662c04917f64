package commands

import (
	"context"
)

// HideMenuCommandHandler handles the business logic for taking a menu off display.
// Hiding is unconditional, no pricing check applies.
type HideMenuCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewHideMenuCommandHandler creates a handler for the hide operation.
func NewHideMenuCommandHandler(uowFactory CatalogUoWFactory) HideMenuCommandHandler {
	return HideMenuCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the hide command.
func (h HideMenuCommandHandler) Handle(ctx context.Context, cmd HideMenuCommand) error {
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

	m.Hide()

	if err = menuRepo.Update(ctx, m); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
