package commands

import (
	"context"

	"restaurant/internal/core/domain/model/menugroup"
)

// CreateMenuGroupCommandHandler handles the business logic for menu group creation.
// Menu group names are organizational labels and are not screened for profanity.
type CreateMenuGroupCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateMenuGroupCommandHandler creates a handler for menu group creation.
func NewCreateMenuGroupCommandHandler(uowFactory CatalogUoWFactory) CreateMenuGroupCommandHandler {
	return CreateMenuGroupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the menu group creation command.
func (h CreateMenuGroupCommandHandler) Handle(ctx context.Context, cmd CreateMenuGroupCommand) error {
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

	group, err := menugroup.NewMenuGroup(cmd.MenuGroupID(), cmd.Name())
	if err != nil {
		return err
	}

	if err = uow.MenuGroupRepository().Add(ctx, group); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
