package commands

import (
	"context"
)

// SitTableCommandHandler handles the business logic for seating guests.
// Seating an already occupied table is a no-op.
type SitTableCommandHandler struct {
	uowFactory TableUoWFactory
}

// NewSitTableCommandHandler creates a handler for the sit operation.
func NewSitTableCommandHandler(uowFactory TableUoWFactory) SitTableCommandHandler {
	return SitTableCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sit command.
func (h SitTableCommandHandler) Handle(ctx context.Context, cmd SitTableCommand) error {
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

	tableRepo := uow.TableRepository()

	t, err := tableRepo.Get(ctx, cmd.TableID())
	if err != nil {
		return err
	}

	t.Sit()

	if err = tableRepo.Update(ctx, t); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
