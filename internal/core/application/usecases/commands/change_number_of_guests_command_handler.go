package commands

import (
	"context"
)

// ChangeNumberOfGuestsCommandHandler handles the business logic for updating a
// table's guest count. The table aggregate rejects the change while the table
// is empty.
type ChangeNumberOfGuestsCommandHandler struct {
	uowFactory TableUoWFactory
}

// NewChangeNumberOfGuestsCommandHandler creates a handler for the update.
func NewChangeNumberOfGuestsCommandHandler(uowFactory TableUoWFactory) ChangeNumberOfGuestsCommandHandler {
	return ChangeNumberOfGuestsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the guest count update command.
func (h ChangeNumberOfGuestsCommandHandler) Handle(ctx context.Context, cmd ChangeNumberOfGuestsCommand) error {
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

	if err = t.ChangeNumberOfGuests(cmd.NumberOfGuests()); err != nil {
		return err
	}

	if err = tableRepo.Update(ctx, t); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
