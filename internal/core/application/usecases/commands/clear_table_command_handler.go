package commands

import (
	"context"
	"errors"
)

// ErrOpenOrdersExist is returned when a table with incomplete eat-in orders
// would be cleared. The orders must be completed first.
var ErrOpenOrdersExist = errors.New("table has incomplete orders")

// ClearTableCommandHandler handles the business logic for clearing a table.
// A table cannot be released while any order attached to it is still open,
// otherwise the bill would be lost.
type ClearTableCommandHandler struct {
	uowFactory OrderTableUoWFactory
}

// NewClearTableCommandHandler creates a handler for the clear operation.
func NewClearTableCommandHandler(uowFactory OrderTableUoWFactory) ClearTableCommandHandler {
	return ClearTableCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the clear command.
func (h ClearTableCommandHandler) Handle(ctx context.Context, cmd ClearTableCommand) error {
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

	open, err := uow.OrderRepository().ExistsIncompleteByTable(ctx, cmd.TableID())
	if err != nil {
		return err
	}
	if open {
		return ErrOpenOrdersExist
	}

	t.Clear()

	if err = tableRepo.Update(ctx, t); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
