package commands

import (
	"context"

	"restaurant/internal/core/domain/model/table"
)

// CreateTableCommandHandler handles the business logic for table registration.
type CreateTableCommandHandler struct {
	uowFactory TableUoWFactory
}

// NewCreateTableCommandHandler creates a handler for table registration.
func NewCreateTableCommandHandler(uowFactory TableUoWFactory) CreateTableCommandHandler {
	return CreateTableCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the table registration command.
func (h CreateTableCommandHandler) Handle(ctx context.Context, cmd CreateTableCommand) error {
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

	t, err := table.NewTable(cmd.TableID(), cmd.Name())
	if err != nil {
		return err
	}

	if err = uow.TableRepository().Add(ctx, t); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
