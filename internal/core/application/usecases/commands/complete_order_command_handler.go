package commands

import (
	"context"

	"restaurant/internal/core/domain/model/order"
)

// CompleteOrderCommandHandler handles the business logic for closing an order.
// Completing an eat-in order also releases its table in the same transaction.
// This is the only path by which the order engine itself frees a table, manual
// clearing goes through ClearTableCommand.
type CompleteOrderCommandHandler struct {
	uowFactory OrderTableUoWFactory
}

// NewCompleteOrderCommandHandler creates a handler for the completion operation.
func NewCompleteOrderCommandHandler(uowFactory OrderTableUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.Complete(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if o.Channel() == order.EatIn {
		if err = h.releaseTable(ctx, uow, o); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func (h CompleteOrderCommandHandler) releaseTable(ctx context.Context, uow OrderTableUoW, o *order.Order) error {
	tableRepo := uow.TableRepository()

	t, err := tableRepo.Get(ctx, *o.TableID())
	if err != nil {
		return err
	}

	t.Clear()

	return tableRepo.Update(ctx, t)
}
