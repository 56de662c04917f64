package commands

import (
	"context"
)

// CompleteOrderDeliveryCommandHandler handles the business logic for finishing
// an order's delivery leg.
type CompleteOrderDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteOrderDeliveryCommandHandler creates a handler for the transition.
func NewCompleteOrderDeliveryCommandHandler(uowFactory OrderUoWFactory) CompleteOrderDeliveryCommandHandler {
	return CompleteOrderDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery completion command.
func (h CompleteOrderDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteOrderDeliveryCommand) error {
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

	if err = o.CompleteDelivery(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
