package commands

import (
	"context"
)

// StartOrderDeliveryCommandHandler handles the business logic for the delivery
// start transition. Only delivery channel orders ever enter this stage, the
// aggregate rejects the transition for eat-in and takeout.
type StartOrderDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewStartOrderDeliveryCommandHandler creates a handler for the transition.
func NewStartOrderDeliveryCommandHandler(uowFactory OrderUoWFactory) StartOrderDeliveryCommandHandler {
	return StartOrderDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery start command.
func (h StartOrderDeliveryCommandHandler) Handle(ctx context.Context, cmd StartOrderDeliveryCommand) error {
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

	if err = o.StartDelivery(); err != nil {
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
