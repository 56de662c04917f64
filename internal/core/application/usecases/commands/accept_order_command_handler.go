package commands

import (
	"context"
	"log/slog"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
)

// AcceptOrderCommandHandler handles the business logic for accepting an order.
// For delivery orders a rider request is sent to the external dispatch service
// after the transaction commits. Dispatch is best effort: the order stays
// accepted even when the dispatch service is unreachable, the failure is only
// logged, and the kitchen staff re-dispatch manually.
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher ports.DeliveryDispatcher
	logger     *slog.Logger
}

// NewAcceptOrderCommandHandler creates a handler for the accept operation.
func NewAcceptOrderCommandHandler(
	uowFactory OrderUoWFactory,
	dispatcher ports.DeliveryDispatcher,
	logger *slog.Logger,
) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Handle processes the accept command.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := h.acceptAndPersist(ctx, cmd)
	if err != nil {
		return err
	}

	if o.Channel() == order.Delivery {
		err = h.dispatcher.RequestDelivery(ctx, o.ID(), o.DeliveryAddress(), o.Total())
		if err != nil {
			h.logger.ErrorContext(ctx, "delivery dispatch request failed",
				"orderID", o.ID().String(),
				"error", err,
			)
		}
	}

	return nil
}

func (h AcceptOrderCommandHandler) acceptAndPersist(
	ctx context.Context,
	cmd AcceptOrderCommand,
) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.Accept(); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
