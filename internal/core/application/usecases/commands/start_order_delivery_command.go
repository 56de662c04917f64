package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrStartOrderDeliveryCommandIsNotConstructed = errors.New(
	"StartOrderDeliveryCommand must be created via NewStartOrderDeliveryCommand constructor",
)

// StartOrderDeliveryCommand represents a request to hand a served delivery
// order to a rider.
type StartOrderDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartOrderDeliveryCommand creates a command to start delivering an order.
func NewStartOrderDeliveryCommand(orderID kernel.UUID) (StartOrderDeliveryCommand, error) {
	cmd := StartOrderDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return StartOrderDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartOrderDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrStartOrderDeliveryCommandIsNotConstructed)
}

// OrderID returns the identifier of the order entering delivery.
func (c StartOrderDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *StartOrderDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
