package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrCompleteOrderDeliveryCommandIsNotConstructed = errors.New(
	"CompleteOrderDeliveryCommand must be created via NewCompleteOrderDeliveryCommand constructor",
)

// CompleteOrderDeliveryCommand represents a request to record that a rider has
// handed the order to the guest.
type CompleteOrderDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteOrderDeliveryCommand creates a command to finish an order's delivery leg.
func NewCompleteOrderDeliveryCommand(orderID kernel.UUID) (CompleteOrderDeliveryCommand, error) {
	cmd := CompleteOrderDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return CompleteOrderDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderDeliveryCommandIsNotConstructed)
}

// OrderID returns the identifier of the delivered order.
func (c CompleteOrderDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *CompleteOrderDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
