package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderLinesAreRequired = errors.New("order requires at least one line")
)

// OrderLineItem describes one menu reference inside an order placement request.
// Price carries the total the customer saw for the line; it must match the
// menu's current price times quantity or the order is rejected.
type OrderLineItem struct {
	MenuID   kernel.UUID
	Quantity int64
	Price    kernel.Money
}

// CreateOrderCommand represents a request to place a new order.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, order.Delivery, lines, "221B Baker Street", nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	channel         order.Channel
	lines           []OrderLineItem
	deliveryAddress string
	tableID         *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates the order ID, the channel and the shape of the lines. The
// channel-dependent rules, such as the delivery address requirement, belong to
// the order aggregate and are enforced there.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	channel order.Channel,
	lines []OrderLineItem,
	deliveryAddress string,
	tableID *kernel.UUID,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setChannel(channel),
		cmd.setLines(lines),
		cmd.setTableID(tableID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.deliveryAddress = deliveryAddress

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Channel returns the ordering channel.
func (c CreateOrderCommand) Channel() order.Channel {
	return c.channel
}

// Lines returns the requested menu references.
func (c CreateOrderCommand) Lines() []OrderLineItem {
	return c.lines
}

// DeliveryAddress returns the destination for delivery orders.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// TableID returns the target table for eat-in orders, nil otherwise.
func (c CreateOrderCommand) TableID() *kernel.UUID {
	return c.tableID
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setChannel(channel order.Channel) error {
	if err := channel.Validate(); err != nil {
		return err
	}

	c.channel = channel
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLineItem) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}

	for _, line := range lines {
		if err := line.MenuID.Validate(); err != nil {
			return err
		}
	}

	c.lines = lines
	return nil
}

func (c *CreateOrderCommand) setTableID(tableID *kernel.UUID) error {
	if tableID == nil {
		return nil
	}

	if err := tableID.Validate(); err != nil {
		return err
	}

	c.tableID = tableID
	return nil
}
