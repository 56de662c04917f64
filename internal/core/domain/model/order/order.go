package order

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderHasNoLines is returned when an order is created without lines.
	ErrOrderHasNoLines = errors.New("order must contain at least one line")

	// ErrDeliveryAddressIsRequired is returned when a delivery order lacks an address.
	ErrDeliveryAddressIsRequired = errors.New("delivery order requires a delivery address")

	// ErrTableIsRequired is returned when an eat-in order lacks a table reference.
	ErrTableIsRequired = errors.New("eat-in order requires a table")
)

// Order is the aggregate root for a guest order. It owns its lines exclusively
// and carries the channel-dependent extras: a delivery address for delivery
// orders, a table reference for eat-in orders.
//
// Order maintains these invariants:
//   - a valid channel and at least one line
//   - takeout and delivery lines have non-negative quantities; eat-in lines
//     are exempt from the quantity check at creation time (observed behavior
//     of the ordering flow, kept as-is and pinned by tests)
//   - a delivery order has a non-empty address; an eat-in order references a table
//   - status transitions follow the channel-aware state machine in Status
type Order struct {
	id              kernel.UUID
	channel         Channel
	status          Status
	lines           []OrderLine
	deliveryAddress string
	tableID         *kernel.UUID

	isConstructed bool
}

// NewOrder creates an Order in Waiting status after validating the
// channel-dependent creation preconditions.
//
// Cross-entity checks (referenced menus exist and are displayed, price
// snapshots agree with current menu prices, the eat-in table exists and is
// occupied) belong to the application layer, which resolves those entities
// before constructing the order.
func NewOrder(id kernel.UUID, channel Channel, lines []OrderLine, deliveryAddress string, tableID *kernel.UUID) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := channel.Validate(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrOrderHasNoLines
	}

	if channel != EatIn {
		for _, line := range lines {
			if line.quantity < 0 {
				return nil, errs.NewValueIsInvalidErrorWithCause("quantity",
					fmt.Errorf("%d is negative", line.quantity))
			}
		}
	}

	switch channel {
	case Delivery:
		if deliveryAddress == "" {
			return nil, ErrDeliveryAddressIsRequired
		}
	case EatIn:
		if tableID == nil {
			return nil, ErrTableIsRequired
		}
		if err := tableID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:              id,
		channel:         channel,
		status:          Waiting,
		lines:           append([]OrderLine(nil), lines...),
		deliveryAddress: deliveryAddress,
		tableID:         tableID,
		isConstructed:   true,
	}, nil
}

// RestoreOrder reconstructs an Order from persistence with an explicit status.
func RestoreOrder(id kernel.UUID, channel Channel, status Status, lines []OrderLine, deliveryAddress string, tableID *kernel.UUID) (*Order, error) {
	o, err := NewOrder(id, channel, lines, deliveryAddress, tableID)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	o.status = status
	return o, nil
}

// Validate ensures the Order was created through a factory function.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order identity.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Channel returns the fulfillment channel.
func (o *Order) Channel() Channel {
	return o.channel
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Lines returns a copy of the order's lines.
func (o *Order) Lines() []OrderLine {
	return append([]OrderLine(nil), o.lines...)
}

// DeliveryAddress returns the delivery address; empty for non-delivery orders.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// TableID returns the referenced table identity, or nil for orders without one.
func (o *Order) TableID() *kernel.UUID {
	return o.tableID
}

// Total returns the sum of line subtotals (agreed price × quantity). This is
// the amount reported to the delivery dispatch service on acceptance.
func (o *Order) Total() kernel.Money {
	total := kernel.ZeroMoney()
	for _, line := range o.lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// Accept moves the order from Waiting to Accepted.
func (o *Order) Accept() error {
	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Serve moves the order from Accepted to Served.
func (o *Order) Serve() error {
	newStatus, err := o.status.Serve()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// StartDelivery moves a delivery order from Served to Delivering.
func (o *Order) StartDelivery() error {
	newStatus, err := o.status.StartDelivery(o.channel)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// CompleteDelivery moves a delivery order from Delivering to Delivered.
func (o *Order) CompleteDelivery() error {
	newStatus, err := o.status.CompleteDelivery(o.channel)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Complete moves the order to the terminal Completed status. The required
// predecessor depends on the channel (Delivered for delivery, Served
// otherwise). For eat-in orders the caller also releases the table within the
// same operation.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete(o.channel)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}
