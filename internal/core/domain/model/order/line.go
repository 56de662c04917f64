package order

import (
	"restaurant/internal/core/domain/model/kernel"
)

// OrderLine ties a referenced menu to a quantity inside an Order. The line
// carries the menu price the guest agreed to at order time; order creation
// rejects the order when that snapshot disagrees with the menu's current price.
//
// The quantity is not range-checked here: whether a negative quantity is legal
// depends on the order's channel and is decided by the Order aggregate.
type OrderLine struct {
	menuID   kernel.UUID
	quantity int64
	price    kernel.Money
}

// NewOrderLine creates a line for the given menu reference with the price the
// caller observed.
func NewOrderLine(menuID kernel.UUID, quantity int64, price kernel.Money) (OrderLine, error) {
	if err := menuID.Validate(); err != nil {
		return OrderLine{}, err
	}

	return OrderLine{
		menuID:   menuID,
		quantity: quantity,
		price:    price,
	}, nil
}

// MenuID returns the referenced menu identity.
func (l OrderLine) MenuID() kernel.UUID {
	return l.menuID
}

// Quantity returns the line quantity.
func (l OrderLine) Quantity() int64 {
	return l.quantity
}

// Price returns the agreed per-menu price snapshot.
func (l OrderLine) Price() kernel.Money {
	return l.price
}

// Subtotal returns quantity × agreed price.
func (l OrderLine) Subtotal() kernel.Money {
	return l.price.MulQuantity(l.quantity)
}
