package menu

import (
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// MenuLine ties a referenced product to a quantity inside a Menu. The line
// carries a snapshot of the product's unit price taken when the line was built;
// the product id stays the reference for re-resolving current prices.
//
// Lines are owned exclusively by their Menu and never shared.
type MenuLine struct {
	productID kernel.UUID
	unitPrice kernel.Money
	quantity  int64
}

// NewMenuLine creates a line for the given product reference. The quantity must
// be non-negative.
func NewMenuLine(productID kernel.UUID, unitPrice kernel.Money, quantity int64) (MenuLine, error) {
	if err := productID.Validate(); err != nil {
		return MenuLine{}, err
	}
	if quantity < 0 {
		return MenuLine{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is negative", quantity))
	}

	return MenuLine{
		productID: productID,
		unitPrice: unitPrice,
		quantity:  quantity,
	}, nil
}

// ProductID returns the referenced product identity.
func (l MenuLine) ProductID() kernel.UUID {
	return l.productID
}

// UnitPrice returns the snapshotted unit price.
func (l MenuLine) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Quantity returns the line quantity.
func (l MenuLine) Quantity() int64 {
	return l.quantity
}

// Subtotal returns quantity × snapshotted unit price.
func (l MenuLine) Subtotal() kernel.Money {
	return l.unitPrice.MulQuantity(l.quantity)
}
