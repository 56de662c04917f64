// Package product contains the Product entity: catalog reference data with a
// display name and a unit price. Menus snapshot product prices into their lines;
// the product itself stays the authoritative source for re-validation.
package product

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")
)

// Product is a catalog item with a unit price. Its price is treated as
// read-only reference data by the menu and order engines; changing it is a
// dedicated catalog operation that re-validates every menu referencing it.
type Product struct {
	id    kernel.UUID
	name  string
	price kernel.Money

	isConstructed bool
}

// NewProduct creates a Product with a fresh state. The name must be non-empty;
// profanity screening of the name happens in the application layer, where the
// external checker is available.
func NewProduct(id kernel.UUID, name string, price kernel.Money) (*Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Product{
		id:            id,
		name:          name,
		price:         price,
		isConstructed: true,
	}, nil
}

// RestoreProduct reconstructs a Product from persistence.
func RestoreProduct(id kernel.UUID, name string, price kernel.Money) (*Product, error) {
	return NewProduct(id, name, price)
}

// Validate ensures the Product was created through a constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product identity.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the display name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the current unit price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// ChangePrice sets a new unit price. Price validity (non-negative) is enforced
// by the Money type; menus referencing the product are re-validated by the
// catalog operation driving this change.
func (p *Product) ChangePrice(price kernel.Money) {
	p.price = price
}

// IsEqual compares two products by identity.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}
