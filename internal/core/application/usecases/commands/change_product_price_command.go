package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrChangeProductPriceCommandIsNotConstructed = errors.New(
	"ChangeProductPriceCommand must be created via NewChangeProductPriceCommand constructor",
)

// ChangeProductPriceCommand represents a request to reprice a product.
type ChangeProductPriceCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	price     kernel.Money

	guard guard.ConstructorGuard
}

// NewChangeProductPriceCommand creates a command to reprice a product.
func NewChangeProductPriceCommand(productID kernel.UUID, price kernel.Money) (ChangeProductPriceCommand, error) {
	cmd := ChangeProductPriceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setProductID(productID); err != nil {
		return ChangeProductPriceCommand{}, err
	}
	cmd.price = price

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeProductPriceCommand) Validate() error {
	return c.guard.Validate(ErrChangeProductPriceCommandIsNotConstructed)
}

// ProductID returns the identifier of the product being repriced.
func (c ChangeProductPriceCommand) ProductID() kernel.UUID {
	return c.productID
}

// Price returns the requested product price.
func (c ChangeProductPriceCommand) Price() kernel.Money {
	return c.price
}

func (c *ChangeProductPriceCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
