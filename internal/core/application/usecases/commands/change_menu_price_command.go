package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrChangeMenuPriceCommandIsNotConstructed = errors.New(
	"ChangeMenuPriceCommand must be created via NewChangeMenuPriceCommand constructor",
)

// ChangeMenuPriceCommand represents a request to reprice an existing menu.
type ChangeMenuPriceCommand struct { //nolint:recvcheck //using for validation
	menuID kernel.UUID
	price  kernel.Money

	guard guard.ConstructorGuard
}

// NewChangeMenuPriceCommand creates a command to reprice a menu.
func NewChangeMenuPriceCommand(menuID kernel.UUID, price kernel.Money) (ChangeMenuPriceCommand, error) {
	cmd := ChangeMenuPriceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setMenuID(menuID); err != nil {
		return ChangeMenuPriceCommand{}, err
	}
	cmd.price = price

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeMenuPriceCommand) Validate() error {
	return c.guard.Validate(ErrChangeMenuPriceCommandIsNotConstructed)
}

// MenuID returns the identifier of the menu being repriced.
func (c ChangeMenuPriceCommand) MenuID() kernel.UUID {
	return c.menuID
}

// Price returns the requested menu price.
func (c ChangeMenuPriceCommand) Price() kernel.Money {
	return c.price
}

func (c *ChangeMenuPriceCommand) setMenuID(menuID kernel.UUID) error {
	if err := menuID.Validate(); err != nil {
		return err
	}

	c.menuID = menuID
	return nil
}
