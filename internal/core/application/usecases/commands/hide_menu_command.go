package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrHideMenuCommandIsNotConstructed = errors.New(
	"HideMenuCommand must be created via NewHideMenuCommand constructor",
)

// HideMenuCommand represents a request to take a menu off display.
type HideMenuCommand struct { //nolint:recvcheck //using for validation
	menuID kernel.UUID

	guard guard.ConstructorGuard
}

// NewHideMenuCommand creates a command to hide a menu.
func NewHideMenuCommand(menuID kernel.UUID) (HideMenuCommand, error) {
	cmd := HideMenuCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setMenuID(menuID); err != nil {
		return HideMenuCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c HideMenuCommand) Validate() error {
	return c.guard.Validate(ErrHideMenuCommandIsNotConstructed)
}

// MenuID returns the identifier of the menu to hide.
func (c HideMenuCommand) MenuID() kernel.UUID {
	return c.menuID
}

func (c *HideMenuCommand) setMenuID(menuID kernel.UUID) error {
	if err := menuID.Validate(); err != nil {
		return err
	}

	c.menuID = menuID
	return nil
}
