package commands

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var ErrHideOverpricedMenusCommandIsNotConstructed = errors.New(
	"HideOverpricedMenusCommand must be created via NewHideOverpricedMenusCommand constructor",
)

// HideOverpricedMenusCommand represents a sweep over all displayed menus that
// hides every menu whose price exceeds its recomputed line total. Triggered
// periodically by the price guard job.
type HideOverpricedMenusCommand struct {
	guard guard.ConstructorGuard
}

// NewHideOverpricedMenusCommand creates a command to run the price guard sweep.
func NewHideOverpricedMenusCommand() HideOverpricedMenusCommand {
	return HideOverpricedMenusCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c HideOverpricedMenusCommand) Validate() error {
	return c.guard.Validate(ErrHideOverpricedMenusCommandIsNotConstructed)
}
