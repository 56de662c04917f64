// Package menugroup contains the MenuGroup entity, a pure grouping of menus
// with no invariants beyond identity and a non-empty name.
package menugroup

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// ErrMenuGroupIsNotConstructed is returned when a MenuGroup instance was not
// created through NewMenuGroup or RestoreMenuGroup.
var ErrMenuGroupIsNotConstructed = errors.New("MenuGroup must be created via NewMenuGroup or RestoreMenuGroup")

// MenuGroup names a set of menus. Group names may repeat.
type MenuGroup struct {
	id   kernel.UUID
	name string

	isConstructed bool
}

// NewMenuGroup creates a MenuGroup. The name must be non-empty.
func NewMenuGroup(id kernel.UUID, name string) (*MenuGroup, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &MenuGroup{
		id:            id,
		name:          name,
		isConstructed: true,
	}, nil
}

// RestoreMenuGroup reconstructs a MenuGroup from persistence.
func RestoreMenuGroup(id kernel.UUID, name string) (*MenuGroup, error) {
	return NewMenuGroup(id, name)
}

// Validate ensures the MenuGroup was created through a constructor.
func (g *MenuGroup) Validate() error {
	if g == nil || !g.isConstructed {
		return ErrMenuGroupIsNotConstructed
	}
	return nil
}

// ID returns the group identity.
func (g *MenuGroup) ID() kernel.UUID {
	return g.id
}

// Name returns the display name.
func (g *MenuGroup) Name() string {
	return g.name
}
