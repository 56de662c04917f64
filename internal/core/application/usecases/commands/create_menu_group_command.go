package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrCreateMenuGroupCommandIsNotConstructed = errors.New(
	"CreateMenuGroupCommand must be created via NewCreateMenuGroupCommand constructor",
)

// CreateMenuGroupCommand represents a request to create a new menu group.
type CreateMenuGroupCommand struct { //nolint:recvcheck //using for validation
	menuGroupID kernel.UUID
	name        string

	guard guard.ConstructorGuard
}

// NewCreateMenuGroupCommand creates a command to register a new menu group.
// Validates that the group ID is valid and the name is not empty.
func NewCreateMenuGroupCommand(menuGroupID kernel.UUID, name string) (CreateMenuGroupCommand, error) {
	cmd := CreateMenuGroupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMenuGroupID(menuGroupID),
		cmd.setName(name),
	); err != nil {
		return CreateMenuGroupCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMenuGroupCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuGroupCommandIsNotConstructed)
}

// MenuGroupID returns the unique identifier for the menu group.
func (c CreateMenuGroupCommand) MenuGroupID() kernel.UUID {
	return c.menuGroupID
}

// Name returns the requested group name.
func (c CreateMenuGroupCommand) Name() string {
	return c.name
}

func (c *CreateMenuGroupCommand) setMenuGroupID(menuGroupID kernel.UUID) error {
	if err := menuGroupID.Validate(); err != nil {
		return err
	}

	c.menuGroupID = menuGroupID
	return nil
}

func (c *CreateMenuGroupCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}
