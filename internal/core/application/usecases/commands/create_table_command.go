package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrCreateTableCommandIsNotConstructed = errors.New(
	"CreateTableCommand must be created via NewCreateTableCommand constructor",
)

// CreateTableCommand represents a request to register a new table.
// Tables always start empty with zero guests.
type CreateTableCommand struct { //nolint:recvcheck //using for validation
	tableID kernel.UUID
	name    string

	guard guard.ConstructorGuard
}

// NewCreateTableCommand creates a command to register a new table.
func NewCreateTableCommand(tableID kernel.UUID, name string) (CreateTableCommand, error) {
	cmd := CreateTableCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTableID(tableID),
		cmd.setName(name),
	); err != nil {
		return CreateTableCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTableCommand) Validate() error {
	return c.guard.Validate(ErrCreateTableCommandIsNotConstructed)
}

// TableID returns the unique identifier for the table.
func (c CreateTableCommand) TableID() kernel.UUID {
	return c.tableID
}

// Name returns the requested table name.
func (c CreateTableCommand) Name() string {
	return c.name
}

func (c *CreateTableCommand) setTableID(tableID kernel.UUID) error {
	if err := tableID.Validate(); err != nil {
		return err
	}

	c.tableID = tableID
	return nil
}

func (c *CreateTableCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}
