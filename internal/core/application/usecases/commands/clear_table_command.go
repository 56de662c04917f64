package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrClearTableCommandIsNotConstructed = errors.New(
	"ClearTableCommand must be created via NewClearTableCommand constructor",
)

// ClearTableCommand represents a request to release a table for new guests.
type ClearTableCommand struct { //nolint:recvcheck //using for validation
	tableID kernel.UUID

	guard guard.ConstructorGuard
}

// NewClearTableCommand creates a command to clear a table.
func NewClearTableCommand(tableID kernel.UUID) (ClearTableCommand, error) {
	cmd := ClearTableCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setTableID(tableID); err != nil {
		return ClearTableCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ClearTableCommand) Validate() error {
	return c.guard.Validate(ErrClearTableCommandIsNotConstructed)
}

// TableID returns the identifier of the table to clear.
func (c ClearTableCommand) TableID() kernel.UUID {
	return c.tableID
}

func (c *ClearTableCommand) setTableID(tableID kernel.UUID) error {
	if err := tableID.Validate(); err != nil {
		return err
	}

	c.tableID = tableID
	return nil
}
