package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrSitTableCommandIsNotConstructed = errors.New(
	"SitTableCommand must be created via NewSitTableCommand constructor",
)

// SitTableCommand represents a request to seat guests at a table.
type SitTableCommand struct { //nolint:recvcheck //using for validation
	tableID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSitTableCommand creates a command to mark a table as occupied.
func NewSitTableCommand(tableID kernel.UUID) (SitTableCommand, error) {
	cmd := SitTableCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setTableID(tableID); err != nil {
		return SitTableCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SitTableCommand) Validate() error {
	return c.guard.Validate(ErrSitTableCommandIsNotConstructed)
}

// TableID returns the identifier of the table to occupy.
func (c SitTableCommand) TableID() kernel.UUID {
	return c.tableID
}

func (c *SitTableCommand) setTableID(tableID kernel.UUID) error {
	if err := tableID.Validate(); err != nil {
		return err
	}

	c.tableID = tableID
	return nil
}
