package commands

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrChangeNumberOfGuestsCommandIsNotConstructed = errors.New(
	"ChangeNumberOfGuestsCommand must be created via NewChangeNumberOfGuestsCommand constructor",
)

// ChangeNumberOfGuestsCommand represents a request to update the guest count
// of an occupied table.
type ChangeNumberOfGuestsCommand struct { //nolint:recvcheck //using for validation
	tableID kernel.UUID
	guests  int

	guard guard.ConstructorGuard
}

// NewChangeNumberOfGuestsCommand creates a command to update a table's guest count.
// The count must not be negative.
func NewChangeNumberOfGuestsCommand(tableID kernel.UUID, guests int) (ChangeNumberOfGuestsCommand, error) {
	cmd := ChangeNumberOfGuestsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTableID(tableID),
		cmd.setGuests(guests),
	); err != nil {
		return ChangeNumberOfGuestsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeNumberOfGuestsCommand) Validate() error {
	return c.guard.Validate(ErrChangeNumberOfGuestsCommandIsNotConstructed)
}

// TableID returns the identifier of the table being updated.
func (c ChangeNumberOfGuestsCommand) TableID() kernel.UUID {
	return c.tableID
}

// NumberOfGuests returns the requested guest count.
func (c ChangeNumberOfGuestsCommand) NumberOfGuests() int {
	return c.guests
}

func (c *ChangeNumberOfGuestsCommand) setTableID(tableID kernel.UUID) error {
	if err := tableID.Validate(); err != nil {
		return err
	}

	c.tableID = tableID
	return nil
}

func (c *ChangeNumberOfGuestsCommand) setGuests(guests int) error {
	if guests < 0 {
		return errs.NewValueIsInvalidErrorWithCause("numberOfGuests",
			fmt.Errorf("%d is negative", guests))
	}

	c.guests = guests
	return nil
}
