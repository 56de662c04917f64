// Package table implements the Table aggregate tracking dine-in occupancy: an
// empty/occupied flag and a guest count. Guests can only be counted while the
// table is occupied, and clearing a table is refused by the application layer
// while any order referencing it is still open.
package table

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrTableIsNotConstructed is returned when a Table instance was not
	// created through NewTable or RestoreTable.
	ErrTableIsNotConstructed = errors.New("Table must be created via NewTable or RestoreTable")

	// ErrTableIsEmpty is returned when the guest count is changed on a table
	// nobody is sitting at.
	ErrTableIsEmpty = errors.New("table is not occupied")
)

// Table is a dine-in table. A new table starts empty with zero guests; Sit
// marks it occupied, Clear releases it and resets the guest count.
type Table struct {
	id     kernel.UUID
	name   string
	guests int
	empty  bool

	isConstructed bool
}

// NewTable creates an empty Table with zero guests. The name must be
// non-empty; table names may repeat.
func NewTable(id kernel.UUID, name string) (*Table, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Table{
		id:            id,
		name:          name,
		guests:        0,
		empty:         true,
		isConstructed: true,
	}, nil
}

// RestoreTable reconstructs a Table from persistence.
func RestoreTable(id kernel.UUID, name string, guests int, empty bool) (*Table, error) {
	t, err := NewTable(id, name)
	if err != nil {
		return nil, err
	}
	if guests < 0 {
		return nil, errs.NewValueIsOutOfRangeError("guests", guests, 0, int(^uint(0)>>1))
	}

	t.guests = guests
	t.empty = empty
	return t, nil
}

// Validate ensures the Table was created through a constructor.
func (t *Table) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTableIsNotConstructed
	}
	return nil
}

// ID returns the table identity.
func (t *Table) ID() kernel.UUID {
	return t.id
}

// Name returns the display name.
func (t *Table) Name() string {
	return t.name
}

// NumberOfGuests returns the current guest count.
func (t *Table) NumberOfGuests() int {
	return t.guests
}

// IsEmpty reports whether the table is unoccupied.
func (t *Table) IsEmpty() bool {
	return t.empty
}

// Sit marks the table as occupied. Sitting at an already occupied table is a
// no-op rather than an error.
func (t *Table) Sit() {
	t.empty = false
}

// Clear releases the table: empty again, zero guests. The caller must first
// verify that no open order still references the table.
func (t *Table) Clear() {
	t.empty = true
	t.guests = 0
}

// ChangeNumberOfGuests sets the guest count. The count must be non-negative
// and the table must currently be occupied.
func (t *Table) ChangeNumberOfGuests(guests int) error {
	if guests < 0 {
		return errs.NewValueIsInvalidErrorWithCause("numberOfGuests",
			fmt.Errorf("%d is negative", guests))
	}
	if t.empty {
		return ErrTableIsEmpty
	}

	t.guests = guests
	return nil
}
