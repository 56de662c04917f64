package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var (
	ErrCreateMenuCommandIsNotConstructed = errors.New(
		"CreateMenuCommand must be created via NewCreateMenuCommand constructor",
	)
	ErrMenuLinesAreRequired = errors.New("menu requires at least one line")
)

// MenuLineItem describes one product reference inside a menu creation request.
// Quantity is range-checked later, after the product itself has been resolved.
type MenuLineItem struct {
	ProductID kernel.UUID
	Quantity  int64
}

// CreateMenuCommand represents a request to compose a new menu from products.
//
// Example:
//
//	menuID := kernel.NewUUID()
//	price, _ := kernel.NewMoneyFromInt(19000)
//	cmd, err := NewCreateMenuCommand(menuID, "Fried Chicken Set", price, groupID, []commands.MenuLineItem{
//	    {ProductID: chickenID, Quantity: 2},
//	})
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type CreateMenuCommand struct { //nolint:recvcheck //using for validation
	menuID      kernel.UUID
	name        string
	price       kernel.Money
	menuGroupID kernel.UUID
	lines       []MenuLineItem

	guard guard.ConstructorGuard
}

// NewCreateMenuCommand creates a command to compose a new menu.
// Validates identifiers, requires a non-empty name and at least one line.
func NewCreateMenuCommand(
	menuID kernel.UUID,
	name string,
	price kernel.Money,
	menuGroupID kernel.UUID,
	lines []MenuLineItem,
) (CreateMenuCommand, error) {
	cmd := CreateMenuCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMenuID(menuID),
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setMenuGroupID(menuGroupID),
		cmd.setLines(lines),
	); err != nil {
		return CreateMenuCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMenuCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuCommandIsNotConstructed)
}

// MenuID returns the unique identifier for the menu.
func (c CreateMenuCommand) MenuID() kernel.UUID {
	return c.menuID
}

// Name returns the requested menu name.
func (c CreateMenuCommand) Name() string {
	return c.name
}

// Price returns the requested menu price.
func (c CreateMenuCommand) Price() kernel.Money {
	return c.price
}

// MenuGroupID returns the identifier of the group the menu belongs to.
func (c CreateMenuCommand) MenuGroupID() kernel.UUID {
	return c.menuGroupID
}

// Lines returns the requested product references.
func (c CreateMenuCommand) Lines() []MenuLineItem {
	return c.lines
}

func (c *CreateMenuCommand) setMenuID(menuID kernel.UUID) error {
	if err := menuID.Validate(); err != nil {
		return err
	}

	c.menuID = menuID
	return nil
}

func (c *CreateMenuCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateMenuCommand) setPrice(price kernel.Money) error {
	c.price = price
	return nil
}

func (c *CreateMenuCommand) setMenuGroupID(menuGroupID kernel.UUID) error {
	if err := menuGroupID.Validate(); err != nil {
		return err
	}

	c.menuGroupID = menuGroupID
	return nil
}

func (c *CreateMenuCommand) setLines(lines []MenuLineItem) error {
	if len(lines) == 0 {
		return ErrMenuLinesAreRequired
	}

	for _, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			return err
		}
	}

	c.lines = lines
	return nil
}
