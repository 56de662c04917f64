package menu

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrMenuIsNotConstructed is returned when a Menu instance was not created
	// through the NewMenu or RestoreMenu factory functions.
	ErrMenuIsNotConstructed = errors.New("Menu must be created via NewMenu or RestoreMenu")

	// ErrMenuHasNoLines is returned when a menu is created without any lines.
	ErrMenuHasNoLines = errors.New("menu must contain at least one line")

	// ErrPriceExceedsLineTotal is returned whenever a menu price would exceed
	// the sum of its line subtotals. Checked at creation, on price changes, and
	// again on display because product prices may have moved since creation.
	ErrPriceExceedsLineTotal = errors.New("menu price exceeds the sum of its line subtotals")
)

// Menu is the aggregate root for a sellable menu: a named, priced collection of
// product lines inside one menu group.
//
// Menu maintains these invariants:
//   - at least one line
//   - price ≤ Σ(line.quantity × line unit price), enforced at creation, at
//     every price change, and at display-on
//   - lines are owned exclusively and exposed only as copies
//
// A menu starts hidden; only displayed menus can be ordered.
type Menu struct {
	id        kernel.UUID
	name      string
	price     kernel.Money
	groupID   kernel.UUID
	lines     []MenuLine
	displayed bool

	isConstructed bool
}

// NewMenu creates a hidden Menu and checks the price invariant against the
// snapshots carried by the given lines.
//
// The name must be non-empty; profanity screening happens in the application
// layer where the external checker is available.
func NewMenu(id kernel.UUID, name string, price kernel.Money, groupID kernel.UUID, lines []MenuLine) (*Menu, error) {
	if err := errors.Join(id.Validate(), groupID.Validate()); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if len(lines) == 0 {
		return nil, ErrMenuHasNoLines
	}

	m := &Menu{
		id:            id,
		name:          name,
		price:         price,
		groupID:       groupID,
		lines:         append([]MenuLine(nil), lines...),
		isConstructed: true,
	}

	if lineTotal := m.LineTotal(); m.price.GreaterThan(lineTotal) {
		return nil, priceExceedsError(m.price, lineTotal)
	}

	return m, nil
}

// RestoreMenu reconstructs a Menu from persistence, including its displayed
// flag. The price invariant is not re-checked here: a stored menu may have
// drifted out of bounds through product price changes, and surfacing that is
// the job of Display and the price guard sweep, not of loading.
func RestoreMenu(id kernel.UUID, name string, price kernel.Money, groupID kernel.UUID, lines []MenuLine, displayed bool) (*Menu, error) {
	if err := errors.Join(id.Validate(), groupID.Validate()); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if len(lines) == 0 {
		return nil, ErrMenuHasNoLines
	}

	return &Menu{
		id:            id,
		name:          name,
		price:         price,
		groupID:       groupID,
		lines:         append([]MenuLine(nil), lines...),
		displayed:     displayed,
		isConstructed: true,
	}, nil
}

// Validate ensures the Menu was created through a factory function.
func (m *Menu) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuIsNotConstructed
	}
	return nil
}

// ID returns the menu identity.
func (m *Menu) ID() kernel.UUID {
	return m.id
}

// Name returns the display name.
func (m *Menu) Name() string {
	return m.name
}

// Price returns the current menu price.
func (m *Menu) Price() kernel.Money {
	return m.price
}

// GroupID returns the identity of the owning menu group.
func (m *Menu) GroupID() kernel.UUID {
	return m.groupID
}

// Lines returns a copy of the menu's lines.
func (m *Menu) Lines() []MenuLine {
	return append([]MenuLine(nil), m.lines...)
}

// IsDisplayed reports whether the menu is currently shown.
func (m *Menu) IsDisplayed() bool {
	return m.displayed
}

// LineTotal returns the sum of line subtotals based on the unit price
// snapshots the lines carry. Callers holding current product prices should
// recompute the total themselves and pass it to ChangePrice or Display.
func (m *Menu) LineTotal() kernel.Money {
	total := kernel.ZeroMoney()
	for _, line := range m.lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// ChangePrice sets a new price after checking it against currentLineTotal, the
// sum of subtotals computed from current product prices.
func (m *Menu) ChangePrice(newPrice kernel.Money, currentLineTotal kernel.Money) error {
	if newPrice.GreaterThan(currentLineTotal) {
		return priceExceedsError(newPrice, currentLineTotal)
	}

	m.price = newPrice
	return nil
}

// Display marks the menu as shown. The price invariant is re-checked against
// currentLineTotal because product prices may have risen since the menu was
// created or last priced.
func (m *Menu) Display(currentLineTotal kernel.Money) error {
	if m.price.GreaterThan(currentLineTotal) {
		return priceExceedsError(m.price, currentLineTotal)
	}

	m.displayed = true
	return nil
}

// Hide marks the menu as not shown. Hiding is always safe and needs no
// invariant check.
func (m *Menu) Hide() {
	m.displayed = false
}

// RefreshLinePrices replaces the unit price snapshots with current product
// prices, keyed by product id. Unknown product ids leave their line untouched.
func (m *Menu) RefreshLinePrices(prices map[kernel.UUID]kernel.Money) {
	for i, line := range m.lines {
		if price, ok := prices[line.productID]; ok {
			m.lines[i].unitPrice = price
		}
	}
}

// IsEqual compares two menus by identity.
func (m *Menu) IsEqual(other *Menu) bool {
	return other != nil && m.id.IsEqual(other.id)
}

func priceExceedsError(price, lineTotal kernel.Money) error {
	return fmt.Errorf("%w: price %s, line total %s", ErrPriceExceedsLineTotal, price, lineTotal)
}
