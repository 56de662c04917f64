package commands_test

import (
	"io"
	"log/slog"
	"testing"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/product"
	"restaurant/internal/core/domain/model/table"

	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func money(t *testing.T, units int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromInt(units)
	require.NoError(t, err)
	return m
}

func newProduct(t *testing.T, units int64) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), "Fried Chicken", money(t, units))
	require.NoError(t, err)
	return p
}

// newDisplayedMenu builds a displayed menu priced at menuPrice with a single
// quantity-1 line referencing the given product.
func newDisplayedMenu(t *testing.T, p *product.Product, menuPrice int64) *menu.Menu {
	t.Helper()

	line, err := menu.NewMenuLine(p.ID(), p.Price(), 1)
	require.NoError(t, err)

	m, err := menu.NewMenu(kernel.NewUUID(), "Chicken Set", money(t, menuPrice), kernel.NewUUID(), []menu.MenuLine{line})
	require.NoError(t, err)
	require.NoError(t, m.Display(m.LineTotal()))

	return m
}

func newOccupiedTable(t *testing.T) *table.Table {
	t.Helper()
	tbl, err := table.NewTable(kernel.NewUUID(), "Table 1")
	require.NoError(t, err)
	tbl.Sit()
	return tbl
}
