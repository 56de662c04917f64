package commands

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/ports"
)

// refreshMenuPrices replaces the menu's unit price snapshots with the current
// product prices so the price invariant is checked against live data.
// Products are never deleted, so every line is expected to resolve.
func refreshMenuPrices(ctx context.Context, productRepo ports.ProductRepository, m *menu.Menu) error {
	lines := m.Lines()

	ids := make([]kernel.UUID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID())
	}

	products, err := productRepo.GetAllByIDs(ctx, ids)
	if err != nil {
		return err
	}

	prices := make(map[kernel.UUID]kernel.Money, len(products))
	for _, p := range products {
		prices[p.ID()] = p.Price()
	}

	m.RefreshLinePrices(prices)
	return nil
}
