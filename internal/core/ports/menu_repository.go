package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
)

// MenuRepository defines the persistence contract for menu aggregates,
// including their lines.
type MenuRepository interface {
	// Add persists a new menu with its lines.
	Add(ctx context.Context, aggregate *menu.Menu) error

	// Update persists changes to an existing menu and its lines.
	Update(ctx context.Context, aggregate *menu.Menu) error

	// Get retrieves a menu with its lines by identifier.
	Get(ctx context.Context, id kernel.UUID) (*menu.Menu, error)

	// GetAllByIDs retrieves the menus matching the given identifiers.
	// Missing ids are simply absent from the result.
	GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*menu.Menu, error)

	// GetAllDisplayed retrieves every menu currently shown to guests.
	// Used by the price guard sweep to find menus whose price drifted
	// above their current line total.
	GetAllDisplayed(ctx context.Context) ([]*menu.Menu, error)

	// GetAllByProductID retrieves every menu with a line referencing the
	// given product. Used when a product price changes.
	GetAllByProductID(ctx context.Context, productID kernel.UUID) ([]*menu.Menu, error)
}
