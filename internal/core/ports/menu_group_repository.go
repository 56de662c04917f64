package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menugroup"
)

// MenuGroupRepository defines the persistence contract for menu groups.
type MenuGroupRepository interface {
	// Add persists a new menu group.
	Add(ctx context.Context, aggregate *menugroup.MenuGroup) error

	// Get retrieves a menu group by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*menugroup.MenuGroup, error)
}
