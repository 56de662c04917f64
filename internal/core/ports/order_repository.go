package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates,
// including their lines.
type OrderRepository interface {
	// Add persists a new order with its lines.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order and its lines.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its lines by identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ExistsIncompleteByTable reports whether any order referencing the given
	// table is not yet in the terminal Completed status. Backs the guard that
	// refuses to clear a table with open orders.
	ExistsIncompleteByTable(ctx context.Context, tableID kernel.UUID) (bool, error)
}
