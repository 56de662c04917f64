package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/table"
)

// TableRepository defines the persistence contract for dining tables.
type TableRepository interface {
	// Add persists a new table.
	Add(ctx context.Context, aggregate *table.Table) error

	// Update persists changes to an existing table.
	Update(ctx context.Context, aggregate *table.Table) error

	// Get retrieves a table by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*table.Table, error)
}
