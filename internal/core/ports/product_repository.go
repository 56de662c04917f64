// Package ports defines the contracts between the domain core and the outside
// world: per-aggregate repositories, the unit-of-work transaction boundary, and
// the two external collaborators (profanity checker, delivery dispatcher).
// These interfaces enable dependency inversion and testability.
package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for products.
type ProductRepository interface {
	// Add persists a new product.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAllByIDs retrieves the products matching the given identifiers.
	// Missing ids are simply absent from the result; callers that need
	// per-id existence re-resolve each id with Get.
	GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)
}
