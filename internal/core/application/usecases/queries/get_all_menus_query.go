// Package queries contains read-only operations over the persistence layer.
// Query handlers bypass the domain aggregates and read projections straight
// from the database, the write side stays with the commands package.
package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrGetAllMenusQueryIsNotConstructed = errors.New(
	"GetAllMenusQuery must be created via NewGetAllMenusQuery constructor",
)

// GetAllMenusQuery retrieves every menu in the catalog, displayed or not.
//
// Example:
//
//	query := NewGetAllMenusQuery()
//	handler := NewGetAllMenusQueryHandler(db)
//
//	menus, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list menus: %w", err)
//	}
//	fmt.Printf("Catalog holds %d menus\n", len(menus))
type GetAllMenusQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllMenusQuery creates a query to list the full menu catalog.
func NewGetAllMenusQuery() GetAllMenusQuery {
	return GetAllMenusQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllMenusQuery) Validate() error {
	return q.guard.Validate(ErrGetAllMenusQueryIsNotConstructed)
}

// GetAllMenusQueryResponse represents one menu row of the catalog listing.
type GetAllMenusQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Price       kernel.Money
	MenuGroupID kernel.UUID
	Displayed   bool
	LineCount   int64
}
