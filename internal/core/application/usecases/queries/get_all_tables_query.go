package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrGetAllTablesQueryIsNotConstructed = errors.New(
	"GetAllTablesQuery must be created via NewGetAllTablesQuery constructor",
)

// GetAllTablesQuery retrieves every dining table with its occupancy state.
type GetAllTablesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllTablesQuery creates a query to list dining tables.
func NewGetAllTablesQuery() GetAllTablesQuery {
	return GetAllTablesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllTablesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllTablesQueryIsNotConstructed)
}

// GetAllTablesQueryResponse represents one dining table row.
type GetAllTablesQueryResponse struct {
	ID             kernel.UUID
	Name           string
	NumberOfGuests int
	Empty          bool
}
