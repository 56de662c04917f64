package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrGetAllMenuGroupsQueryIsNotConstructed = errors.New(
	"GetAllMenuGroupsQuery must be created via NewGetAllMenuGroupsQuery constructor",
)

// GetAllMenuGroupsQuery retrieves every menu group.
type GetAllMenuGroupsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllMenuGroupsQuery creates a query to list the menu groups.
func NewGetAllMenuGroupsQuery() GetAllMenuGroupsQuery {
	return GetAllMenuGroupsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllMenuGroupsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllMenuGroupsQueryIsNotConstructed)
}

// GetAllMenuGroupsQueryResponse represents one menu group row.
type GetAllMenuGroupsQueryResponse struct {
	ID   kernel.UUID
	Name string
}
