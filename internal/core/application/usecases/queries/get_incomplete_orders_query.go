package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

var ErrGetIncompleteOrdersQueryIsNotConstructed = errors.New(
	"GetIncompleteOrdersQuery must be created via NewGetIncompleteOrdersQuery constructor",
)

// GetIncompleteOrdersQuery retrieves every order that has not reached the
// terminal Completed status. Backs the kitchen and dispatch dashboards.
type GetIncompleteOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetIncompleteOrdersQuery creates a query to list open orders.
func NewGetIncompleteOrdersQuery() GetIncompleteOrdersQuery {
	return GetIncompleteOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetIncompleteOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetIncompleteOrdersQueryIsNotConstructed)
}

// GetIncompleteOrdersQueryResponse represents one open order with its total
// charge summed over its lines.
type GetIncompleteOrdersQueryResponse struct {
	ID              kernel.UUID
	Channel         order.Channel
	Status          order.Status
	DeliveryAddress string
	Total           kernel.Money
}
