package queries

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetIncompleteOrdersQueryHandler reads open orders from the database with
// their totals aggregated over the order lines in SQL.
type GetIncompleteOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetIncompleteOrdersQueryHandler creates a handler for open order queries.
// Requires a GORM database connection for query execution.
func NewGetIncompleteOrdersQueryHandler(db *gorm.DB) GetIncompleteOrdersQueryHandler {
	return GetIncompleteOrdersQueryHandler{db: db}
}

// Handle executes the query and returns open orders sorted by ID.
func (h GetIncompleteOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetIncompleteOrdersQuery,
) ([]GetIncompleteOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetIncompleteOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.channel,
			o.status,
			o.delivery_address,
			COALESCE(SUM(l.price * l.quantity), 0) AS total
		FROM orders o
		LEFT JOIN order_lines l ON l.order_id = o.id
		WHERE o.status != ?
		GROUP BY o.id, o.channel, o.status, o.delivery_address
		ORDER BY o.id
	`, int(order.Completed)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id      uuid.UUID
			channel int16
			status  int16
			address string
			total   decimal.Decimal
		)

		if err = rows.Scan(&id, &channel, &status, &address, &total); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		orderTotal, totalErr := kernel.NewMoney(total)
		if totalErr != nil {
			return nil, totalErr
		}

		orders = append(orders, GetIncompleteOrdersQueryResponse{
			ID:              orderID,
			Channel:         order.Channel(channel),
			Status:          order.Status(status),
			DeliveryAddress: address,
			Total:           orderTotal,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
