package queries

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetAllMenusQueryHandler reads the menu catalog straight from the database.
type GetAllMenusQueryHandler struct {
	db *gorm.DB
}

// NewGetAllMenusQueryHandler creates a handler for catalog listing queries.
// Requires a GORM database connection for query execution.
func NewGetAllMenusQueryHandler(db *gorm.DB) GetAllMenusQueryHandler {
	return GetAllMenusQueryHandler{db: db}
}

// Handle executes the query and returns every menu sorted by ID.
func (h GetAllMenusQueryHandler) Handle(
	ctx context.Context,
	query GetAllMenusQuery,
) ([]GetAllMenusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	menus := make([]GetAllMenusQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			m.id,
			m.name,
			m.price,
			m.menu_group_id,
			m.displayed,
			COUNT(l.id) AS line_count
		FROM menus m
		LEFT JOIN menu_lines l ON l.menu_id = m.id
		GROUP BY m.id, m.name, m.price, m.menu_group_id, m.displayed
		ORDER BY m.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id        uuid.UUID
			name      string
			price     decimal.Decimal
			groupID   uuid.UUID
			shown     bool
			lineCount int64
		)

		if err = rows.Scan(&id, &name, &price, &groupID, &shown, &lineCount); err != nil {
			return nil, err
		}

		menuID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		menuGroupID, idErr := kernel.UUIDFromBytes(groupID[:])
		if idErr != nil {
			return nil, idErr
		}

		menuPrice, priceErr := kernel.NewMoney(price)
		if priceErr != nil {
			return nil, priceErr
		}

		menus = append(menus, GetAllMenusQueryResponse{
			ID:          menuID,
			Name:        name,
			Price:       menuPrice,
			MenuGroupID: menuGroupID,
			Displayed:   shown,
			LineCount:   lineCount,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return menus, nil
}
