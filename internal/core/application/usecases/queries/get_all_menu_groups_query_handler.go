package queries

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllMenuGroupsQueryHandler reads the menu groups straight from the database.
type GetAllMenuGroupsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllMenuGroupsQueryHandler creates a handler for menu group listing queries.
func NewGetAllMenuGroupsQueryHandler(db *gorm.DB) GetAllMenuGroupsQueryHandler {
	return GetAllMenuGroupsQueryHandler{db: db}
}

// Handle executes the query and returns every menu group sorted by ID.
func (h GetAllMenuGroupsQueryHandler) Handle(
	ctx context.Context,
	query GetAllMenuGroupsQuery,
) ([]GetAllMenuGroupsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	groups := make([]GetAllMenuGroupsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name
		FROM menu_groups
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id   uuid.UUID
			name string
		)

		if err = rows.Scan(&id, &name); err != nil {
			return nil, err
		}

		groupID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		groups = append(groups, GetAllMenuGroupsQueryResponse{
			ID:   groupID,
			Name: name,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return groups, nil
}
