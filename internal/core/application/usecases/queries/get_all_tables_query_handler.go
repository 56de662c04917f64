package queries

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllTablesQueryHandler reads dining tables straight from the database.
type GetAllTablesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllTablesQueryHandler creates a handler for table listing queries.
// Requires a GORM database connection for query execution.
func NewGetAllTablesQueryHandler(db *gorm.DB) GetAllTablesQueryHandler {
	return GetAllTablesQueryHandler{db: db}
}

// Handle executes the query and returns every table sorted by ID.
func (h GetAllTablesQueryHandler) Handle(
	ctx context.Context,
	query GetAllTablesQuery,
) ([]GetAllTablesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tables := make([]GetAllTablesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			number_of_guests,
			empty
		FROM dining_tables
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id     uuid.UUID
			name   string
			guests int
			empty  bool
		)

		if err = rows.Scan(&id, &name, &guests, &empty); err != nil {
			return nil, err
		}

		tableID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		tables = append(tables, GetAllTablesQueryResponse{
			ID:             tableID,
			Name:           name,
			NumberOfGuests: guests,
			Empty:          empty,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tables, nil
}
