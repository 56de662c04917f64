// Package tablerepo provides data transfer objects and mapping functions for
// dining table persistence. The table name "dining_tables" sidesteps the SQL
// information_schema naming clash a bare "tables" would invite.
package tablerepo

import (
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/table"

	"github.com/google/uuid"
)

// TableDTO represents the database structure for persisting dining tables.
type TableDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"type:varchar(255);not null"`
	NumberOfGuests int       `gorm:"not null"`
	Empty          bool      `gorm:"not null"`
}

// TableName specifies the database table name for dining table entities.
func (TableDTO) TableName() string {
	return "dining_tables"
}

func fromDomain(t *table.Table) TableDTO {
	return TableDTO{
		ID:             t.ID().Bytes(),
		Name:           t.Name(),
		NumberOfGuests: t.NumberOfGuests(),
		Empty:          t.IsEmpty(),
	}
}

func toDomain(dto TableDTO) (*table.Table, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return table.RestoreTable(id, dto.Name, dto.NumberOfGuests, dto.Empty)
}
