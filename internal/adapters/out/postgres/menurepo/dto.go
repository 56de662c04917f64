// Package menurepo provides data transfer objects and mapping functions for
// menu persistence. A menu row owns its line rows; lines are replaced wholesale
// on every update because they carry price snapshots that get refreshed.
package menurepo

import (
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuDTO represents the database structure for persisting menu aggregates.
type MenuDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Price       decimal.Decimal `gorm:"type:decimal(19,2);not null"`
	MenuGroupID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Displayed   bool            `gorm:"not null"`
	Lines       []MenuLineDTO   `gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for menu entities.
func (MenuDTO) TableName() string {
	return "menus"
}

// MenuLineDTO represents one product reference row inside a menu.
type MenuLineDTO struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	MenuID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(19,2);not null"`
	Quantity  int64           `gorm:"not null"`
}

// TableName specifies the database table name for menu line entities.
func (MenuLineDTO) TableName() string {
	return "menu_lines"
}

func fromDomain(m *menu.Menu) MenuDTO {
	menuID := m.ID().Bytes()

	lines := make([]MenuLineDTO, 0, len(m.Lines()))
	for _, line := range m.Lines() {
		lines = append(lines, MenuLineDTO{
			MenuID:    menuID,
			ProductID: line.ProductID().Bytes(),
			UnitPrice: line.UnitPrice().Amount(),
			Quantity:  line.Quantity(),
		})
	}

	return MenuDTO{
		ID:          menuID,
		Name:        m.Name(),
		Price:       m.Price().Amount(),
		MenuGroupID: m.GroupID().Bytes(),
		Displayed:   m.IsDisplayed(),
		Lines:       lines,
	}
}

func toDomain(dto MenuDTO) (*menu.Menu, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	groupID, err := kernel.UUIDFromBytes(dto.MenuGroupID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	lines := make([]menu.MenuLine, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := lineToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return menu.RestoreMenu(id, dto.Name, price, groupID, lines, dto.Displayed)
}

func lineToDomain(dto MenuLineDTO) (menu.MenuLine, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return menu.MenuLine{}, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return menu.MenuLine{}, err
	}

	return menu.NewMenuLine(productID, unitPrice, dto.Quantity)
}
