// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Order lines are immutable after creation; only the order
// row itself is touched by status transitions.
package orderrepo

import (
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Channel         int16          `gorm:"type:smallint;not null"`
	Status          int16          `gorm:"type:smallint;not null;index"`
	DeliveryAddress string         `gorm:"type:varchar(512)"`
	TableID         *uuid.UUID     `gorm:"type:uuid;index"`
	Lines           []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one menu reference row inside an order.
type OrderLineDTO struct {
	ID       int64           `gorm:"primaryKey;autoIncrement"`
	OrderID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	MenuID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity int64           `gorm:"not null"`
	Price    decimal.Decimal `gorm:"type:decimal(19,2);not null"`
}

// TableName specifies the database table name for order line entities.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()

	lines := make([]OrderLineDTO, 0, len(o.Lines()))
	for _, line := range o.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID:  orderID,
			MenuID:   line.MenuID().Bytes(),
			Quantity: line.Quantity(),
			Price:    line.Price().Amount(),
		})
	}

	var tableID *uuid.UUID
	if o.TableID() != nil {
		raw := o.TableID().Bytes()
		tableID = &raw
	}

	return OrderDTO{
		ID:              orderID,
		Channel:         int16(o.Channel()),
		Status:          int16(o.Status()),
		DeliveryAddress: o.DeliveryAddress(),
		TableID:         tableID,
		Lines:           lines,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var tableID *kernel.UUID
	if dto.TableID != nil {
		tID, tErr := kernel.UUIDFromBytes((*dto.TableID)[:])
		if tErr != nil {
			return nil, tErr
		}
		tableID = &tID
	}

	lines := make([]order.OrderLine, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := lineToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id,
		order.Channel(dto.Channel),
		order.Status(dto.Status),
		lines,
		dto.DeliveryAddress,
		tableID,
	)
}

func lineToDomain(dto OrderLineDTO) (order.OrderLine, error) {
	menuID, err := kernel.UUIDFromBytes(dto.MenuID[:])
	if err != nil {
		return order.OrderLine{}, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return order.OrderLine{}, err
	}

	return order.NewOrderLine(menuID, dto.Quantity, price)
}
