// Package orderrepo provides data transfer objects and mapping functions for order
// persistence. This package implements the repository pattern for the order domain
// aggregate, handling the conversion between domain entities and database records.
package orderrepo

import (
	"encoding/json"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The composite primary key (area, id) mirrors the order partitioning and makes
// the insert an insert-if-absent: a duplicate key fails the write instead of
// overwriting an existing record.
type OrderDTO struct {
	Area               string    `gorm:"primaryKey"`
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Items              string
	TotalCost          decimal.Decimal `gorm:"type:numeric(12,2)"`
	EstDeliveryMinutes int
	CustomerAddress    string
	CreatedAt          time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// lineItemDTO is the JSON shape of one submitted line item as stored in the
// items column. The order keeps its original items, countable or not.
type lineItemDTO struct {
	MealID string `json:"mealId"`
	Qty    int    `json:"qty"`
}

// fromDomain converts an order domain aggregate to its database representation.
// The original line items are serialized to JSON for the items column.
func fromDomain(order *order.Order) (OrderDTO, error) {
	items := order.Items()
	itemDTOs := make([]lineItemDTO, len(items))
	for i, item := range items {
		itemDTOs[i] = lineItemDTO{
			MealID: item.MealID(),
			Qty:    item.Qty(),
		}
	}

	serialized, err := json.Marshal(itemDTOs)
	if err != nil {
		return OrderDTO{}, err
	}

	return OrderDTO{
		Area:               order.Area(),
		ID:                 order.ID().Bytes(),
		Items:              string(serialized),
		TotalCost:          order.TotalCost(),
		EstDeliveryMinutes: order.EstDeliveryMinutes(),
		CustomerAddress:    order.Address(),
		CreatedAt:          order.CreatedAt(),
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate,
// reconstructing the original line items from the serialized column.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var itemDTOs []lineItemDTO
	if err = json.Unmarshal([]byte(dto.Items), &itemDTOs); err != nil {
		return nil, err
	}

	items := make([]order.LineItem, len(itemDTOs))
	for i, item := range itemDTOs {
		items[i] = order.NewLineItem(item.MealID, item.Qty)
	}

	return order.NewOrder(
		id,
		dto.Area,
		dto.CustomerAddress,
		items,
		dto.TotalCost,
		dto.EstDeliveryMinutes,
		dto.CreatedAt,
	)
}
