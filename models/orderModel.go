package models

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ItemTypeProduct = "product"
	ItemTypeCombo   = "combo"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// Statuses lists the kanban columns in board order. The advance action walks
// pending -> confirmed -> delivered; cancelled is only reachable by direct
// selection.
var Statuses = []string{StatusPending, StatusConfirmed, StatusDelivered, StatusCancelled}

func IsValidStatus(status string) bool {
	for _, s := range Statuses {
		if s == status {
			return true
		}
	}
	return false
}

// OrderItem is the wire shape stored in the orders items column. Historical
// records carry no item id, so this shape must not change.
type OrderItem struct {
	Name     string  `json:"name"`
	Brand    string  `json:"brand,omitempty"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Type     string  `json:"type"`
}

type Order struct {
	gorm.Model
	UserID       *uint          `json:"userId"`
	Items        datatypes.JSON `json:"items"`
	Total        float64        `json:"total"`
	CustomerCity *string        `json:"customerCity"`
	Status       string         `json:"status"`
}

// ItemList decodes the JSON items column.
func (o *Order) ItemList() ([]OrderItem, error) {
	if len(o.Items) == 0 {
		return nil, nil
	}
	var items []OrderItem
	if err := json.Unmarshal(o.Items, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SetItems encodes the item snapshot into the JSON column.
func (o *Order) SetItems(items []OrderItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	o.Items = datatypes.JSON(raw)
	return nil
}
