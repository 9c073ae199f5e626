package models

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DefaultFavoriteName is used when a favorite is saved with a blank label.
const DefaultFavoriteName = "Meu pedido favorito"

// FavoriteItem is the wire shape of favorite snapshots. Unlike order items it
// keeps the catalog id, so a loaded favorite restores identifiable cart lines.
type FavoriteItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Brand    string  `json:"brand,omitempty"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Type     string  `json:"type"`
}

// FavoriteOrder is a named snapshot of a cart, owned by a user.
type FavoriteOrder struct {
	gorm.Model
	UserID uint           `json:"userId"`
	Name   string         `json:"name"`
	Items  datatypes.JSON `json:"items"`
}

func (f *FavoriteOrder) ItemList() ([]FavoriteItem, error) {
	if len(f.Items) == 0 {
		return nil, nil
	}
	var items []FavoriteItem
	if err := json.Unmarshal(f.Items, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (f *FavoriteOrder) SetItems(items []FavoriteItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	f.Items = datatypes.JSON(raw)
	return nil
}
