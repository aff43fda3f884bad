package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemRequest alta/actualización de item.
// CurrentStock no se acepta del cliente: el contador solo lo mutan los
// asientos de stock (si viene en el JSON se ignora).
type ItemRequest struct {
	ItemName      string          `json:"item_name"`
	CategoryID    int64           `json:"category_id"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	Image         string          `json:"image"`
}

// ItemResponse representación JSON de un item con su categoría.
type ItemResponse struct {
	ItemID        int64           `json:"item_id"`
	ItemName      string          `json:"item_name"`
	CategoryID    int64           `json:"category_id"`
	CategoryName  string          `json:"category_name,omitempty"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	CurrentStock  int64           `json:"current_stock"`
	Image         string          `json:"image,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
