package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockOut es un asiento inmutable de salida de mercancía (venta/retiro).
// Su creación decrementa Item.CurrentStock solo si hay stock suficiente.
type StockOut struct {
	ID           int64
	Reference    string // UUID del asiento
	ItemID       int64
	ItemName     string // denormalizado en listados
	Quantity     int64
	SellingPrice decimal.Decimal
	DateOut      time.Time
	UserID       int64
	Username     string // denormalizado en listados
	CreatedAt    time.Time
}
