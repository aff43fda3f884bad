package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockIn es un asiento inmutable de entrada de mercancía.
// Su creación incrementa Item.CurrentStock; nunca se edita ni se borra,
// las correcciones se hacen con asientos compensatorios.
type StockIn struct {
	ID            int64
	Reference     string // UUID del asiento
	ItemID        int64
	ItemName      string // denormalizado en listados
	SupplierID    int64
	SupplierName  string // denormalizado en listados
	Quantity      int64
	PurchasePrice decimal.Decimal
	DateIn        time.Time
	UserID        int64
	Username      string // denormalizado en listados
	CreatedAt     time.Time
}
