package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un artículo del inventario.
// CurrentStock es un contador derivado: solo lo mutan los asientos de
// stock-in/stock-out (siempre dentro de una transacción con bloqueo de fila)
// y debe cumplir CurrentStock == Σ(entradas) − Σ(salidas) >= 0.
type Item struct {
	ID            int64
	Name          string
	CategoryID    int64
	CategoryName  string // denormalizado en listados (LEFT JOIN categories)
	PurchasePrice decimal.Decimal
	SellingPrice  decimal.Decimal
	CurrentStock  int64
	Image         string // URL o ruta, opcional
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
