package entity

import "time"

// Supplier representa un proveedor de mercancía (referenciado por StockIn).
type Supplier struct {
	ID            int64
	Name          string
	ContactPerson string
	Phone         string
	Address       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
