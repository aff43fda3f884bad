package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockInRequest alta de un asiento de entrada.
// DateIn acepta "2006-01-02" o RFC 3339. UserID es opcional: si viene en 0
// se usa el usuario autenticado del token.
type StockInRequest struct {
	ItemID        int64           `json:"item_id"`
	SupplierID    int64           `json:"supplier_id"`
	Quantity      int64           `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	DateIn        string          `json:"date_in"`
	UserID        int64           `json:"user_id"`
}

// StockOutRequest alta de un asiento de salida.
type StockOutRequest struct {
	ItemID       int64           `json:"item_id"`
	Quantity     int64           `json:"quantity"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	DateOut      string          `json:"date_out"`
	UserID       int64           `json:"user_id"`
}

// StockInResponse asiento de entrada con campos denormalizados para listados.
type StockInResponse struct {
	StockInID     int64           `json:"stock_in_id"`
	Reference     string          `json:"reference"`
	ItemID        int64           `json:"item_id"`
	ItemName      string          `json:"item_name,omitempty"`
	SupplierID    int64           `json:"supplier_id"`
	SupplierName  string          `json:"supplier_name,omitempty"`
	Quantity      int64           `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	DateIn        time.Time       `json:"date_in"`
	UserID        int64           `json:"user_id"`
	Username      string          `json:"username,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// StockOutResponse asiento de salida con campos denormalizados para listados.
type StockOutResponse struct {
	StockOutID   int64           `json:"stock_out_id"`
	Reference    string          `json:"reference"`
	ItemID       int64           `json:"item_id"`
	ItemName     string          `json:"item_name,omitempty"`
	Quantity     int64           `json:"quantity"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	DateOut      time.Time       `json:"date_out"`
	UserID       int64           `json:"user_id"`
	Username     string          `json:"username,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// StockInListResponse página de asientos de entrada.
type StockInListResponse struct {
	Items []StockInResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// StockOutListResponse página de asientos de salida.
type StockOutListResponse struct {
	Items []StockOutResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
