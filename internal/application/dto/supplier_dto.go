package dto

import "time"

// SupplierRequest alta/actualización de proveedor.
type SupplierRequest struct {
	SupplierName  string `json:"supplier_name"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
}

// SupplierResponse representación JSON de un proveedor.
type SupplierResponse struct {
	SupplierID    int64     `json:"supplier_id"`
	SupplierName  string    `json:"supplier_name"`
	ContactPerson string    `json:"contact_person,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Address       string    `json:"address,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
