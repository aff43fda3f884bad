package repository

import "github.com/jhoicas/inventario-tienda/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id int64) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	List() ([]*entity.Supplier, error)
	// CountStockIns devuelve cuántos asientos stock_in referencian al proveedor.
	CountStockIns(id int64) (int64, error)
	Delete(id int64) error
}
