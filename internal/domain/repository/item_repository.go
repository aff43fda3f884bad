package repository

import "github.com/jhoicas/inventario-tienda/internal/domain/entity"

// ItemRepository define el puerto de persistencia para Item.
// GetForUpdate y UpdateStock se usan dentro de transacciones del ledger
// para garantizar consistencia del contador current_stock.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id int64) (*entity.Item, error)
	Update(item *entity.Item) error
	List() ([]*entity.Item, error)
	// GetForUpdate bloquea la fila del item (SELECT FOR UPDATE).
	GetForUpdate(id int64) (*entity.Item, error)
	// UpdateStock fija el contador current_stock del item.
	UpdateStock(id int64, currentStock int64) error
	// CountMovements devuelve cuántos asientos stock_in/stock_out referencian el item.
	CountMovements(id int64) (int64, error)
	Delete(id int64) error
}
