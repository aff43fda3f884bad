package repository

import "github.com/jhoicas/inventario-tienda/internal/domain/entity"

// StockOutRepository define el puerto de persistencia para asientos de salida.
// Los asientos son inmutables: solo Create y lecturas.
type StockOutRepository interface {
	Create(entry *entity.StockOut) error
	List(limit, offset int) ([]*entity.StockOut, error)
}
