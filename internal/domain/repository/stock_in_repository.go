package repository

import "github.com/jhoicas/inventario-tienda/internal/domain/entity"

// StockInRepository define el puerto de persistencia para asientos de entrada.
// Los asientos son inmutables: solo Create y lecturas.
type StockInRepository interface {
	Create(entry *entity.StockIn) error
	List(limit, offset int) ([]*entity.StockIn, error)
}
