package repository

import "github.com/jhoicas/inventario-tienda/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id int64) (*entity.Category, error)
	GetByName(name string) (*entity.Category, error)
	Update(category *entity.Category) error
	List() ([]*entity.Category, error)
	// CountItems devuelve cuántos items referencian la categoría (guardia de borrado).
	CountItems(id int64) (int64, error)
	Delete(id int64) error
}
