package repository

import "github.com/jhoicas/inventario-tienda/internal/domain/entity"

// UserRepository define el puerto de persistencia para usuarios (staff).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	Update(user *entity.User) error
	List() ([]*entity.User, error)
	// CountMovements devuelve cuántos asientos stock_in/stock_out registró el usuario.
	CountMovements(id int64) (int64, error)
	Delete(id int64) error
}
