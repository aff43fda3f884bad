package entity

import "time"

// User representa un usuario del sistema (personal de la tienda).
type User struct {
	ID           int64
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         Role
	PhoneNumber  string
	Address      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
