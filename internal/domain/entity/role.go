package entity

// Role es el conjunto cerrado de roles del sistema. Se resuelve una sola vez
// desde role_id en el borde de autenticación y de ahí en adelante viaja tipado
// (claims del JWT, c.Locals), nunca como entero mágico.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// IDs de rol en la tabla roles.
const (
	RoleIDAdmin int64 = 1
	RoleIDStaff int64 = 2
)

// RoleFromID mapea role_id a Role: 1 → admin, cualquier otro → staff.
func RoleFromID(id int64) Role {
	if id == RoleIDAdmin {
		return RoleAdmin
	}
	return RoleStaff
}

// ID devuelve el role_id persistido para el rol.
func (r Role) ID() int64 {
	if r == RoleAdmin {
		return RoleIDAdmin
	}
	return RoleIDStaff
}

// Valid indica si el rol es uno de los conocidos.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleStaff
}

// String implementa fmt.Stringer.
func (r Role) String() string { return string(r) }
