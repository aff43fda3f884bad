package dto

import "time"

// StaffRequest alta/actualización de un usuario del personal.
// En actualización, Password vacío conserva la contraseña actual.
type StaffRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	RoleID      int64  `json:"role_id"` // 1 = admin, 2 = staff
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
}

// StaffResponse representación JSON de un usuario (sin hash de contraseña).
type StaffResponse struct {
	UserID      int64     `json:"user_id"`
	Username    string    `json:"username"`
	RoleName    string    `json:"role_name"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	Address     string    `json:"address,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
