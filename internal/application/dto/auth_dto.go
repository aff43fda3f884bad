package dto

// LoginRequest credenciales de login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse datos de sesión tras un login exitoso.
// Email y Name replican el username (el sistema no guarda email separado).
type LoginResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"` // "admin" | "staff"
	Token string `json:"token"`
}
