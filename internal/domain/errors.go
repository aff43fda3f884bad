package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrUserNotFound        = errors.New("usuario no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
	ErrConflict            = errors.New("conflicto con el estado actual")
	ErrInsufficientStock   = errors.New("stock insuficiente")
	ErrCategoryInUse       = errors.New("la categoría tiene items asociados")
	ErrItemInUse           = errors.New("el item tiene movimientos de stock asociados")
	ErrSupplierInUse       = errors.New("el proveedor tiene entradas de stock asociadas")
	ErrUserHasMovements    = errors.New("el usuario tiene movimientos registrados")
	ErrUsernameAlreadyUsed = errors.New("el nombre de usuario ya está registrado")
)
