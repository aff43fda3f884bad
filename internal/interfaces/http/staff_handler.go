package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-tienda/internal/application/dto"
	"github.com/jhoicas/inventario-tienda/internal/application/usecase"
	"github.com/jhoicas/inventario-tienda/internal/domain"
)

// StaffHandler maneja las peticiones HTTP para usuarios del personal.
// Todas sus rutas van detrás de RequireRole(admin).
type StaffHandler struct {
	uc *usecase.StaffUseCase
}

// NewStaffHandler construye el handler.
func NewStaffHandler(uc *usecase.StaffUseCase) *StaffHandler {
	return &StaffHandler{uc: uc}
}

// List godoc
// @Summary      Listar personal
// @Tags         staff
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StaffResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/staff [get]
func (h *StaffHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "no se pudo listar el personal"})
	}
	return c.JSON(out)
}

// Save godoc
// @Summary      Crear o actualizar usuario del personal
// @Description  Sin query id crea; con ?id= actualiza. En actualización,
//               password vacío conserva la contraseña actual.
// @Tags         staff
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    query  int  false  "ID del usuario a actualizar"
// @Param        body  body   dto.StaffRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.StaffResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/staff [post]
func (h *StaffHandler) Save(c *fiber.Ctx) error {
	var in dto.StaffRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}

	id := int64(c.QueryInt("id", 0))
	if id > 0 {
		out, err := h.uc.Update(id, in)
		if err != nil {
			return staffError(c, err)
		}
		return c.JSON(out)
	}

	out, err := h.uc.Create(in)
	if err != nil {
		return staffError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Borrar usuario del personal
// @Description  Se rehúsa (409) si el usuario registró asientos de stock.
// @Tags         staff
// @Security     Bearer
// @Produce      json
// @Param        id  query  int  true  "ID del usuario"
// @Success      200  {object}  map[string]bool
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/staff [delete]
func (h *StaffHandler) Delete(c *fiber.Ctx) error {
	id := int64(c.QueryInt("id", 0))
	if id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id es requerido"})
	}
	if err := h.uc.Delete(id); err != nil {
		return staffError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func staffError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "username, role_id y password (mínimo 8 caracteres) son requeridos"})
	case errors.Is(err, domain.ErrUsernameAlreadyUsed):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "el username ya está en uso"})
	case errors.Is(err, domain.ErrUserHasMovements):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "el usuario registró asientos de stock"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "usuario no encontrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "no se pudo procesar el usuario"})
	}
}
