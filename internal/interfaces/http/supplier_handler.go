package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-tienda/internal/application/dto"
	"github.com/jhoicas/inventario-tienda/internal/application/usecase"
	"github.com/jhoicas/inventario-tienda/internal/domain"
)

// SupplierHandler maneja las peticiones HTTP para proveedores.
type SupplierHandler struct {
	uc *usecase.SupplierUseCase
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(uc *usecase.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

// List godoc
// @Summary      Listar proveedores
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SupplierResponse
// @Router       /api/suppliers [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "no se pudieron listar los proveedores"})
	}
	return c.JSON(out)
}

// Save godoc
// @Summary      Crear o actualizar proveedor
// @Description  Sin query id crea; con ?id= actualiza.
// @Tags         suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    query  int  false  "ID del proveedor a actualizar"
// @Param        body  body   dto.SupplierRequest  true  "Datos del proveedor"
// @Success      201   {object}  dto.SupplierResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/suppliers [post]
func (h *SupplierHandler) Save(c *fiber.Ctx) error {
	var in dto.SupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}

	id := int64(c.QueryInt("id", 0))
	if id > 0 {
		out, err := h.uc.Update(id, in)
		if err != nil {
			return supplierError(c, err)
		}
		return c.JSON(out)
	}

	out, err := h.uc.Create(in)
	if err != nil {
		return supplierError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Borrar proveedor
// @Description  Se rehúsa (409) si el proveedor tiene entradas de stock asociadas.
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Param        id  query  int  true  "ID del proveedor"
// @Success      200  {object}  map[string]bool
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/suppliers [delete]
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	id := int64(c.QueryInt("id", 0))
	if id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id es requerido"})
	}
	if err := h.uc.Delete(id); err != nil {
		return supplierError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func supplierError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "supplier_name es requerido"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "proveedor no encontrado"})
	case errors.Is(err, domain.ErrSupplierInUse):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "el proveedor tiene entradas de stock asociadas"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "no se pudo procesar el proveedor"})
	}
}
