package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-tienda/internal/application/dto"
	"github.com/jhoicas/inventario-tienda/internal/application/usecase"
	"github.com/jhoicas/inventario-tienda/internal/domain"
)

// ItemHandler maneja las peticiones HTTP para items.
type ItemHandler struct {
	uc *usecase.ItemUseCase
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// List godoc
// @Summary      Listar items con su categoría
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ItemResponse
// @Router       /api/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "no se pudieron listar los items"})
	}
	return c.JSON(out)
}

// Save godoc
// @Summary      Crear o actualizar item
// @Description  Sin query id crea (stock inicia en 0); con ?id= actualiza.
//               current_stock del body se ignora: solo lo mutan los asientos de stock.
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    query  int  false  "ID del item a actualizar"
// @Param        body  body   dto.ItemRequest  true  "Datos del item"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *ItemHandler) Save(c *fiber.Ctx) error {
	var in dto.ItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}

	id := int64(c.QueryInt("id", 0))
	if id > 0 {
		out, err := h.uc.Update(id, in)
		if err != nil {
			return itemError(c, err)
		}
		return c.JSON(out)
	}

	out, err := h.uc.Create(in)
	if err != nil {
		return itemError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Borrar item
// @Description  Se rehúsa (409) si el item tiene asientos de stock asociados.
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        id  query  int  true  "ID del item"
// @Success      200  {object}  map[string]bool
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/items [delete]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	id := int64(c.QueryInt("id", 0))
	if id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id es requerido"})
	}
	if err := h.uc.Delete(id); err != nil {
		return itemError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func itemError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "item_name y category_id son requeridos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "item o categoría no encontrados"})
	case errors.Is(err, domain.ErrItemInUse):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "el item tiene movimientos de stock asociados"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "no se pudo procesar el item"})
	}
}
