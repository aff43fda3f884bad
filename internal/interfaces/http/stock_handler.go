package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-tienda/internal/application/dto"
	"github.com/jhoicas/inventario-tienda/internal/application/inventory"
	"github.com/jhoicas/inventario-tienda/internal/domain"
	"github.com/jhoicas/inventario-tienda/internal/domain/entity"
)

// StockHandler maneja los asientos de entrada y salida del ledger de stock.
type StockHandler struct {
	uc *inventory.LedgerUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *inventory.LedgerUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// CreateStockIn godoc
// @Summary      Registrar entrada de mercancía
// @Description  Crea el asiento e incrementa el stock del item en la misma transacción.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockInRequest  true  "Datos de la entrada"
// @Success      201   {object}  dto.StockInResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock-in [post]
func (h *StockHandler) CreateStockIn(c *fiber.Ctx) error {
	var in dto.StockInRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.RecordStockInFromRequest(c.Context(), GetUserID(c), in)
	if err != nil {
		return stockError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateStockOut godoc
// @Summary      Registrar salida de mercancía
// @Description  Crea el asiento y decrementa el stock del item. Si el stock es
//               insuficiente responde 400 y no deja efecto parcial.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockOutRequest  true  "Datos de la salida"
// @Success      201   {object}  dto.StockOutResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock-out [post]
func (h *StockHandler) CreateStockOut(c *fiber.Ctx) error {
	var in dto.StockOutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.RecordStockOutFromRequest(c.Context(), GetUserID(c), in)
	if err != nil {
		return stockError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListStockIns godoc
// @Summary      Listar entradas de mercancía
// @Description  Ordenadas por date_in descendente, con limit/offset.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Máximo de asientos (default 50, máx 200)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.StockInListResponse
// @Router       /api/stock-in [get]
func (h *StockHandler) ListStockIns(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	list, err := h.uc.ListStockIns(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "no se pudieron listar las entradas"})
	}
	items := make([]dto.StockInResponse, 0, len(list))
	for _, e := range list {
		items = append(items, toStockInResponse(e))
	}
	return c.JSON(dto.StockInListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	})
}

// ListStockOuts godoc
// @Summary      Listar salidas de mercancía
// @Description  Ordenadas por date_out descendente, con limit/offset.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Máximo de asientos (default 50, máx 200)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.StockOutListResponse
// @Router       /api/stock-out [get]
func (h *StockHandler) ListStockOuts(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	list, err := h.uc.ListStockOuts(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "no se pudieron listar las salidas"})
	}
	items := make([]dto.StockOutResponse, 0, len(list))
	for _, e := range list {
		items = append(items, toStockOutResponse(e))
	}
	return c.JSON(dto.StockOutListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	})
}

func pageFromQuery(c *fiber.Ctx) dto.PageRequest {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 0),
		Offset: c.QueryInt("offset", 0),
	}
	page.DefaultPage()
	return page
}

func toStockInResponse(e *entity.StockIn) dto.StockInResponse {
	return dto.StockInResponse{
		StockInID:     e.ID,
		Reference:     e.Reference,
		ItemID:        e.ItemID,
		ItemName:      e.ItemName,
		SupplierID:    e.SupplierID,
		SupplierName:  e.SupplierName,
		Quantity:      e.Quantity,
		PurchasePrice: e.PurchasePrice,
		DateIn:        e.DateIn,
		UserID:        e.UserID,
		Username:      e.Username,
		CreatedAt:     e.CreatedAt,
	}
}

func toStockOutResponse(e *entity.StockOut) dto.StockOutResponse {
	return dto.StockOutResponse{
		StockOutID:   e.ID,
		Reference:    e.Reference,
		ItemID:       e.ItemID,
		ItemName:     e.ItemName,
		Quantity:     e.Quantity,
		SellingPrice: e.SellingPrice,
		DateOut:      e.DateOut,
		UserID:       e.UserID,
		Username:     e.Username,
		CreatedAt:    e.CreatedAt,
	}
}

func stockError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "stock insuficiente para la salida"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "datos del asiento inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "item, proveedor o usuario no encontrados"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "no se pudo registrar el asiento"})
	}
}
