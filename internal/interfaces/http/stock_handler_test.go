package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-tienda/internal/application/inventory"
	"github.com/jhoicas/inventario-tienda/internal/domain/entity"
	"github.com/jhoicas/inventario-tienda/internal/domain/repository"
	apphttp "github.com/jhoicas/inventario-tienda/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos para el ledger detrás del handler
// ──────────────────────────────────────────────────────────────────────────────

type stubItemRepo struct {
	item *entity.Item
}

func (r *stubItemRepo) Create(*entity.Item) error                { return nil }
func (r *stubItemRepo) GetByID(id int64) (*entity.Item, error)   { return r.get(id), nil }
func (r *stubItemRepo) Update(*entity.Item) error                { return nil }
func (r *stubItemRepo) List() ([]*entity.Item, error)            { return []*entity.Item{r.item}, nil }
func (r *stubItemRepo) GetForUpdate(id int64) (*entity.Item, error) { return r.get(id), nil }
func (r *stubItemRepo) UpdateStock(id int64, stock int64) error {
	if r.get(id) == nil {
		return nil
	}
	r.item.CurrentStock = stock
	return nil
}
func (r *stubItemRepo) CountMovements(int64) (int64, error) { return 0, nil }
func (r *stubItemRepo) Delete(int64) error                  { return nil }

func (r *stubItemRepo) get(id int64) *entity.Item {
	if r.item != nil && r.item.ID == id {
		cp := *r.item
		return &cp
	}
	return nil
}

type stubSupplierRepo struct{ supplier *entity.Supplier }

func (r *stubSupplierRepo) Create(*entity.Supplier) error { return nil }
func (r *stubSupplierRepo) GetByID(id int64) (*entity.Supplier, error) {
	if r.supplier != nil && r.supplier.ID == id {
		return r.supplier, nil
	}
	return nil, nil
}
func (r *stubSupplierRepo) Update(*entity.Supplier) error      { return nil }
func (r *stubSupplierRepo) List() ([]*entity.Supplier, error)  { return nil, nil }
func (r *stubSupplierRepo) CountStockIns(int64) (int64, error) { return 0, nil }
func (r *stubSupplierRepo) Delete(int64) error                 { return nil }

type stubUserRepo struct{}

func (stubUserRepo) Create(*entity.User) error                       { return nil }
func (stubUserRepo) GetByID(int64) (*entity.User, error)             { return nil, nil }
func (stubUserRepo) GetByUsername(string) (*entity.User, error)      { return nil, nil }
func (stubUserRepo) Update(*entity.User) error                       { return nil }
func (stubUserRepo) List() ([]*entity.User, error)                   { return nil, nil }
func (stubUserRepo) CountMovements(int64) (int64, error)             { return 0, nil }
func (stubUserRepo) Delete(int64) error                              { return nil }

type stubStockInRepo struct{ entries []*entity.StockIn }

func (r *stubStockInRepo) Create(e *entity.StockIn) error {
	e.ID = int64(len(r.entries) + 1)
	r.entries = append(r.entries, e)
	return nil
}
func (r *stubStockInRepo) List(int, int) ([]*entity.StockIn, error) { return r.entries, nil }

type stubStockOutRepo struct{ entries []*entity.StockOut }

func (r *stubStockOutRepo) Create(e *entity.StockOut) error {
	e.ID = int64(len(r.entries) + 1)
	r.entries = append(r.entries, e)
	return nil
}
func (r *stubStockOutRepo) List(int, int) ([]*entity.StockOut, error) { return r.entries, nil }

// passthroughTxRunner ejecuta fn directamente; el caso de uso corta antes de
// escribir cuando el stock es insuficiente, así que no hace falta rollback aquí.
type passthroughTxRunner struct {
	itemRepo     repository.ItemRepository
	stockInRepo  repository.StockInRepository
	stockOutRepo repository.StockOutRepository
}

func (tx *passthroughTxRunner) Run(_ context.Context, fn func(
	repository.ItemRepository,
	repository.StockInRepository,
	repository.StockOutRepository,
) error) error {
	return fn(tx.itemRepo, tx.stockInRepo, tx.stockOutRepo)
}

func buildStockApp(t *testing.T, initialStock int64) (*fiber.App, *stubItemRepo) {
	t.Helper()

	itemRepo := &stubItemRepo{item: &entity.Item{ID: 1, Name: "Azúcar 1kg", CurrentStock: initialStock}}
	supplierRepo := &stubSupplierRepo{supplier: &entity.Supplier{ID: 7, Name: "Mayorista Sur"}}
	stockInRepo := &stubStockInRepo{}
	stockOutRepo := &stubStockOutRepo{}
	tx := &passthroughTxRunner{itemRepo: itemRepo, stockInRepo: stockInRepo, stockOutRepo: stockOutRepo}

	uc := inventory.NewLedgerUseCase(tx, itemRepo, supplierRepo, stubUserRepo{}, stockInRepo, stockOutRepo)
	handler := apphttp.NewStockHandler(uc)

	app := fiber.New()
	// Emula los locals que dejaría AuthMiddleware
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(apphttp.LocalUserID, int64(3))
		c.Locals(apphttp.LocalUsername, "vendedor1")
		c.Locals(apphttp.LocalRole, "staff")
		return c.Next()
	})
	app.Post("/api/stock-in", handler.CreateStockIn)
	app.Post("/api/stock-out", handler.CreateStockOut)
	app.Get("/api/stock-in", handler.ListStockIns)
	app.Get("/api/stock-out", handler.ListStockOuts)
	return app, itemRepo
}

func postJSON(t *testing.T, app *fiber.App, path string, body map[string]any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestStockIn_Crea201YSubeContador(t *testing.T) {
	app, itemRepo := buildStockApp(t, 0)

	resp := postJSON(t, app, "/api/stock-in", map[string]any{
		"item_id":        1,
		"supplier_id":    7,
		"quantity":       10,
		"purchase_price": "2.50",
		"date_in":        "2026-02-01",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.EqualValues(t, 10, itemRepo.item.CurrentStock)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body["reference"], "el asiento debe llevar referencia")
	assert.EqualValues(t, 3, body["user_id"], "sin user_id en el body se usa el del token")
}

func TestStockOut_StockInsuficiente_Retorna400(t *testing.T) {
	app, itemRepo := buildStockApp(t, 5)

	resp := postJSON(t, app, "/api/stock-out", map[string]any{
		"item_id":       1,
		"quantity":      8,
		"selling_price": "3.90",
		"date_out":      "2026-02-01",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.EqualValues(t, 5, itemRepo.item.CurrentStock, "el contador no debe moverse")

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body["error"], "insuficiente")
}

func TestStockOut_Valida_Retorna201(t *testing.T) {
	app, itemRepo := buildStockApp(t, 5)

	resp := postJSON(t, app, "/api/stock-out", map[string]any{
		"item_id":       1,
		"quantity":      5,
		"selling_price": "3.90",
		"date_out":      "2026-02-01",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.EqualValues(t, 0, itemRepo.item.CurrentStock)
}

func TestStockIn_ItemInexistente_Retorna404(t *testing.T) {
	app, _ := buildStockApp(t, 0)

	resp := postJSON(t, app, "/api/stock-in", map[string]any{
		"item_id":        99,
		"supplier_id":    7,
		"quantity":       1,
		"purchase_price": "2.50",
		"date_in":        "2026-02-01",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStockIn_CantidadCero_Retorna400(t *testing.T) {
	app, _ := buildStockApp(t, 0)

	resp := postJSON(t, app, "/api/stock-in", map[string]any{
		"item_id":        1,
		"supplier_id":    7,
		"quantity":       0,
		"purchase_price": "2.50",
		"date_in":        "2026-02-01",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListStockIns_RespondePagina(t *testing.T) {
	app, _ := buildStockApp(t, 0)

	resp := postJSON(t, app, "/api/stock-in", map[string]any{
		"item_id":        1,
		"supplier_id":    7,
		"quantity":       2,
		"purchase_price": "2.50",
		"date_in":        "2026-02-01",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/api/stock-in?limit=10", nil)
	listResp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer listResp.Body.Close()

	assert.Equal(t, http.StatusOK, listResp.StatusCode)

	var body struct {
		Items []map[string]any `json:"items"`
		Page  map[string]int   `json:"page"`
	}
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&body))
	assert.Len(t, body.Items, 1)
	assert.Equal(t, 10, body.Page["limit"])
}
