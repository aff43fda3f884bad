package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-tienda/internal/application/dto"
	"github.com/jhoicas/inventario-tienda/internal/application/inventory"
	"github.com/jhoicas/inventario-tienda/internal/domain"
	"github.com/jhoicas/inventario-tienda/internal/domain/entity"
	"github.com/jhoicas/inventario-tienda/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeItemRepo struct {
	items  map[int64]*entity.Item
	nextID int64
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: map[int64]*entity.Item{}, nextID: 1}
}

func (r *fakeItemRepo) Create(item *entity.Item) error {
	item.ID = r.nextID
	r.nextID++
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeItemRepo) GetByID(id int64) (*entity.Item, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *fakeItemRepo) Update(item *entity.Item) error {
	if _, ok := r.items[item.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeItemRepo) List() ([]*entity.Item, error) {
	out := make([]*entity.Item, 0, len(r.items))
	for _, it := range r.items {
		cp := *it
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeItemRepo) GetForUpdate(id int64) (*entity.Item, error) { return r.GetByID(id) }

func (r *fakeItemRepo) UpdateStock(id int64, currentStock int64) error {
	it, ok := r.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	it.CurrentStock = currentStock
	return nil
}

func (r *fakeItemRepo) CountMovements(int64) (int64, error) { return 0, nil }
func (r *fakeItemRepo) Delete(id int64) error               { delete(r.items, id); return nil }

func (r *fakeItemRepo) snapshot() map[int64]*entity.Item {
	snap := make(map[int64]*entity.Item, len(r.items))
	for id, it := range r.items {
		cp := *it
		snap[id] = &cp
	}
	return snap
}

type fakeStockInRepo struct {
	entries []*entity.StockIn
	nextID  int64
}

func (r *fakeStockInRepo) Create(entry *entity.StockIn) error {
	r.nextID++
	entry.ID = r.nextID
	cp := *entry
	r.entries = append(r.entries, &cp)
	return nil
}

func (r *fakeStockInRepo) List(limit, offset int) ([]*entity.StockIn, error) {
	if offset >= len(r.entries) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.entries) {
		end = len(r.entries)
	}
	return r.entries[offset:end], nil
}

type fakeStockOutRepo struct {
	entries []*entity.StockOut
	nextID  int64
}

func (r *fakeStockOutRepo) Create(entry *entity.StockOut) error {
	r.nextID++
	entry.ID = r.nextID
	cp := *entry
	r.entries = append(r.entries, &cp)
	return nil
}

func (r *fakeStockOutRepo) List(limit, offset int) ([]*entity.StockOut, error) {
	if offset >= len(r.entries) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.entries) {
		end = len(r.entries)
	}
	return r.entries[offset:end], nil
}

type fakeSupplierRepo struct {
	suppliers map[int64]*entity.Supplier
}

func (r *fakeSupplierRepo) Create(s *entity.Supplier) error { r.suppliers[s.ID] = s; return nil }
func (r *fakeSupplierRepo) GetByID(id int64) (*entity.Supplier, error) {
	return r.suppliers[id], nil
}
func (r *fakeSupplierRepo) Update(*entity.Supplier) error          { return nil }
func (r *fakeSupplierRepo) List() ([]*entity.Supplier, error)      { return nil, nil }
func (r *fakeSupplierRepo) CountStockIns(int64) (int64, error)     { return 0, nil }
func (r *fakeSupplierRepo) Delete(int64) error                     { return nil }

type fakeUserRepo struct {
	users map[int64]*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error            { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) GetByID(id int64) (*entity.User, error) { return r.users[id], nil }
func (r *fakeUserRepo) GetByUsername(string) (*entity.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) Update(*entity.User) error          { return nil }
func (r *fakeUserRepo) List() ([]*entity.User, error)      { return nil, nil }
func (r *fakeUserRepo) CountMovements(int64) (int64, error) { return 0, nil }
func (r *fakeUserRepo) Delete(int64) error                 { return nil }

// fakeTxRunner emula la transacción: si fn retorna error, restaura el estado
// previo de los repos (el equivalente al Rollback).
type fakeTxRunner struct {
	itemRepo     *fakeItemRepo
	stockInRepo  *fakeStockInRepo
	stockOutRepo *fakeStockOutRepo
}

func (tx *fakeTxRunner) Run(_ context.Context, fn func(
	itemRepo repository.ItemRepository,
	stockInRepo repository.StockInRepository,
	stockOutRepo repository.StockOutRepository,
) error) error {
	itemSnap := tx.itemRepo.snapshot()
	inSnap := len(tx.stockInRepo.entries)
	outSnap := len(tx.stockOutRepo.entries)

	if err := fn(tx.itemRepo, tx.stockInRepo, tx.stockOutRepo); err != nil {
		tx.itemRepo.items = itemSnap
		tx.stockInRepo.entries = tx.stockInRepo.entries[:inSnap]
		tx.stockOutRepo.entries = tx.stockOutRepo.entries[:outSnap]
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Arnés
// ──────────────────────────────────────────────────────────────────────────────

type ledgerFixture struct {
	uc           *inventory.LedgerUseCase
	itemRepo     *fakeItemRepo
	stockInRepo  *fakeStockInRepo
	stockOutRepo *fakeStockOutRepo
	itemID       int64
	supplierID   int64
	userID       int64
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()

	itemRepo := newFakeItemRepo()
	item := &entity.Item{Name: "Arroz 500g", CategoryID: 1}
	require.NoError(t, itemRepo.Create(item))

	supplierRepo := &fakeSupplierRepo{suppliers: map[int64]*entity.Supplier{
		7: {ID: 7, Name: "Distribuidora Norte"},
	}}
	userRepo := &fakeUserRepo{users: map[int64]*entity.User{
		3: {ID: 3, Username: "vendedor1", Role: entity.RoleStaff},
	}}
	stockInRepo := &fakeStockInRepo{}
	stockOutRepo := &fakeStockOutRepo{}
	txRunner := &fakeTxRunner{itemRepo: itemRepo, stockInRepo: stockInRepo, stockOutRepo: stockOutRepo}

	return &ledgerFixture{
		uc:           inventory.NewLedgerUseCase(txRunner, itemRepo, supplierRepo, userRepo, stockInRepo, stockOutRepo),
		itemRepo:     itemRepo,
		stockInRepo:  stockInRepo,
		stockOutRepo: stockOutRepo,
		itemID:       item.ID,
		supplierID:   7,
		userID:       3,
	}
}

func (f *ledgerFixture) currentStock(t *testing.T) int64 {
	t.Helper()
	it, err := f.itemRepo.GetByID(f.itemID)
	require.NoError(t, err)
	require.NotNil(t, it)
	return it.CurrentStock
}

func (f *ledgerFixture) stockIn(qty int64) inventory.StockInInput {
	return inventory.StockInInput{
		ItemID:        f.itemID,
		SupplierID:    f.supplierID,
		Quantity:      qty,
		PurchasePrice: decimal.NewFromFloat(2.50),
		DateIn:        time.Now(),
		UserID:        f.userID,
	}
}

func (f *ledgerFixture) stockOut(qty int64) inventory.StockOutInput {
	return inventory.StockOutInput{
		ItemID:       f.itemID,
		Quantity:     qty,
		SellingPrice: decimal.NewFromFloat(3.90),
		DateOut:      time.Now(),
		UserID:       f.userID,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RecordStockIn
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordStockIn_IncrementaContador(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	entry, err := f.uc.RecordStockIn(ctx, f.stockIn(10))
	require.NoError(t, err)

	assert.NotEmpty(t, entry.Reference, "cada asiento debe llevar una referencia UUID")
	assert.EqualValues(t, 10, f.currentStock(t))
	assert.Len(t, f.stockInRepo.entries, 1)
}

func TestRecordStockIn_CantidadNoPositiva_Rechazada(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	for _, qty := range []int64{0, -5} {
		_, err := f.uc.RecordStockIn(ctx, f.stockIn(qty))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.EqualValues(t, 0, f.currentStock(t), "el contador no debe moverse")
	assert.Empty(t, f.stockInRepo.entries)
}

func TestRecordStockIn_PrecioNegativo_Rechazado(t *testing.T) {
	f := newLedgerFixture(t)
	in := f.stockIn(5)
	in.PurchasePrice = decimal.NewFromFloat(-1)

	_, err := f.uc.RecordStockIn(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecordStockIn_ProveedorInexistente(t *testing.T) {
	f := newLedgerFixture(t)
	in := f.stockIn(5)
	in.SupplierID = 999

	_, err := f.uc.RecordStockIn(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.stockInRepo.entries)
}

func TestRecordStockIn_ItemInexistente(t *testing.T) {
	f := newLedgerFixture(t)
	in := f.stockIn(5)
	in.ItemID = 999

	_, err := f.uc.RecordStockIn(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.stockInRepo.entries, "el rollback debe descartar el asiento")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RecordStockOut
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordStockOut_DescuentaContador(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	_, err := f.uc.RecordStockIn(ctx, f.stockIn(10))
	require.NoError(t, err)

	entry, err := f.uc.RecordStockOut(ctx, f.stockOut(4))
	require.NoError(t, err)

	assert.NotEmpty(t, entry.Reference)
	assert.EqualValues(t, 6, f.currentStock(t))
	assert.Len(t, f.stockOutRepo.entries, 1)
}

func TestRecordStockOut_StockInsuficiente_SinEfectoParcial(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	_, err := f.uc.RecordStockIn(ctx, f.stockIn(10))
	require.NoError(t, err)

	_, err = f.uc.RecordStockOut(ctx, f.stockOut(15))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Sin efecto parcial: ni asiento ni descuento del contador
	assert.EqualValues(t, 10, f.currentStock(t))
	assert.Empty(t, f.stockOutRepo.entries)
}

func TestRecordStockOut_SecuenciaCompleta(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	// 0 → +10 → −15 (rechazada) → −10 → 0
	_, err := f.uc.RecordStockIn(ctx, f.stockIn(10))
	require.NoError(t, err)

	_, err = f.uc.RecordStockOut(ctx, f.stockOut(15))
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	_, err = f.uc.RecordStockOut(ctx, f.stockOut(10))
	require.NoError(t, err)

	assert.EqualValues(t, 0, f.currentStock(t))
	assert.Len(t, f.stockInRepo.entries, 1)
	assert.Len(t, f.stockOutRepo.entries, 1)
}

func TestRecordStockOut_ItemInexistente(t *testing.T) {
	f := newLedgerFixture(t)
	out := f.stockOut(1)
	out.ItemID = 999

	_, err := f.uc.RecordStockOut(context.Background(), out)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests adaptadores HTTP → caso de uso
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordStockInFromRequest_FechaSimple(t *testing.T) {
	f := newLedgerFixture(t)

	resp, err := f.uc.RecordStockInFromRequest(context.Background(), f.userID, dto.StockInRequest{
		ItemID:        f.itemID,
		SupplierID:    f.supplierID,
		Quantity:      3,
		PurchasePrice: decimal.NewFromFloat(2.50),
		DateIn:        "2026-01-15",
	})
	require.NoError(t, err)

	assert.Equal(t, 2026, resp.DateIn.Year())
	assert.EqualValues(t, f.userID, resp.UserID, "sin user_id en el body se usa el del token")
	assert.EqualValues(t, 3, f.currentStock(t))
}

func TestRecordStockInFromRequest_FechaInvalida(t *testing.T) {
	f := newLedgerFixture(t)

	_, err := f.uc.RecordStockInFromRequest(context.Background(), f.userID, dto.StockInRequest{
		ItemID:        f.itemID,
		SupplierID:    f.supplierID,
		Quantity:      3,
		PurchasePrice: decimal.NewFromFloat(2.50),
		DateIn:        "15/01/2026",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecordStockOutFromRequest_UsuarioDelBodyInexistente(t *testing.T) {
	f := newLedgerFixture(t)
	_, err := f.uc.RecordStockIn(context.Background(), f.stockIn(5))
	require.NoError(t, err)

	_, err = f.uc.RecordStockOutFromRequest(context.Background(), f.userID, dto.StockOutRequest{
		ItemID:       f.itemID,
		Quantity:     1,
		SellingPrice: decimal.NewFromFloat(3.90),
		DateOut:      "2026-01-15",
		UserID:       999,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualValues(t, 5, f.currentStock(t))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests listados
// ──────────────────────────────────────────────────────────────────────────────

func TestListStockIns_Paginado(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := f.uc.RecordStockIn(ctx, f.stockIn(1))
		require.NoError(t, err)
	}

	page1, err := f.uc.ListStockIns(2, 0)
	require.NoError(t, err)
	assert.Len(t, page1, 2)

	page3, err := f.uc.ListStockIns(2, 4)
	require.NoError(t, err)
	assert.Len(t, page3, 1)
}
