package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-tienda/internal/domain"
	"github.com/jhoicas/inventario-tienda/internal/domain/entity"
	"github.com/jhoicas/inventario-tienda/internal/domain/repository"
)

// LedgerUseCase aplica movimientos de stock al contador de cada item con
// chequeos de integridad, de forma transaccional y con bloqueo de fila
// (SELECT FOR UPDATE). Dos salidas concurrentes sobre el mismo item no pueden
// pasar ambas el chequeo de suficiencia: la segunda espera el lock y ve el
// contador ya descontado.
type LedgerUseCase struct {
	txRunner     TxRunner
	itemRepo     repository.ItemRepository
	supplierRepo repository.SupplierRepository
	userRepo     repository.UserRepository
	stockInRepo  repository.StockInRepository
	stockOutRepo repository.StockOutRepository
}

// NewLedgerUseCase construye el caso de uso del ledger.
func NewLedgerUseCase(
	txRunner TxRunner,
	itemRepo repository.ItemRepository,
	supplierRepo repository.SupplierRepository,
	userRepo repository.UserRepository,
	stockInRepo repository.StockInRepository,
	stockOutRepo repository.StockOutRepository,
) *LedgerUseCase {
	return &LedgerUseCase{
		txRunner:     txRunner,
		itemRepo:     itemRepo,
		supplierRepo: supplierRepo,
		userRepo:     userRepo,
		stockInRepo:  stockInRepo,
		stockOutRepo: stockOutRepo,
	}
}

// StockInInput entrada para registrar una entrada de mercancía.
type StockInInput struct {
	ItemID        int64
	SupplierID    int64
	Quantity      int64
	PurchasePrice decimal.Decimal
	DateIn        time.Time
	UserID        int64
}

// StockOutInput entrada para registrar una salida de mercancía.
type StockOutInput struct {
	ItemID       int64
	Quantity     int64
	SellingPrice decimal.Decimal
	DateOut      time.Time
	UserID       int64
}

// RecordStockIn registra un asiento de entrada e incrementa current_stock.
// Precondiciones: Quantity > 0; item y proveedor existentes.
// Asiento y contador se escriben en la misma transacción.
func (uc *LedgerUseCase) RecordStockIn(ctx context.Context, input StockInInput) (*entity.StockIn, error) {
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if input.PurchasePrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.supplierRepo.GetByID(input.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	entry := &entity.StockIn{
		Reference:     uuid.New().String(),
		ItemID:        input.ItemID,
		SupplierID:    input.SupplierID,
		Quantity:      input.Quantity,
		PurchasePrice: input.PurchasePrice,
		DateIn:        input.DateIn,
		UserID:        input.UserID,
		CreatedAt:     now,
	}

	err = uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		stockInRepo repository.StockInRepository,
		_ repository.StockOutRepository,
	) error {
		// Bloquea la fila del item para que el contador no sufra lost updates
		item, err := itemRepo.GetForUpdate(input.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if err := stockInRepo.Create(entry); err != nil {
			return err
		}
		return itemRepo.UpdateStock(item.ID, item.CurrentStock+input.Quantity)
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// RecordStockOut registra un asiento de salida y decrementa current_stock.
// Precondiciones: Quantity > 0; current_stock >= Quantity. Si el stock es
// insuficiente retorna ErrInsufficientStock sin efecto parcial: el Rollback
// de la transacción descarta el asiento y el contador queda intacto.
func (uc *LedgerUseCase) RecordStockOut(ctx context.Context, input StockOutInput) (*entity.StockOut, error) {
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if input.SellingPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	entry := &entity.StockOut{
		Reference:    uuid.New().String(),
		ItemID:       input.ItemID,
		Quantity:     input.Quantity,
		SellingPrice: input.SellingPrice,
		DateOut:      input.DateOut,
		UserID:       input.UserID,
		CreatedAt:    now,
	}

	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		_ repository.StockInRepository,
		stockOutRepo repository.StockOutRepository,
	) error {
		// Bloquea la fila: el chequeo de suficiencia y la resta son atómicos
		item, err := itemRepo.GetForUpdate(input.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if item.CurrentStock < input.Quantity {
			return domain.ErrInsufficientStock
		}
		if err := stockOutRepo.Create(entry); err != nil {
			return err
		}
		return itemRepo.UpdateStock(item.ID, item.CurrentStock-input.Quantity)
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// ListStockIns lista asientos de entrada (date_in DESC) con paginación.
func (uc *LedgerUseCase) ListStockIns(limit, offset int) ([]*entity.StockIn, error) {
	return uc.stockInRepo.List(limit, offset)
}

// ListStockOuts lista asientos de salida (date_out DESC) con paginación.
func (uc *LedgerUseCase) ListStockOuts(limit, offset int) ([]*entity.StockOut, error) {
	return uc.stockOutRepo.List(limit, offset)
}
