package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-tienda/internal/domain/entity"
	"github.com/jhoicas/inventario-tienda/internal/domain/repository"
)

// Row es una fila del reporte de inventario valorizado.
type Row struct {
	ItemName      string
	CategoryName  string
	CurrentStock  int64
	PurchasePrice decimal.Decimal
	SellingPrice  decimal.Decimal
	StockValue    decimal.Decimal // CurrentStock * PurchasePrice
}

// Summary totales del reporte.
type Summary struct {
	StoreName   string
	GeneratedAt time.Time
	TotalItems  int
	TotalUnits  int64
	TotalValue  decimal.Decimal
}

// PDFGenerator es el puerto de generación del documento (lo implementa
// infrastructure/pdf con Maroto).
type PDFGenerator interface {
	GenerateInventoryReport(ctx context.Context, summary Summary, rows []Row) ([]byte, error)
}

// InventoryReportUseCase arma el reporte de inventario valorizado a precio de
// compra y delega el render al generador PDF.
type InventoryReportUseCase struct {
	itemRepo  repository.ItemRepository
	generator PDFGenerator
	storeName string
}

// NewInventoryReportUseCase construye el caso de uso.
func NewInventoryReportUseCase(itemRepo repository.ItemRepository, generator PDFGenerator, storeName string) *InventoryReportUseCase {
	return &InventoryReportUseCase{itemRepo: itemRepo, generator: generator, storeName: storeName}
}

// GeneratePDF genera el PDF del inventario completo.
func (uc *InventoryReportUseCase) GeneratePDF(ctx context.Context) ([]byte, error) {
	items, err := uc.itemRepo.List()
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(items))
	var totalUnits int64
	totalValue := decimal.Zero
	for _, it := range items {
		rows = append(rows, toRow(it))
		totalUnits += it.CurrentStock
		totalValue = totalValue.Add(stockValue(it))
	}

	summary := Summary{
		StoreName:   uc.storeName,
		GeneratedAt: time.Now(),
		TotalItems:  len(items),
		TotalUnits:  totalUnits,
		TotalValue:  totalValue,
	}
	return uc.generator.GenerateInventoryReport(ctx, summary, rows)
}

func toRow(it *entity.Item) Row {
	return Row{
		ItemName:      it.Name,
		CategoryName:  it.CategoryName,
		CurrentStock:  it.CurrentStock,
		PurchasePrice: it.PurchasePrice,
		SellingPrice:  it.SellingPrice,
		StockValue:    stockValue(it),
	}
}

func stockValue(it *entity.Item) decimal.Decimal {
	return it.PurchasePrice.Mul(decimal.NewFromInt(it.CurrentStock))
}
