package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-tienda/internal/application/auth"
	"github.com/jhoicas/inventario-tienda/internal/application/inventory"
	"github.com/jhoicas/inventario-tienda/internal/application/report"
	"github.com/jhoicas/inventario-tienda/internal/application/usecase"
	"github.com/jhoicas/inventario-tienda/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	CategoryUC *usecase.CategoryUseCase
	ItemUC     *usecase.ItemUseCase
	SupplierUC *usecase.SupplierUseCase
	StaffUC    *usecase.StaffUseCase
	LedgerUC   *inventory.LedgerUseCase
	ReportUC   *report.InventoryReportUseCase
	JWTSecret  string
}

// Router registra las rutas de la API. Creación/actualización/borrado usan
// POST/DELETE sobre la colección con ?id= en query.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Categorías
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	protected.Get("/categories", categoryHandler.List)
	protected.Post("/categories", categoryHandler.Save)
	protected.Delete("/categories", adminOnly, categoryHandler.Delete)

	// Items
	itemHandler := NewItemHandler(deps.ItemUC)
	protected.Get("/items", itemHandler.List)
	protected.Post("/items", itemHandler.Save)
	protected.Delete("/items", adminOnly, itemHandler.Delete)

	// Proveedores
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	protected.Get("/suppliers", supplierHandler.List)
	protected.Post("/suppliers", supplierHandler.Save)
	protected.Delete("/suppliers", adminOnly, supplierHandler.Delete)

	// Ledger de stock (asientos inmutables: solo alta y listado)
	stockHandler := NewStockHandler(deps.LedgerUC)
	protected.Get("/stock-in", stockHandler.ListStockIns)
	protected.Post("/stock-in", stockHandler.CreateStockIn)
	protected.Get("/stock-out", stockHandler.ListStockOuts)
	protected.Post("/stock-out", stockHandler.CreateStockOut)

	// Personal (solo admin)
	staffHandler := NewStaffHandler(deps.StaffUC)
	staff := protected.Group("/staff", adminOnly)
	staff.Get("/", staffHandler.List)
	staff.Post("/", staffHandler.Save)
	staff.Delete("/", staffHandler.Delete)

	// Reportes
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reports/inventory", reportHandler.Inventory)
}
