package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/drafza/pos-api/internal/application/auth"
	"github.com/drafza/pos-api/internal/application/catalog"
	"github.com/drafza/pos-api/internal/application/inventory"
	"github.com/drafza/pos-api/internal/application/sales"
	"github.com/drafza/pos-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CatalogUC   *catalog.CatalogUseCase
	InventoryUC *inventory.InventoryUseCase
	SalesUC     *sales.SaleUseCase
	Receipt     ReceiptGenerator
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo (protegido). /types va antes de /:id para que Fiber no lo
	// capture como parámetro.
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.CatalogUC)
	products.Get("/types", productHandler.ListTypes)
	products.Post("/types", productHandler.AddType)
	products.Delete("/types/:id", productHandler.DeleteType)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Inventario de la ubicación del token (protegido)
	inv := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inv.Get("/", inventoryHandler.List)
	inv.Get("/summary", inventoryHandler.Summary)
	inv.Get("/low-stock", inventoryHandler.LowStock)
	inv.Get("/out-of-stock", inventoryHandler.OutOfStock)
	inv.Post("/bulk-update", inventoryHandler.BulkUpdate)
	inv.Put("/:productId", inventoryHandler.SetStock)

	// Ventas y reportes (protegido)
	salesGroup := protected.Group("/sales")
	salesHandler := NewSalesHandler(deps.SalesUC, deps.Receipt)
	salesGroup.Get("/reports/summary", salesHandler.Summary)
	salesGroup.Get("/reports/today", salesHandler.Today)
	salesGroup.Post("/", salesHandler.Create)
	salesGroup.Get("/", salesHandler.List)
	salesGroup.Get("/:id", salesHandler.GetByID)
	salesGroup.Get("/:id/receipt", salesHandler.Receipt)
	// La anulación restaura stock: sólo admin.
	salesGroup.Delete("/:id", RequireRole(entity.RoleAdmin), salesHandler.Void)
}
