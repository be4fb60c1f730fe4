package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acamargo/almacen-api/internal/application/auth"
	"github.com/acamargo/almacen-api/internal/application/orders"
	"github.com/acamargo/almacen-api/internal/application/usecase"
	"github.com/acamargo/almacen-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	OrderUC     *orders.UseCase
	ProductUC   *usecase.ProductUseCase
	CategoryUC  *usecase.CategoryUseCase
	InventoryUC *usecase.InventoryUseCase
	StatsUC     *usecase.StatisticsUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	adminOnly := RequireRole(entity.RoleAdmin)
	warehouse := RequireRole(entity.RoleAdmin, entity.RoleBodeguero)

	// Categories (protegido; escritura solo admin)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.Children)
	categories.Get("/tree", categoryHandler.Tree)
	categories.Get("/enabled-tree", categoryHandler.EnabledTree)
	categories.Get("/search", categoryHandler.Search)
	categories.Get("/:id/children", categoryHandler.ChildrenOf)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", adminOnly, categoryHandler.Create)
	categories.Put("/:id", adminOnly, categoryHandler.Update)
	categories.Patch("/:id/status", adminOnly, categoryHandler.UpdateStatus)
	categories.Delete("/:id", adminOnly, categoryHandler.Delete)

	// Products (protegido; escritura solo admin)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.StatsUC)
	products.Get("/", productHandler.List)
	products.Get("/search", productHandler.Search)
	products.Get("/low-stock", inventoryHandler.ListLowStock)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", adminOnly, productHandler.Create)
	products.Put("/:id", adminOnly, productHandler.Update)
	products.Patch("/:id/status", adminOnly, productHandler.UpdateStatus)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Inbound / Outbound (protegido; aprobación y anulación para bodega)
	inboundHandler := NewInboundHandler(deps.OrderUC)
	registerOrderRoutes(protected.Group("/inbound"), inboundHandler, inboundHandler.CreateInbound, warehouse)
	outboundHandler := NewOutboundHandler(deps.OrderUC)
	registerOrderRoutes(protected.Group("/outbound"), outboundHandler, outboundHandler.CreateOutbound, warehouse)

	// Inventory (protegido; ajustes manuales para bodega)
	invGroup := protected.Group("/inventory")
	invGroup.Get("/", inventoryHandler.List)
	invGroup.Get("/low-stock", inventoryHandler.ListLowStock)
	invGroup.Get("/summary", inventoryHandler.Summary)
	invGroup.Patch("/:id/adjust", warehouse, inventoryHandler.Adjust)

	// Statistics (protegido)
	stats := protected.Group("/statistics")
	statsHandler := NewStatisticsHandler(deps.StatsUC)
	stats.Get("/dashboard", statsHandler.Dashboard)
	stats.Get("/trend", statsHandler.Trend)
	stats.Get("/category-distribution", statsHandler.CategoryDistribution)
	stats.Get("/inventory/pdf", statsHandler.InventoryPDF)
}

// registerOrderRoutes monta el CRUD de documentos más las transiciones de
// estado. Crear, modificar y consultar queda abierto a cualquier usuario
// autenticado; aprobar, anular y borrar exige rol de bodega.
func registerOrderRoutes(g fiber.Router, h *OrderHandler, create fiber.Handler, warehouse fiber.Handler) {
	g.Post("/", create)
	g.Get("/", h.List)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", warehouse, h.Delete)
	g.Patch("/:id/approve", warehouse, h.Approve)
	g.Patch("/:id/void", warehouse, h.Void)
}
