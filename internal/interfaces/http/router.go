package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cafeteria-api/internal/application/auth"
	"github.com/jhoicas/Cafeteria-api/internal/application/inventory"
	"github.com/jhoicas/Cafeteria-api/internal/application/order"
	"github.com/jhoicas/Cafeteria-api/internal/application/report"
	"github.com/jhoicas/Cafeteria-api/internal/application/usecase"
	"github.com/jhoicas/Cafeteria-api/internal/domain/entity"
	"github.com/jhoicas/Cafeteria-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CreateOrder *order.CreateOrderUseCase
	OrderStatus *order.StatusUseCase
	OrderQuery  *order.QueryUseCase
	Ledger      *inventory.LedgerUseCase
	Reports     *report.SalesReportUseCase
	ProductUC   *usecase.ProductUseCase
	UserUC      *usecase.UserUseCase
	JWTSecret   string
	Log         *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, log.Component("auth"))
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	// Pedidos
	orderHandler := NewOrderHandler(deps.CreateOrder, deps.OrderStatus, deps.OrderQuery, log.Component("pedidos"))
	orders := protected.Group("/pedidos")
	orders.Get("/", orderHandler.List)
	orders.Get("/activos", orderHandler.Active)
	orders.Post("/", RequireRole(entity.RoleAdmin, entity.RoleBarista), orderHandler.Create)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Patch("/:id/estado", RequireRole(entity.RoleAdmin, entity.RoleBarista, entity.RoleCocina), orderHandler.UpdateStatus)

	// Inventario
	inventoryHandler := NewInventoryHandler(deps.Ledger, log.Component("inventario"))
	inv := protected.Group("/inventario")
	inv.Get("/", inventoryHandler.List)
	inv.Get("/alertas", inventoryHandler.Alerts)
	inv.Get("/:id", inventoryHandler.GetByID)
	inv.Get("/:id/movimientos", inventoryHandler.Movements)
	inv.Post("/:id/movimientos", RequireRole(entity.RoleAdmin, entity.RoleBarista), inventoryHandler.RegisterMovement)

	// Productos
	productHandler := NewProductHandler(deps.ProductUC, log.Component("productos"))
	products := protected.Group("/productos")
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", RequireRole(entity.RoleAdmin), productHandler.Create)
	products.Put("/:id", RequireRole(entity.RoleAdmin), productHandler.Update)
	products.Patch("/:id", RequireRole(entity.RoleAdmin), productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleAdmin), productHandler.Delete)

	// Usuarios (admin; cambio de contraseña también el propio usuario)
	userHandler := NewUserHandler(deps.UserUC, log.Component("usuarios"))
	users := protected.Group("/usuarios")
	admin := RequireRole(entity.RoleAdmin)
	users.Get("/", admin, userHandler.List)
	users.Get("/:id", admin, userHandler.GetByID)
	users.Post("/", admin, userHandler.Create)
	users.Put("/:id", admin, userHandler.Update)
	users.Patch("/:id/password", userHandler.ChangePassword)
	users.Patch("/:id/desactivar", admin, userHandler.SetActive)

	// Reportes (cualquier usuario autenticado)
	reportHandler := NewReportHandler(deps.Reports, log.Component("reportes"))
	reports := protected.Group("/reportes")
	reports.Get("/ventas-diarias", reportHandler.Daily)
	reports.Get("/ventas-diarias/pdf", reportHandler.DailyPDF)
	reports.Get("/ventas-periodo", reportHandler.Period)
}
