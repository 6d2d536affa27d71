package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Despachos-api/internal/application/auth"
	"github.com/jhoicas/Despachos-api/internal/application/dashboard"
	"github.com/jhoicas/Despachos-api/internal/application/dispatching"
	"github.com/jhoicas/Despachos-api/internal/application/ledger"
	"github.com/jhoicas/Despachos-api/internal/application/usecase"
	"github.com/jhoicas/Despachos-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	MasterDataUC *usecase.MasterDataUseCase
	LedgerUC     *ledger.UseCase
	DispatchUC   *dispatching.DispatchUseCase
	RotationUC   *dispatching.RotationUseCase
	DashboardUC  *dashboard.UseCase
	JWTSecret    string
}

// Router registra las rutas de la API. El acceso por rol sigue la división de
// trabajo del dominio: el manager planifica despachos, el operador registra lo
// que entra y sale por la puerta del almacén, y el admin no tiene restricción.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login público, registro solo admin.
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register",
		AuthMiddleware(deps.JWTSecret),
		RequireRole(entity.RoleAdmin),
		authHandler.Register,
	)

	// Rutas protegidas (requieren Bearer Token).
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	managerOrAdmin := RequireRole(entity.RoleManager, entity.RoleAdmin)
	operatorOrAdmin := RequireRole(entity.RoleOperator, entity.RoleAdmin)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Datos maestros: lectura para todos los autenticados, alta solo admin.
	masterHandler := NewMasterDataHandler(deps.MasterDataUC)
	clients := protected.Group("/clients")
	clients.Get("/", masterHandler.ListClients)
	clients.Post("/", adminOnly, masterHandler.CreateClient)

	products := protected.Group("/products")
	products.Get("/", masterHandler.ListProducts)
	products.Post("/", adminOnly, masterHandler.CreateProduct)

	warehouses := protected.Group("/warehouses")
	warehouses.Get("/", masterHandler.ListWarehouses)
	warehouses.Post("/", adminOnly, masterHandler.CreateWarehouse)

	drivers := protected.Group("/drivers")
	drivers.Get("/", masterHandler.ListDrivers)
	drivers.Post("/", adminOnly, masterHandler.CreateDriver)

	// Stock: consultas para todos; entradas/salidas directas las registra el
	// operador de almacén.
	stockHandler := NewStockHandler(deps.LedgerUC)
	stock := protected.Group("/stock")
	stock.Get("/balance", stockHandler.GetBalance)
	stock.Get("/warehouses/:id/balances", stockHandler.ListWarehouseBalances)
	stock.Get("/movements", stockHandler.ListMovements)
	stock.Get("/movements/mine", operatorOrAdmin, stockHandler.MyMovements)
	stock.Post("/entries", operatorOrAdmin, stockHandler.DirectEntry)
	stock.Post("/exits", operatorOrAdmin, stockHandler.DirectExit)

	// Despachos: dominio del manager; el borrado queda para el admin.
	dispatchHandler := NewDispatchHandler(deps.DispatchUC, deps.RotationUC)
	dispatches := protected.Group("/dispatches")
	dispatches.Post("/", managerOrAdmin, dispatchHandler.Create)
	dispatches.Get("/", managerOrAdmin, dispatchHandler.List)
	dispatches.Get("/:id", managerOrAdmin, dispatchHandler.GetByID)
	dispatches.Post("/:id/cancel", managerOrAdmin, dispatchHandler.Cancel)
	dispatches.Post("/:id/rotations", managerOrAdmin, dispatchHandler.AddRotation)
	dispatches.Delete("/:id", adminOnly, dispatchHandler.Delete)

	// Rotaciones: la recepción es del operador de destino.
	rotationHandler := NewRotationHandler(deps.RotationUC)
	rotations := protected.Group("/rotations")
	rotations.Get("/pending", operatorOrAdmin, rotationHandler.Pending)
	rotations.Get("/:id", rotationHandler.GetByID)
	rotations.Post("/:id/receive", operatorOrAdmin, rotationHandler.Receive)

	// Tableros por rol.
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dash := protected.Group("/dashboard")
	dash.Get("/manager", managerOrAdmin, dashboardHandler.Manager)
	dash.Get("/operator", operatorOrAdmin, dashboardHandler.Operator)
}
