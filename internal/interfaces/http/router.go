package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/NikoNepomuceno/AcadKeeper/internal/application/auth"
	"github.com/NikoNepomuceno/AcadKeeper/internal/application/ledger"
	"github.com/NikoNepomuceno/AcadKeeper/internal/application/stockout"
	"github.com/NikoNepomuceno/AcadKeeper/internal/application/usecase"
	"github.com/NikoNepomuceno/AcadKeeper/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	LedgerUC    *ledger.UseCase
	StockoutUC  *stockout.UseCase
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	DashboardUC *usecase.DashboardUseCase
	JWTSecret   string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Protected routes (Bearer token required)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	anyRole := RequireRole(entity.RoleSuperAdmin, entity.RoleAdmin, entity.RoleStaff)
	adminUp := RequireRole(entity.RoleSuperAdmin, entity.RoleAdmin)
	superOnly := RequireRole(entity.RoleSuperAdmin)

	// Items and activity log
	inventoryHandler := NewInventoryHandler(deps.LedgerUC)
	items := protected.Group("/items")
	items.Get("/", anyRole, inventoryHandler.List)
	items.Post("/", adminUp, inventoryHandler.Create)
	items.Get("/:id", anyRole, inventoryHandler.GetByID)
	items.Put("/:id", adminUp, inventoryHandler.Update)
	items.Post("/:id/archive", adminUp, inventoryHandler.Archive)
	items.Post("/:id/adjust", adminUp, inventoryHandler.Adjust)
	protected.Get("/logs", anyRole, inventoryHandler.Logs)

	// Stock-out workflow
	stockoutHandler := NewStockoutHandler(deps.StockoutUC)
	so := protected.Group("/stockout")
	so.Post("/requests", anyRole, stockoutHandler.Submit)
	so.Get("/requests/pending", adminUp, stockoutHandler.ListPending)
	so.Get("/requests/pending/count", anyRole, stockoutHandler.PendingCount)
	so.Post("/requests/:id/approve", adminUp, stockoutHandler.Approve)
	so.Post("/requests/:id/deny", adminUp, stockoutHandler.Deny)
	so.Get("/activity", anyRole, stockoutHandler.Activity)

	// User administration (superAdmin)
	userHandler := NewUserHandler(deps.UserUC)
	users := protected.Group("/users", superOnly)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Post("/:id/role", userHandler.UpdateRole)
	users.Post("/:id/status", userHandler.UpdateStatus)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/stats", anyRole, dashboardHandler.Stats)
}
