package routes

import (
	"github.com/gin-gonic/gin"

	categoryControllers "github.com/KevinStop/inventory-management-frontend/controllers/category"
	componentControllers "github.com/KevinStop/inventory-management-frontend/controllers/component"
	movementControllers "github.com/KevinStop/inventory-management-frontend/controllers/movement"
	periodControllers "github.com/KevinStop/inventory-management-frontend/controllers/period"
	requestControllers "github.com/KevinStop/inventory-management-frontend/controllers/request"
	"github.com/KevinStop/inventory-management-frontend/middleware"
	"github.com/KevinStop/inventory-management-frontend/models"
)

// SetupAdminRoutes registers all "/admin/*" endpoints.
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAuth(deps.Secret), middleware.RequireRole(models.RoleAdmin))
	{
		// ──────────────── Component Catalog ────────────────
		adminGroup.GET("/components", componentControllers.AdminList(deps.Client.Components))
		adminGroup.POST("/components", componentControllers.Create(deps.Client.Components, deps.Client.Movements))
		adminGroup.PUT("/components/:id", componentControllers.Update(deps.Client.Components))
		adminGroup.DELETE("/components/:id", componentControllers.Delete(deps.Client.Components))

		// ──────────────── Categories ────────────────
		adminGroup.GET("/categories", categoryControllers.List(deps.Client.Categories))
		adminGroup.POST("/categories", categoryControllers.Create(deps.Client.Categories))
		adminGroup.PUT("/categories/:id", categoryControllers.Update(deps.Client.Categories))
		adminGroup.DELETE("/categories/:id", categoryControllers.Delete(deps.Client.Categories))

		// ──────────────── Request Lifecycle ────────────────
		adminGroup.GET("/requests", requestControllers.Active(deps.Client.Requests))
		adminGroup.GET("/requests/:id", requestControllers.AdminDetails(deps.Client.Requests))
		adminGroup.PUT("/requests/:id", requestControllers.Accept(deps.Lifecycle, deps.Client.Requests))
		adminGroup.POST("/requests/:id/reject", requestControllers.Reject(deps.Lifecycle, deps.Client.Requests))
		adminGroup.PUT("/requests/:id/finalize", requestControllers.Finalize(deps.Lifecycle, deps.Client.Requests))
		adminGroup.PUT("/requests/:id/not-returned", requestControllers.MarkNotReturned(deps.Lifecycle, deps.Client.Requests))
		adminGroup.PUT("/requests/:id/return-date", requestControllers.AdminExtend(deps.Lifecycle, deps.Client.Requests))
		adminGroup.GET("/loans", requestControllers.NotReturnedLoans(deps.Client.Requests))

		// ──────────────── Academic Periods ────────────────
		adminGroup.GET("/academic-periods", periodControllers.List(deps.Client.Periods))
		adminGroup.POST("/academic-periods", periodControllers.Create(deps.Client.Periods))
		adminGroup.PUT("/academic-periods/:id/activate", periodControllers.Activate(deps.Client.Periods))
		adminGroup.DELETE("/academic-periods/:id", periodControllers.Delete(deps.Client.Periods))

		// ──────────────── Stock Movements ────────────────
		adminGroup.GET("/movements", movementControllers.List(deps.Client.Movements))
		adminGroup.POST("/movements", movementControllers.Create(deps.Client.Movements))
	}
}
