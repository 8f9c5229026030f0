package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/KevinStop/inventory-management-frontend/controllers/cart"
	categoryControllers "github.com/KevinStop/inventory-management-frontend/controllers/category"
	componentControllers "github.com/KevinStop/inventory-management-frontend/controllers/component"
	requestControllers "github.com/KevinStop/inventory-management-frontend/controllers/request"
	"github.com/KevinStop/inventory-management-frontend/middleware"
	"github.com/KevinStop/inventory-management-frontend/models"
)

// SetupUserRoutes registers all "/user/*" endpoints.
func SetupUserRoutes(r *gin.Engine, deps Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.RequireAuth(deps.Secret), middleware.RequireRole(models.RoleUser))
	{
		// ──────────────── Browse Catalog ────────────────
		userGroup.GET("/components", componentControllers.Browse(deps.Client.Components))
		userGroup.GET("/components/:id", componentControllers.Get(deps.Client.Components))
		userGroup.GET("/categories", categoryControllers.List(deps.Client.Categories))

		// ──────────────── Selection Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCart(deps.Cart))
			cartGroup.GET("/count", cartControllers.GetCount(deps.Cart))
			cartGroup.POST("", cartControllers.AddItem(deps.Cart, deps.Client.Components))
			cartGroup.PUT("/:component_id", cartControllers.UpdateItem(deps.Cart))
			cartGroup.DELETE("/:component_id", cartControllers.RemoveItem(deps.Cart))
			cartGroup.DELETE("", cartControllers.ClearCart(deps.Cart))
		}

		// ──────────────── Loan Requests ────────────────
		userGroup.POST("/requests", requestControllers.Submit(deps.Cart, deps.Client.Requests))
		userGroup.GET("/requests", requestControllers.MyRequests(deps.Client.Requests))
		userGroup.GET("/requests/:id", requestControllers.Details(deps.Client.Requests))
		userGroup.DELETE("/requests/:id", requestControllers.Cancel(deps.Lifecycle, deps.Client.Requests))
		userGroup.PUT("/requests/:id/return-date", requestControllers.ExtendReturnDate(deps.Lifecycle, deps.Client.Requests))
	}
}
