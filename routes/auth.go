package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authControllers "github.com/KevinStop/inventory-management-frontend/controllers/auth"
	sessionControllers "github.com/KevinStop/inventory-management-frontend/controllers/session"
	"github.com/KevinStop/inventory-management-frontend/middleware"
	"github.com/KevinStop/inventory-management-frontend/models"
)

// SetupAuthRoutes registers the entry pages and session endpoints.
func SetupAuthRoutes(r *gin.Engine, deps Deps) {
	// Signed-in users never see the entry pages again.
	entry := r.Group("/")
	entry.Use(middleware.RedirectIfAuthenticated(deps.Secret))
	{
		entry.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusFound, "/login")
		})
		entry.GET("/login", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "Inicie sesión para continuar"})
		})
		entry.POST("/login", authControllers.Login(deps.Client.Users))
		entry.POST("/register", authControllers.Register(deps.Client.Users))
		entry.POST("/forgot-password", authControllers.ForgotPassword(deps.Client.Users))
	}

	authed := r.Group("/")
	authed.Use(middleware.RequireAuth(deps.Secret))
	{
		authed.POST("/logout", authControllers.Logout(deps.Client.Users, deps.Cart))
		authed.GET("/me", authControllers.Me(deps.Client.Users))
		authed.POST("/extend-session", authControllers.ExtendSession(deps.Client.Users))
		authed.PUT("/profile", authControllers.UpdateProfile(deps.Client.Users))
		authed.GET("/ws/session", sessionControllers.ExpiryStream(deps.Client.Users))

		// Role-agnostic home: send each role to its landing view.
		authed.GET("/home", func(c *gin.Context) {
			role, _ := c.Get(middleware.ContextRole)
			c.Redirect(http.StatusFound, middleware.LandingPath(role.(models.Role)))
		})
	}
}
