package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/KevinStop/inventory-management-frontend/cart"
	"github.com/KevinStop/inventory-management-frontend/lifecycle"
	"github.com/KevinStop/inventory-management-frontend/services"
)

// Deps carries everything the route groups wire together: the backend
// clients, the local cart store, the lifecycle controller and the session
// secret used to read the cookie.
type Deps struct {
	Client    *services.Client
	Cart      *cart.Store
	Lifecycle *lifecycle.Controller
	Secret    []byte
}

// SetupRoutes is the single entry point that wires up the public, user and
// admin route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	// Public pages and auth endpoints (no session required)
	SetupAuthRoutes(r, deps)

	// User area (session required, role user)
	SetupUserRoutes(r, deps)

	// Admin area (session required, role admin)
	SetupAdminRoutes(r, deps)
}
