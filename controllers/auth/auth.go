package authControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KevinStop/inventory-management-frontend/cart"
	"github.com/KevinStop/inventory-management-frontend/controllers/respond"
	"github.com/KevinStop/inventory-management-frontend/middleware"
	"github.com/KevinStop/inventory-management-frontend/services"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /login
func Login(users *services.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user, token, err := users.Login(c.Request.Context(), input.Email, input.Password)
		if err != nil {
			respond.Error(c, err)
			return
		}

		// Re-issue the backend session cookie on the portal's domain.
		c.SetCookie(services.SessionCookie, token, 0, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{
			"user":    user,
			"landing": middleware.LandingPath(user.Role),
		})
	}
}

// POST /register
func Register(users *services.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := users.Register(c.Request.Context(), input); err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Registro exitoso"})
	}
}

// POST /logout clears both the backend session and the local cart, then
// drops the cookie. The cart is cleared even if the backend call fails, as
// the previous front end did.
func Logout(users *services.Users, cartStore *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := users.Logout(middleware.SessionContext(c)); err != nil {
			respond.Error(c, err)
			_ = cartStore.Clear()
			return
		}
		if err := cartStore.Clear(); err != nil {
			respond.Error(c, err)
			return
		}
		c.SetCookie(services.SessionCookie, "", -1, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"message": "Sesión cerrada"})
	}
}

// GET /user/me
func Me(users *services.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := users.Me(middleware.SessionContext(c))
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// POST /user/extend-session
func ExtendSession(users *services.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := users.ExtendSession(middleware.SessionContext(c)); err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Sesión extendida"})
	}
}

// POST /forgot-password
func ForgotPassword(users *services.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email string `json:"email" binding:"required,email"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := users.RequestPasswordReset(c.Request.Context(), input.Email); err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Revise su correo para continuar"})
	}
}

// PUT /user/profile
func UpdateProfile(users *services.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.UpdateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		user, err := users.Update(middleware.SessionContext(c), middleware.UserID(c), input)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
