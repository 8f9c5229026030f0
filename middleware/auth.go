package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/KevinStop/inventory-management-frontend/models"
	"github.com/KevinStop/inventory-management-frontend/services"
)

// Context keys set by RequireAuth for downstream handlers.
const (
	ContextUserID = "user_id"
	ContextRole   = "role"
	ContextToken  = "session_token"
)

// SessionClaims is the payload of the backend-issued session cookie.
type SessionClaims struct {
	UserID int    `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func parseSession(c *gin.Context, secret []byte) (*SessionClaims, string, bool) {
	cookie, err := c.Cookie(services.SessionCookie)
	if err != nil || cookie == "" {
		return nil, "", false
	}

	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(cookie, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid || claims.UserID <= 0 {
		return nil, "", false
	}
	return claims, cookie, true
}

// LandingPath is where each role lands after signing in.
func LandingPath(role models.Role) string {
	switch role {
	case models.RoleAdmin:
		return "/admin/components"
	case models.RoleUser:
		return "/user/components"
	}
	return "/home"
}

// RequireAuth gates protected routes: without a valid session the browser is
// redirected to the login page.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, token, ok := parseSession(c, secret)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, models.Role(claims.Role))
		c.Set(ContextToken, token)
		c.Next()
	}
}

// RequireRole gates a route group to one role. A mismatched role is sent to
// the default home, not an error page.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, exists := c.Get(ContextRole)
		if !exists || current.(models.Role) != role {
			c.Redirect(http.StatusFound, "/home")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RedirectIfAuthenticated keeps signed-in users off the login and register
// pages by sending them to their role's landing view.
func RedirectIfAuthenticated(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, _, ok := parseSession(c, secret); ok {
			c.Redirect(http.StatusFound, LandingPath(models.Role(claims.Role)))
			c.Abort()
			return
		}
		c.Next()
	}
}

// SessionContext returns the request context with the caller's session token
// attached, ready for outbound backend calls.
func SessionContext(c *gin.Context) context.Context {
	ctx := c.Request.Context()
	if token, exists := c.Get(ContextToken); exists {
		ctx = services.WithSession(ctx, token.(string))
	}
	return ctx
}

// UserID returns the authenticated user's id, or 0 outside RequireAuth.
func UserID(c *gin.Context) int {
	if id, exists := c.Get(ContextUserID); exists {
		return id.(int)
	}
	return 0
}
