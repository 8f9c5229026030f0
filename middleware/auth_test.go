package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/KevinStop/inventory-management-frontend/models"
	"github.com/KevinStop/inventory-management-frontend/services"
)

var testSecret = []byte("test-secret")

func signSession(t *testing.T, userID int, role models.Role) string {
	t.Helper()
	claims := SessionClaims{
		UserID: userID,
		Role:   string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	if err != nil {
		t.Fatalf("Failed to sign session token: %v", err)
	}
	return token
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	user := r.Group("/user")
	user.Use(RequireAuth(testSecret), RequireRole(models.RoleUser))
	user.GET("/components", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": UserID(c)})
	})

	admin := r.Group("/admin")
	admin.Use(RequireAuth(testSecret), RequireRole(models.RoleAdmin))
	admin.GET("/requests", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	r.GET("/login", RedirectIfAuthenticated(testSecret), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: services.SessionCookie, Value: token})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUnauthenticatedRedirectsToLogin(t *testing.T) {
	w := get(newRouter(), "/user/components", "")
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/login" {
		t.Errorf("Got %d -> %q, want 302 -> /login", w.Code, w.Header().Get("Location"))
	}
}

func TestGarbageCookieRedirectsToLogin(t *testing.T) {
	w := get(newRouter(), "/user/components", "not.a.jwt")
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/login" {
		t.Errorf("Got %d -> %q, want 302 -> /login", w.Code, w.Header().Get("Location"))
	}
}

func TestMatchingRolePasses(t *testing.T) {
	token := signSession(t, 7, models.RoleUser)
	w := get(newRouter(), "/user/components", token)
	if w.Code != http.StatusOK {
		t.Errorf("Got %d, want 200: %s", w.Code, w.Body.String())
	}
}

func TestRoleMismatchRedirectsHome(t *testing.T) {
	token := signSession(t, 7, models.RoleUser)
	w := get(newRouter(), "/admin/requests", token)
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/home" {
		t.Errorf("Got %d -> %q, want 302 -> /home", w.Code, w.Header().Get("Location"))
	}
}

func TestAuthenticatedLoginRedirectsToLanding(t *testing.T) {
	cases := []struct {
		role models.Role
		want string
	}{
		{models.RoleAdmin, "/admin/components"},
		{models.RoleUser, "/user/components"},
	}
	for _, tc := range cases {
		token := signSession(t, 3, tc.role)
		w := get(newRouter(), "/login", token)
		if w.Code != http.StatusFound || w.Header().Get("Location") != tc.want {
			t.Errorf("Role %s: got %d -> %q, want 302 -> %q", tc.role, w.Code, w.Header().Get("Location"), tc.want)
		}
	}
}

func TestAnonymousLoginPageRenders(t *testing.T) {
	w := get(newRouter(), "/login", "")
	if w.Code != http.StatusOK {
		t.Errorf("Got %d, want 200", w.Code)
	}
}
